package protocol

// --- Client request payloads ---

// ReconnectPayload resumes a dropped session.
type ReconnectPayload struct {
	Token    string `json:"token"`
	PlayerID string `json:"player_id"`
}

// PingPayload carries the client clock, milliseconds.
type PingPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// CreateRoomPayload selects the table rules for a new room.
type CreateRoomPayload struct {
	Players  int    `json:"players"` // 3, 4 or 5
	Variant  string `json:"variant,omitempty"`
	Cracking bool   `json:"cracking,omitempty"`
	Blitzing bool   `json:"blitzing,omitempty"`
}

// JoinRoomPayload joins an existing room by its short code.
type JoinRoomPayload struct {
	RoomCode string `json:"room_code"`
}

// BuryPayload names the cards going face down, in label form ("QC", "10H").
type BuryPayload struct {
	Cards []string `json:"cards"`
}

// CallPayload names the suit for a called ace or ten.
type CallPayload struct {
	Suit string `json:"suit"` // "clubs", "spades", "hearts"
}

// PlayCardPayload plays one card by label.
type PlayCardPayload struct {
	Card string `json:"card"`
}

// GetLeaderboardPayload pages through the leaderboard.
type GetLeaderboardPayload struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// --- Server response payloads ---

// ConnectedPayload is the handshake response.
type ConnectedPayload struct {
	PlayerID       string `json:"player_id"`
	PlayerName     string `json:"player_name"`
	ReconnectToken string `json:"reconnect_token"`
}

// ReconnectedPayload restores a player into their room. The current redacted
// state follows in a separate game_state message when a hand is live.
type ReconnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	RoomCode   string `json:"room_code,omitempty"`
	InHand     bool   `json:"in_hand"`
}

// PongPayload answers a ping.
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"`
}

// PlayerOfflinePayload announces a dropped player and the reconnect window.
type PlayerOfflinePayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Timeout    int    `json:"timeout"` // seconds
}

// PlayerOnlinePayload announces a returning player.
type PlayerOnlinePayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// RoomCreatedPayload confirms room creation to its creator.
type RoomCreatedPayload struct {
	RoomCode string     `json:"room_code"`
	Players  int        `json:"players"`
	Player   PlayerInfo `json:"player"`
}

// RoomJoinedPayload confirms a join and lists the current occupants.
type RoomJoinedPayload struct {
	RoomCode string       `json:"room_code"`
	Player   PlayerInfo   `json:"player"`
	Players  []PlayerInfo `json:"players"`
}

// PlayerJoinedPayload tells the room about a new occupant.
type PlayerJoinedPayload struct {
	Player PlayerInfo `json:"player"`
}

// PlayerLeftPayload tells the room someone left.
type PlayerLeftPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PlayerReadyPayload broadcasts a ready toggle.
type PlayerReadyPayload struct {
	PlayerID string `json:"player_id"`
	Ready    bool   `json:"ready"`
}

// GameStartPayload opens a hand; seats are in table order.
type GameStartPayload struct {
	Players    []PlayerInfo `json:"players"`
	Dealer     int          `json:"dealer"`
	HandNumber int          `json:"hand_number"`
}

// TurnPayload tells everyone whose action is awaited.
type TurnPayload struct {
	PlayerID string `json:"player_id"`
	Seat     int    `json:"seat"`
	Phase    string `json:"phase"`
	Timeout  int    `json:"timeout"` // seconds
}

// ActionDonePayload announces an accepted action. Card and Suit are filled
// only for actions that expose them; a bury stays hidden.
type ActionDonePayload struct {
	PlayerID string `json:"player_id"`
	Seat     int    `json:"seat"`
	Action   string `json:"action"`
	Card     string `json:"card,omitempty"`
	Suit     string `json:"suit,omitempty"`
}

// SeatResult is one seat's line in a hand result.
type SeatResult struct {
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	Seat        int    `json:"seat"`
	PointsTaken int    `json:"points_taken"`
	Delta       int    `json:"delta"`
	Score       int    `json:"score"` // running total after this hand
}

// HandResultPayload closes out a hand.
type HandResultPayload struct {
	Leaster        bool         `json:"leaster"`
	PickerSeat     int          `json:"picker_seat"`
	PartnerSeat    int          `json:"partner_seat"`
	PickerPoints   int          `json:"picker_points"`
	DefenderPoints int          `json:"defender_points"`
	PickerWins     bool         `json:"picker_wins"`
	Schneider      bool         `json:"schneider"`
	Schwarz        bool         `json:"schwarz"`
	Multiplier     int          `json:"multiplier"`
	Buried         []string     `json:"buried,omitempty"`
	Seats          []SeatResult `json:"seats"`
}

// GameOverPayload ends a session when the room closes or a score cap hits.
type GameOverPayload struct {
	Seats []SeatResult `json:"seats"`
}

// ErrorPayload is the body of every error message.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatsResultPayload is one player's lifetime record.
type StatsResultPayload struct {
	PlayerID    string  `json:"player_id"`
	PlayerName  string  `json:"player_name"`
	TotalHands  int     `json:"total_hands"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"win_rate"`
	PickerHands int     `json:"picker_hands"`
	PickerWins  int     `json:"picker_wins"`
	Score       int     `json:"score"`
	Rank        int     `json:"rank"`
}

// LeaderboardResultPayload pages the score-sorted leaderboard.
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardEntry is one leaderboard row.
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Score      int     `json:"score"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}

// RoomListResultPayload lists joinable rooms.
type RoomListResultPayload struct {
	Rooms []RoomListItem `json:"rooms"`
}

// RoomListItem is one room in the lobby list.
type RoomListItem struct {
	RoomCode    string `json:"room_code"`
	PlayerCount int    `json:"player_count"`
	MaxPlayers  int    `json:"max_players"`
}

// --- Shared structures ---

// PlayerInfo is the public face of a player within a room.
type PlayerInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Seat   int    `json:"seat"`
	Ready  bool   `json:"ready"`
	IsBot  bool   `json:"is_bot"`
	Online bool   `json:"online"`
	Score  int    `json:"score"` // running score across hands
}
