package protocol

import "encoding/json"

// Message is the envelope for everything on the wire.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType names a wire message.
type MessageType string

// Client → server message types.
const (
	// Connection
	MsgReconnect MessageType = "reconnect"
	MsgPing      MessageType = "ping"

	// Room operations
	MsgCreateRoom  MessageType = "create_room"
	MsgJoinRoom    MessageType = "join_room"
	MsgLeaveRoom   MessageType = "leave_room"
	MsgReady       MessageType = "ready"
	MsgCancelReady MessageType = "cancel_ready"

	// Table actions
	MsgPick     MessageType = "pick"
	MsgPass     MessageType = "pass"
	MsgCrack    MessageType = "crack"
	MsgRecrack  MessageType = "recrack"
	MsgNoCrack  MessageType = "no_crack"
	MsgBlitz    MessageType = "blitz"
	MsgBury     MessageType = "bury"
	MsgCallAce  MessageType = "call_ace"
	MsgCallTen  MessageType = "call_ten"
	MsgGoAlone  MessageType = "go_alone"
	MsgPlayCard MessageType = "play_card"

	// Stats
	MsgGetStats       MessageType = "get_stats"
	MsgGetLeaderboard MessageType = "get_leaderboard"
	MsgGetRoomList    MessageType = "get_room_list"
)

// Server → client message types.
const (
	// Connection
	MsgConnected     MessageType = "connected"
	MsgReconnected   MessageType = "reconnected"
	MsgPong          MessageType = "pong"
	MsgPlayerOffline MessageType = "player_offline"
	MsgPlayerOnline  MessageType = "player_online"

	// Room lifecycle
	MsgRoomCreated  MessageType = "room_created"
	MsgRoomJoined   MessageType = "room_joined"
	MsgPlayerJoined MessageType = "player_joined"
	MsgPlayerLeft   MessageType = "player_left"
	MsgPlayerReady  MessageType = "player_ready"

	// Hand flow. MsgGameState carries the per-seat redacted state and is
	// pushed after every accepted action; MsgActionDone announces what the
	// acting seat just did.
	MsgGameStart  MessageType = "game_start"
	MsgGameState  MessageType = "game_state"
	MsgTurn       MessageType = "turn"
	MsgActionDone MessageType = "action_done"
	MsgHandResult MessageType = "hand_result"
	MsgGameOver   MessageType = "game_over"

	// Stats
	MsgStatsResult       MessageType = "stats_result"
	MsgLeaderboardResult MessageType = "leaderboard_result"
	MsgRoomListResult    MessageType = "room_list_result"

	// Errors
	MsgError MessageType = "error"
)
