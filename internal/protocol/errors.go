package protocol

// Error codes. 1xxx connection, 2xxx room, 3xxx game actions.
const (
	ErrCodeUnknown      = 1000
	ErrCodeInvalidMsg   = 1001
	ErrCodeRateLimit    = 1002
	ErrCodeRoomNotFound = 2001
	ErrCodeRoomFull     = 2002
	ErrCodeNotInRoom    = 2003
	ErrCodeGameStarted  = 2004
	ErrCodeGameNotStart = 3001
	ErrCodeNotYourTurn  = 3002
	ErrCodeWrongPhase   = 3003
	ErrCodeIllegalCard  = 3004
	ErrCodeInvalidBury  = 3005
	ErrCodeInvalidCall  = 3006
	ErrCodeCannotCrack  = 3007
	ErrCodeCannotBlitz  = 3008
)

// ErrorMessages maps error codes to their default user-facing text.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:      "unknown error",
	ErrCodeInvalidMsg:   "invalid message format",
	ErrCodeRateLimit:    "too many requests",
	ErrCodeRoomNotFound: "room not found",
	ErrCodeRoomFull:     "room is full",
	ErrCodeNotInRoom:    "you are not in a room",
	ErrCodeGameStarted:  "game already started",
	ErrCodeGameNotStart: "game has not started",
	ErrCodeNotYourTurn:  "it is not your turn",
	ErrCodeWrongPhase:   "that action is not allowed in this phase",
	ErrCodeIllegalCard:  "that card is not a legal play",
	ErrCodeInvalidBury:  "invalid bury selection",
	ErrCodeInvalidCall:  "that suit cannot be called",
	ErrCodeCannotCrack:  "you cannot crack now",
	ErrCodeCannotBlitz:  "you cannot blitz",
}
