package apperrors

import (
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
)

// GameError is a recoverable rejection: the action was refused, state is
// untouched, and Message is safe to surface to the acting player.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// New builds a GameError with a custom reason, keeping the code's category.
func New(code int, message string) *GameError {
	return &GameError{Code: code, Message: message}
}

// Predefined rejections.
var (
	ErrRoomNotFound = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "room not found"}
	ErrRoomFull     = &GameError{Code: protocol.ErrCodeRoomFull, Message: "room is full"}
	ErrNotInRoom    = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "you are not in a room"}
	ErrGameStarted  = &GameError{Code: protocol.ErrCodeGameStarted, Message: "game already started"}
	ErrGameNotStart = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "game has not started"}
	ErrNotYourTurn  = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "it is not your turn"}
	ErrWrongPhase   = &GameError{Code: protocol.ErrCodeWrongPhase, Message: "that action is not allowed in this phase"}
	ErrIllegalCard  = &GameError{Code: protocol.ErrCodeIllegalCard, Message: "that card is not a legal play"}
	ErrInvalidCall  = &GameError{Code: protocol.ErrCodeInvalidCall, Message: "that suit cannot be called"}
	ErrCannotCrack  = &GameError{Code: protocol.ErrCodeCannotCrack, Message: "you cannot crack now"}
	ErrCannotBlitz  = &GameError{Code: protocol.ErrCodeCannotBlitz, Message: "you cannot blitz"}
)
