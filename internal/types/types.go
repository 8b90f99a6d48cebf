// Package types holds the interfaces shared between the transport and game
// layers, breaking what would otherwise be an import cycle.
package types

import (
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
)

// ClientInterface is the transport-side handle the game layer talks to.
type ClientInterface interface {
	GetID() string
	GetName() string
	GetRoom() string
	SetRoom(code string)
	SendMessage(msg *protocol.Message)
	Close()
}
