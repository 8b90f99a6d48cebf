package room

// RoomState is the room lifecycle stage.
type RoomState int

const (
	RoomStateWaiting RoomState = iota
	RoomStatePlaying
	RoomStateEnded
)
