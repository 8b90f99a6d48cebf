// Package room manages table lifecycle: who sits where, when a hand starts,
// and fanning the redacted state out to each seat.
package room

import (
	"sync"
	"time"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/variant"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/server/storage"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/types"
)

const (
	roomCodeLength = 4
	// No vowels, so codes never spell anything.
	roomCodeChars = "BCDFGHJKLMNPQRSTVWXZ23456789"
)

// RoomPlayer is one occupant of a room. A nil Client means the seat is held
// by a bot or a disconnected player; either way the AI policy acts for it.
type RoomPlayer struct {
	Client types.ClientInterface
	ID     string
	Name   string
	Seat   int
	Ready  bool
	IsBot  bool
	Score  int // running score across hands
}

// Room is a table. Seats are fixed once the first hand starts: seat i is
// PlayerOrder[i] for the life of the room.
type Room struct {
	Code        string
	State       RoomState
	Rules       variant.Config
	Players     map[string]*RoomPlayer
	PlayerOrder []string
	CreatedAt   time.Time

	session *Session

	mu sync.RWMutex
}

// RoomManager owns every live room.
type RoomManager struct {
	store       *storage.RedisStore
	roomTimeout time.Duration
	turnTimeout time.Duration
	rooms       map[string]*Room
	mu          sync.RWMutex

	stopCleanup chan struct{}
}

// NewRoomManager starts the manager and its idle-room cleanup loop. store
// may be nil, which disables stats persistence.
func NewRoomManager(store *storage.RedisStore, roomTimeout, turnTimeout time.Duration) *RoomManager {
	rm := &RoomManager{
		store:       store,
		roomTimeout: roomTimeout,
		turnTimeout: turnTimeout,
		rooms:       make(map[string]*Room),
		stopCleanup: make(chan struct{}),
	}

	go rm.cleanupLoop()

	return rm
}

// Broadcast sends msg to every connected player. Callers hold r.mu.
func (r *Room) Broadcast(msg *protocol.Message) {
	for _, p := range r.Players {
		if p.Client != nil {
			p.Client.SendMessage(msg)
		}
	}
}

// BroadcastExcept sends msg to every connected player but one.
func (r *Room) BroadcastExcept(exceptID string, msg *protocol.Message) {
	for id, p := range r.Players {
		if id != exceptID && p.Client != nil {
			p.Client.SendMessage(msg)
		}
	}
}

// GetPlayerInfo builds the public info for one occupant.
func (r *Room) GetPlayerInfo(playerID string) protocol.PlayerInfo {
	p, ok := r.Players[playerID]
	if !ok {
		return protocol.PlayerInfo{}
	}
	return protocol.PlayerInfo{
		ID:     p.ID,
		Name:   p.Name,
		Seat:   p.Seat,
		Ready:  p.Ready,
		IsBot:  p.IsBot,
		Online: p.Client != nil || p.IsBot,
		Score:  p.Score,
	}
}

// PlayerInfos lists occupants in seat order.
func (r *Room) PlayerInfos() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.PlayerOrder))
	for _, id := range r.PlayerOrder {
		infos = append(infos, r.GetPlayerInfo(id))
	}
	return infos
}

// SeatOf maps a player to their seat, -1 for strangers.
func (r *Room) SeatOf(playerID string) int {
	if p, ok := r.Players[playerID]; ok {
		return p.Seat
	}
	return -1
}

// playerAtSeat is the inverse of SeatOf.
func (r *Room) playerAtSeat(seat int) *RoomPlayer {
	if seat < 0 || seat >= len(r.PlayerOrder) {
		return nil
	}
	return r.Players[r.PlayerOrder[seat]]
}

// IsBotSeat reports whether a seat is currently played by the AI policy:
// a bot occupant, a disconnected player, or an empty seat.
func (r *Room) IsBotSeat(seat int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p := r.playerAtSeat(seat)
	return p == nil || p.IsBot || p.Client == nil
}

// checkAllReady reports whether every human occupant is ready. Bots are
// always ready.
func (r *Room) checkAllReady() bool {
	if len(r.Players) == 0 {
		return false
	}
	for _, p := range r.Players {
		if !p.IsBot && !p.Ready {
			return false
		}
	}
	return true
}

// Session returns the live game session, nil between games.
func (r *Room) Session() *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session
}
