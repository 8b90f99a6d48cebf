package room

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/apperrors"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/variant"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/logger"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/types"
)

// CreateRoom opens a new room with the given table rules and seats its
// creator at position 0.
func (rm *RoomManager) CreateRoom(client types.ClientInterface, rules variant.Config) (*Room, error) {
	if err := rules.Validate(); err != nil {
		return nil, apperrors.New(protocol.ErrCodeInvalidMsg, err.Error())
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	code := rm.generateRoomCode()

	room := &Room{
		Code:        code,
		State:       RoomStateWaiting,
		Rules:       rules,
		Players:     make(map[string]*RoomPlayer),
		PlayerOrder: make([]string, 0, rules.Players),
		CreatedAt:   time.Now(),
	}

	room.Players[client.GetID()] = &RoomPlayer{
		Client: client,
		ID:     client.GetID(),
		Name:   client.GetName(),
		Seat:   0,
	}
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())
	client.SetRoom(code)

	rm.rooms[code] = room

	logger.LogInfo("room %s created by %s (%d seats)", code, client.GetName(), rules.Players)

	return room, nil
}

// JoinRoom seats a client in an existing room.
func (rm *RoomManager) JoinRoom(client types.ClientInterface, code string) (*Room, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[code]
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if len(room.Players) >= room.Rules.Players {
		return nil, apperrors.ErrRoomFull
	}
	if room.State != RoomStateWaiting {
		return nil, apperrors.ErrGameStarted
	}

	seat := len(room.Players)
	room.Players[client.GetID()] = &RoomPlayer{
		Client: client,
		ID:     client.GetID(),
		Name:   client.GetName(),
		Seat:   seat,
	}
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())
	client.SetRoom(code)

	logger.LogInfo("player %s joined room %s at seat %d", client.GetName(), code, seat)

	room.BroadcastExcept(client.GetID(), protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Player: room.GetPlayerInfo(client.GetID()),
	}))

	return room, nil
}

// LeaveRoom removes a client from their room. Leaving mid-hand hands the
// seat to the bot; the hand plays on.
func (rm *RoomManager) LeaveRoom(client types.ClientInterface) {
	roomCode := client.GetRoom()
	if roomCode == "" {
		return
	}

	rm.mu.Lock()
	room, exists := rm.rooms[roomCode]
	rm.mu.Unlock()
	if !exists {
		return
	}

	room.mu.Lock()

	player, exists := room.Players[client.GetID()]
	if !exists {
		room.mu.Unlock()
		return
	}

	room.BroadcastExcept(client.GetID(), protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{
		PlayerID:   client.GetID(),
		PlayerName: client.GetName(),
	}))

	if room.State == RoomStatePlaying {
		// Seats are fixed mid-game; the bot takes over.
		player.Client = nil
		player.IsBot = true
		client.SetRoom("")
		session := room.session
		room.mu.Unlock()
		logger.LogInfo("player %s left room %s mid-game, bot takes seat %d",
			client.GetName(), roomCode, player.Seat)
		if session != nil {
			session.RunPendingBots()
		}
		return
	}

	delete(room.Players, client.GetID())
	for i, id := range room.PlayerOrder {
		if id == client.GetID() {
			room.PlayerOrder = append(room.PlayerOrder[:i], room.PlayerOrder[i+1:]...)
			break
		}
	}
	// Reseat everyone left so seats stay contiguous.
	for i, id := range room.PlayerOrder {
		room.Players[id].Seat = i
	}
	client.SetRoom("")

	empty := len(room.Players) == 0
	room.mu.Unlock()

	logger.LogInfo("player %s left room %s", client.GetName(), roomCode)

	if empty {
		rm.mu.Lock()
		delete(rm.rooms, roomCode)
		rm.mu.Unlock()
		logger.LogInfo("room %s disbanded", roomCode)
	}
}

// SetPlayerReady toggles a ready flag. When every human in the room is
// ready, remaining seats are filled with bots and the first hand starts.
func (rm *RoomManager) SetPlayerReady(client types.ClientInterface, ready bool) error {
	roomCode := client.GetRoom()
	if roomCode == "" {
		return apperrors.ErrNotInRoom
	}

	rm.mu.RLock()
	room, exists := rm.rooms[roomCode]
	rm.mu.RUnlock()
	if !exists {
		return apperrors.ErrRoomNotFound
	}

	room.mu.Lock()

	player, exists := room.Players[client.GetID()]
	if !exists {
		room.mu.Unlock()
		return apperrors.ErrNotInRoom
	}
	if room.State != RoomStateWaiting {
		room.mu.Unlock()
		return apperrors.ErrGameStarted
	}

	player.Ready = ready

	room.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerReady, protocol.PlayerReadyPayload{
		PlayerID: client.GetID(),
		Ready:    ready,
	}))

	start := room.checkAllReady()
	if start {
		room.fillWithBots()
	}
	room.mu.Unlock()

	if start {
		return rm.StartGame(room)
	}
	return nil
}

// fillWithBots seats bots in every open position. Callers hold room.mu.
func (r *Room) fillWithBots() {
	for i := len(r.Players); i < r.Rules.Players; i++ {
		id := uuid.New().String()
		r.Players[id] = &RoomPlayer{
			ID:    id,
			Name:  fmt.Sprintf("Bot %d", i+1),
			Seat:  i,
			Ready: true,
			IsBot: true,
		}
		r.PlayerOrder = append(r.PlayerOrder, id)
	}
}

// StartGame opens the session and deals the first hand.
func (rm *RoomManager) StartGame(room *Room) error {
	room.mu.Lock()
	if room.State != RoomStateWaiting {
		room.mu.Unlock()
		return apperrors.ErrGameStarted
	}
	room.State = RoomStatePlaying
	room.session = NewSession(room, rm.store, rm.turnTimeout)
	session := room.session
	room.mu.Unlock()

	logger.LogInfo("room %s: game starting", room.Code)
	session.StartHand()
	return nil
}

// GetRoom looks a room up by code.
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// GetRoomByPlayerID finds the room currently seating a player.
func (rm *RoomManager) GetRoomByPlayerID(playerID string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	for _, room := range rm.rooms {
		room.mu.RLock()
		_, exists := room.Players[playerID]
		room.mu.RUnlock()
		if exists {
			return room
		}
	}
	return nil
}

// GetRoomList lists joinable rooms.
func (rm *RoomManager) GetRoomList() []protocol.RoomListItem {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	var rooms []protocol.RoomListItem
	for code, room := range rm.rooms {
		room.mu.RLock()
		if room.State == RoomStateWaiting && len(room.Players) < room.Rules.Players {
			rooms = append(rooms, protocol.RoomListItem{
				RoomCode:    code,
				PlayerCount: len(room.Players),
				MaxPlayers:  room.Rules.Players,
			})
		}
		room.mu.RUnlock()
	}
	return rooms
}

// NotifyPlayerOffline marks a dropped player; the bot plays their cards
// until they reconnect.
func (rm *RoomManager) NotifyPlayerOffline(client types.ClientInterface) {
	roomCode := client.GetRoom()
	if roomCode == "" {
		return
	}

	rm.mu.RLock()
	room, exists := rm.rooms[roomCode]
	rm.mu.RUnlock()
	if !exists {
		return
	}

	room.mu.Lock()

	if player, ok := room.Players[client.GetID()]; ok {
		player.Client = nil
	}

	allOffline := true
	for _, p := range room.Players {
		if p.Client != nil {
			allOffline = false
			p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgPlayerOffline, protocol.PlayerOfflinePayload{
				PlayerID:   client.GetID(),
				PlayerName: client.GetName(),
				Timeout:    20,
			}))
		}
	}

	if allOffline {
		logger.LogInfo("room %s: every player disconnected, closing", roomCode)
		room.State = RoomStateEnded
		session := room.session
		room.mu.Unlock()
		if session != nil {
			session.Stop()
		}
		rm.mu.Lock()
		delete(rm.rooms, roomCode)
		rm.mu.Unlock()
		return
	}

	session := room.session
	room.mu.Unlock()

	logger.LogInfo("player %s went offline in room %s", client.GetName(), roomCode)

	if session != nil {
		session.RunPendingBots()
	}
}

// ReconnectPlayer swaps a returning player's transport back in.
func (rm *RoomManager) ReconnectPlayer(playerID string, newClient types.ClientInterface) error {
	room := rm.GetRoomByPlayerID(playerID)
	if room == nil {
		return apperrors.ErrRoomNotFound
	}

	room.mu.Lock()

	player, exists := room.Players[playerID]
	if !exists {
		room.mu.Unlock()
		return apperrors.ErrNotInRoom
	}

	player.Client = newClient
	newClient.SetRoom(room.Code)

	for id, p := range room.Players {
		if id != playerID && p.Client != nil {
			p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgPlayerOnline, protocol.PlayerOnlinePayload{
				PlayerID:   playerID,
				PlayerName: newClient.GetName(),
			}))
		}
	}

	session := room.session
	room.mu.Unlock()

	logger.LogInfo("player %s reconnected to room %s", newClient.GetName(), room.Code)

	if session != nil {
		session.SendStateTo(playerID)
	}
	return nil
}

// Stop shuts the cleanup loop down.
func (rm *RoomManager) Stop() {
	close(rm.stopCleanup)
}

func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := rm.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rm.cleanup()
		case <-rm.stopCleanup:
			return
		}
	}
}

// cleanup closes rooms that never got a game going.
func (rm *RoomManager) cleanup() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	now := time.Now()

	for code, room := range rm.rooms {
		room.mu.RLock()
		expired := room.State == RoomStateWaiting && now.Sub(room.CreatedAt) > rm.roomTimeout
		room.mu.RUnlock()
		if !expired {
			continue
		}

		room.mu.Lock()
		room.Broadcast(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "room timed out"))
		for _, p := range room.Players {
			if p.Client != nil {
				p.Client.SetRoom("")
			}
		}
		room.mu.Unlock()

		delete(rm.rooms, code)
		logger.LogInfo("room %s timed out, cleaned up", code)
	}
}
