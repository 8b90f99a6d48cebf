package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/logger"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/server/storage"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/types"
)

const storeTimeout = 5 * time.Second

// createSession persists reconnect data for a fresh connection and returns
// the reconnect token.
func (s *Server) createSession(client *Client) string {
	token := uuid.New().String()

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	err := s.store.SaveSession(ctx, &storage.PlayerSessionData{
		PlayerID:       client.ID,
		PlayerName:     client.Name,
		ReconnectToken: token,
		IsOnline:       true,
	})
	if err != nil {
		logger.LogError("saving session for %s: %v", client.ID, err)
	}
	return token
}

// markSessionOffline flags a dropped connection so a later reconnect can
// find it.
func (s *Server) markSessionOffline(playerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	session, err := s.store.LoadSession(ctx, playerID)
	if err != nil || session == nil {
		return
	}
	session.IsOnline = false
	if err := s.store.SaveSession(ctx, session); err != nil {
		logger.LogError("marking session offline for %s: %v", playerID, err)
	}
}

func (s *Server) handlePing(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}

// handleReconnect restores a dropped player's identity and, when their room
// still exists, swaps them back into their seat.
func (s *Server) handleReconnect(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ReconnectPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	session, err := s.store.LoadSession(ctx, payload.PlayerID)
	if err != nil {
		logger.LogError("loading session for %s: %v", payload.PlayerID, err)
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknown))
		return
	}
	if session == nil || session.ReconnectToken != payload.Token {
		client.SendMessage(protocol.NewErrorMessageWithText(
			protocol.ErrCodeInvalidMsg, "unknown session or bad token"))
		return
	}

	c, ok := client.(*Client)
	if !ok {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknown))
		return
	}

	// Adopt the old identity: drop the fresh registration, re-register
	// under the original ID.
	s.unregisterClient(c)
	c.ID = session.PlayerID
	c.Name = session.PlayerName
	s.registerClient(c)

	session.IsOnline = true
	if err := s.store.SaveSession(ctx, session); err != nil {
		logger.LogError("saving session for %s: %v", session.PlayerID, err)
	}

	inHand := false
	if r := s.roomManager.GetRoomByPlayerID(session.PlayerID); r != nil {
		if err := s.roomManager.ReconnectPlayer(session.PlayerID, c); err == nil {
			inHand = r.Session() != nil
		}
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgReconnected, protocol.ReconnectedPayload{
		PlayerID:   c.ID,
		PlayerName: c.Name,
		RoomCode:   c.GetRoom(),
		InHand:     inHand,
	}))

	logger.LogInfo("player %s (%s) reconnected", c.Name, c.ID)
}
