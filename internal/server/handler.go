package server

import (
	"errors"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/apperrors"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/logger"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/types"
)

type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

func (s *Server) initHandlers() {
	s.handlers = map[protocol.MessageType]handlerFunc{
		// Connection
		protocol.MsgPing:      s.handlePing,
		protocol.MsgReconnect: s.handleReconnect,

		// Room operations
		protocol.MsgCreateRoom:  s.handleCreateRoom,
		protocol.MsgJoinRoom:    s.handleJoinRoom,
		protocol.MsgLeaveRoom:   func(c types.ClientInterface, _ *protocol.Message) { s.handleLeaveRoom(c) },
		protocol.MsgReady:       func(c types.ClientInterface, _ *protocol.Message) { s.handleReady(c, true) },
		protocol.MsgCancelReady: func(c types.ClientInterface, _ *protocol.Message) { s.handleReady(c, false) },

		// Table actions
		protocol.MsgPick:     s.actionHandler(protocol.MsgPick),
		protocol.MsgPass:     s.actionHandler(protocol.MsgPass),
		protocol.MsgCrack:    s.actionHandler(protocol.MsgCrack),
		protocol.MsgRecrack:  s.actionHandler(protocol.MsgRecrack),
		protocol.MsgNoCrack:  s.actionHandler(protocol.MsgNoCrack),
		protocol.MsgBlitz:    s.actionHandler(protocol.MsgBlitz),
		protocol.MsgGoAlone:  s.actionHandler(protocol.MsgGoAlone),
		protocol.MsgBury:     s.handleBury,
		protocol.MsgCallAce:  s.handleCall,
		protocol.MsgCallTen:  s.handleCall,
		protocol.MsgPlayCard: s.handlePlayCard,

		// Stats
		protocol.MsgGetStats:       func(c types.ClientInterface, _ *protocol.Message) { s.handleGetStats(c) },
		protocol.MsgGetLeaderboard: s.handleGetLeaderboard,
		protocol.MsgGetRoomList:    func(c types.ClientInterface, _ *protocol.Message) { s.handleGetRoomList(c) },
	}
}

// Handle routes one decoded message.
func (s *Server) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := s.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	logger.LogError("unknown message type %q from %s (%s)", msg.Type, client.GetName(), client.GetID())
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// sendError relays a rejection to the client, mapping engine rejections to
// their protocol codes.
func sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
