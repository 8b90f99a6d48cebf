package server

import (
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/variant"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/types"
)

// roomRules translates a create_room request into table rules, falling back
// to the configured defaults for anything unspecified.
func (s *Server) roomRules(p *protocol.CreateRoomPayload) variant.Config {
	players := p.Players
	if players == 0 {
		players = s.config.Game.Players
	}

	var rules variant.Config
	switch players {
	case 3:
		rules = variant.ThreeHanded()
	case 4:
		rules = variant.FourHanded()
	default:
		rules = variant.FiveHanded()
	}

	// An explicit request beats the player-count default; an empty request
	// keeps it (J♦ for four-handed, called ace for five).
	switch p.Variant {
	case "calledAce":
		rules.Partner = variant.CalledAce
	case "jackOfDiamonds":
		rules.Partner = variant.JackOfDiamonds
	case "alone":
		rules.Partner = variant.Alone
	}
	// A three-handed table never has a partner regardless of the request.
	if players == 3 {
		rules.Partner = variant.Alone
	}

	if s.config.Game.NoPick == "forcedPick" {
		rules.NoPick = variant.ForcedPick
	}
	rules.Cracking = p.Cracking || s.config.Game.Cracking
	rules.Blitzing = (p.Blitzing || s.config.Game.Blitzing) && rules.Cracking

	return rules
}

func (s *Server) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if client.GetRoom() != "" {
		s.roomManager.LeaveRoom(client)
	}

	room, err := s.roomManager.CreateRoom(client, s.roomRules(payload))
	if err != nil {
		sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomCode: room.Code,
		Players:  room.Rules.Players,
		Player:   room.GetPlayerInfo(client.GetID()),
	}))
}

func (s *Server) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if client.GetRoom() != "" {
		s.roomManager.LeaveRoom(client)
	}

	room, err := s.roomManager.JoinRoom(client, payload.RoomCode)
	if err != nil {
		sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomCode: room.Code,
		Player:   room.GetPlayerInfo(client.GetID()),
		Players:  room.PlayerInfos(),
	}))
}

func (s *Server) handleLeaveRoom(client types.ClientInterface) {
	s.roomManager.LeaveRoom(client)
}

func (s *Server) handleReady(client types.ClientInterface, ready bool) {
	if err := s.roomManager.SetPlayerReady(client, ready); err != nil {
		sendError(client, err)
	}
}
