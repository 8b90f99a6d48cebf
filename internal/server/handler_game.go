package server

import (
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/apperrors"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/card"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/hand"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/room"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/types"
)

// simpleActions maps the message types that carry no payload straight to
// engine actions.
var simpleActions = map[protocol.MessageType]hand.Action{
	protocol.MsgPick:    hand.Pick(),
	protocol.MsgPass:    hand.Pass(),
	protocol.MsgCrack:   hand.Crack(),
	protocol.MsgRecrack: hand.Recrack(),
	protocol.MsgNoCrack: hand.NoCrack(),
	protocol.MsgBlitz:   hand.Blitz(),
	protocol.MsgGoAlone: hand.GoAlone(),
}

func (s *Server) actionHandler(msgType protocol.MessageType) handlerFunc {
	action := simpleActions[msgType]
	return func(client types.ClientInterface, _ *protocol.Message) {
		s.submitAction(client, action)
	}
}

func (s *Server) handleBury(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.BuryPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	cards := make([]card.Card, 0, len(payload.Cards))
	for _, label := range payload.Cards {
		c, err := card.Parse(label)
		if err != nil {
			sendError(client, apperrors.New(protocol.ErrCodeInvalidBury, err.Error()))
			return
		}
		cards = append(cards, c)
	}

	s.submitAction(client, hand.Bury(cards...))
}

func (s *Server) handleCall(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.CallPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	suit, ok := parseSuit(payload.Suit)
	if !ok {
		sendError(client, apperrors.ErrInvalidCall)
		return
	}

	action := hand.CallAce(suit)
	if msg.Type == protocol.MsgCallTen {
		action = hand.CallTen(suit)
	}
	s.submitAction(client, action)
}

func (s *Server) handlePlayCard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayCardPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	c, err := card.Parse(payload.Card)
	if err != nil {
		sendError(client, apperrors.New(protocol.ErrCodeIllegalCard, err.Error()))
		return
	}

	s.submitAction(client, hand.PlayCard(c))
}

// submitAction pushes one action into the client's live session. Rejections
// go back to the submitter only; accepted actions are broadcast by the
// session itself.
func (s *Server) submitAction(client types.ClientInterface, a hand.Action) {
	session := s.sessionFor(client)
	if session == nil {
		sendError(client, apperrors.ErrGameNotStart)
		return
	}

	if err := session.Act(client.GetID(), a); err != nil {
		sendError(client, err)
	}
}

func (s *Server) sessionFor(client types.ClientInterface) *room.Session {
	code := client.GetRoom()
	if code == "" {
		return nil
	}
	r := s.roomManager.GetRoom(code)
	if r == nil {
		return nil
	}
	return r.Session()
}

// suitNames accepts both the long wire names and single-letter notation.
var suitNames = map[string]card.Suit{
	"clubs":    card.Clubs,
	"spades":   card.Spades,
	"hearts":   card.Hearts,
	"diamonds": card.Diamonds,
	"C":        card.Clubs,
	"S":        card.Spades,
	"H":        card.Hearts,
	"D":        card.Diamonds,
}

func parseSuit(s string) (card.Suit, bool) {
	suit, ok := suitNames[s]
	return suit, ok
}
