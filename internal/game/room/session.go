package room

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/ai"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/apperrors"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/deck"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/hand"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/score"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/game/view"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/logger"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/server/storage"
)

// botStepLimit bounds one bot run. A five-handed hand needs well under a
// hundred actions start to finish.
const botStepLimit = 200

// Session drives hands for one room: it owns the live hand.State, relays
// accepted actions to every seat, lets the AI policy act for empty seats,
// and scores each hand into the room's running totals.
type Session struct {
	room        *Room
	store       *storage.RedisStore
	turnTimeout time.Duration
	policy      *ai.Policy

	mu         sync.Mutex
	st         *hand.State
	dealer     int
	handNumber int
	turnSeq    int
	turnTimer  *time.Timer
	stopped    bool
}

// NewSession prepares a session for a room whose seats are final. The first
// hand is not dealt until StartHand.
func NewSession(room *Room, store *storage.RedisStore, turnTimeout time.Duration) *Session {
	return &Session{
		room:        room,
		store:       store,
		turnTimeout: turnTimeout,
		policy:      &ai.Policy{},
	}
}

// StartHand deals the next hand and opens picking.
func (s *Session) StartHand() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}

	s.handNumber++
	seed := rand.Int64()
	s.st = hand.NewHand(s.room.Rules, s.dealer, seed)

	logger.LogInfo("room %s: hand %d dealt, dealer seat %d, seed %d",
		s.room.Code, s.handNumber, s.dealer, seed)

	s.room.mu.RLock()
	startMsg := protocol.MustNewMessage(protocol.MsgGameStart, protocol.GameStartPayload{
		Players:    s.room.PlayerInfos(),
		Dealer:     s.dealer,
		HandNumber: s.handNumber,
	})
	s.room.Broadcast(startMsg)
	s.room.mu.RUnlock()

	s.sendStates()
	s.announceTurn()
	s.mu.Unlock()

	s.RunPendingBots()
}

// Act applies one action submitted by a player. A *apperrors.GameError comes
// back to the caller for relay; accepted actions are broadcast and any bot
// turns that follow are played out before Act returns.
func (s *Session) Act(playerID string, a hand.Action) error {
	s.mu.Lock()

	if s.st == nil || s.stopped {
		s.mu.Unlock()
		return apperrors.ErrGameNotStart
	}

	s.room.mu.RLock()
	seat := s.room.SeatOf(playerID)
	s.room.mu.RUnlock()
	if seat < 0 {
		s.mu.Unlock()
		return apperrors.ErrNotInRoom
	}

	if err := s.st.Apply(seat, a); err != nil {
		s.mu.Unlock()
		return err
	}

	s.afterAction(seat, a)
	s.mu.Unlock()

	s.RunPendingBots()
	return nil
}

// RunPendingBots plays out consecutive turns that belong to bots or to
// disconnected players, then hands the turn back to a human.
func (s *Session) RunPendingBots() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for range botStepLimit {
		if s.st == nil || s.stopped || s.st.Phase == hand.PhaseScoring || s.st.Phase == hand.PhaseGameOver {
			return
		}

		seat := s.st.Current
		if !s.room.IsBotSeat(seat) {
			return
		}

		a, err := s.policy.Propose(s.st, seat)
		if err != nil {
			logger.LogError("room %s: policy stuck at seat %d: %v", s.room.Code, seat, err)
			return
		}
		if err := s.st.Apply(seat, a); err != nil {
			logger.LogError("room %s: policy proposed rejected action %v at seat %d: %v",
				s.room.Code, a, seat, err)
			return
		}
		s.afterAction(seat, a)
	}

	logger.LogError("room %s: bot run exceeded %d steps, giving up", s.room.Code, botStepLimit)
}

// afterAction broadcasts an accepted action, refreshes every seat's view,
// and either announces the next turn or closes out the hand. Callers hold
// s.mu.
func (s *Session) afterAction(seat int, a hand.Action) {
	done := protocol.ActionDonePayload{
		Seat:   seat,
		Action: a.Type.String(),
	}
	s.room.mu.RLock()
	if p := s.room.playerAtSeat(seat); p != nil {
		done.PlayerID = p.ID
	}
	s.room.mu.RUnlock()

	switch a.Type {
	case hand.ActionPlayCard:
		done.Card = a.Card.String()
	case hand.ActionCallAce, hand.ActionCallTen:
		done.Suit = a.Suit.String()
	}
	// Bury cards stay hidden until scoring.

	s.room.mu.RLock()
	s.room.Broadcast(protocol.MustNewMessage(protocol.MsgActionDone, done))
	s.room.mu.RUnlock()

	s.sendStates()

	if s.st.Phase == hand.PhaseScoring {
		s.finishHand()
		return
	}
	s.announceTurn()
}

// sendStates pushes the per-seat redacted state to every connected player.
// Callers hold s.mu.
func (s *Session) sendStates() {
	s.room.mu.RLock()
	defer s.room.mu.RUnlock()

	for _, p := range s.room.Players {
		if p.Client == nil {
			continue
		}
		msg, err := protocol.NewMessage(protocol.MsgGameState, view.For(s.st, p.Seat))
		if err != nil {
			logger.LogError("room %s: encoding state for seat %d: %v", s.room.Code, p.Seat, err)
			continue
		}
		p.Client.SendMessage(msg)
	}
}

// SendStateTo pushes the current redacted state to one player, used after a
// reconnect.
func (s *Session) SendStateTo(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st == nil || s.stopped {
		return
	}

	s.room.mu.RLock()
	defer s.room.mu.RUnlock()

	p, ok := s.room.Players[playerID]
	if !ok || p.Client == nil {
		return
	}
	msg, err := protocol.NewMessage(protocol.MsgGameState, view.For(s.st, p.Seat))
	if err != nil {
		logger.LogError("room %s: encoding state for seat %d: %v", s.room.Code, p.Seat, err)
		return
	}
	p.Client.SendMessage(msg)
}

// announceTurn broadcasts whose action is awaited and arms the turn timer.
// Callers hold s.mu.
func (s *Session) announceTurn() {
	seat := s.st.Current

	s.room.mu.RLock()
	p := s.room.playerAtSeat(seat)
	payload := protocol.TurnPayload{
		Seat:    seat,
		Phase:   s.st.Phase.String(),
		Timeout: int(s.turnTimeout.Seconds()),
	}
	if p != nil {
		payload.PlayerID = p.ID
	}
	s.room.Broadcast(protocol.MustNewMessage(protocol.MsgTurn, payload))
	s.room.mu.RUnlock()

	s.turnSeq++
	seq := s.turnSeq
	if s.turnTimer != nil {
		s.turnTimer.Stop()
	}
	if s.turnTimeout > 0 {
		s.turnTimer = time.AfterFunc(s.turnTimeout, func() {
			s.onTurnTimeout(seq)
		})
	}
}

// onTurnTimeout lets the policy act for a human who ran out the clock. The
// sequence number guards against firing after the turn already moved on.
func (s *Session) onTurnTimeout(seq int) {
	s.mu.Lock()

	if s.stopped || s.st == nil || seq != s.turnSeq {
		s.mu.Unlock()
		return
	}
	if s.st.Phase == hand.PhaseScoring || s.st.Phase == hand.PhaseGameOver {
		s.mu.Unlock()
		return
	}

	seat := s.st.Current
	logger.LogInfo("room %s: seat %d timed out, policy acts", s.room.Code, seat)

	a, err := s.policy.Propose(s.st, seat)
	if err != nil {
		s.mu.Unlock()
		logger.LogError("room %s: policy stuck on timeout at seat %d: %v", s.room.Code, seat, err)
		return
	}
	if err := s.st.Apply(seat, a); err != nil {
		s.mu.Unlock()
		logger.LogError("room %s: timeout action %v rejected at seat %d: %v", s.room.Code, a, seat, err)
		return
	}
	s.afterAction(seat, a)
	s.mu.Unlock()

	s.RunPendingBots()
}

// finishHand scores the hand, settles running totals, persists stats, and
// either deals the next hand or ends the table. Callers hold s.mu.
func (s *Session) finishHand() {
	hs := score.Calculate(s.st)

	result := protocol.HandResultPayload{
		Leaster:        hs.Leaster,
		PickerSeat:     hs.PickerSeat,
		PartnerSeat:    hs.PartnerSeat,
		PickerPoints:   hs.PickerPoints,
		DefenderPoints: hs.DefenderPoints,
		PickerWins:     hs.PickerWins,
		Schneider:      hs.Schneider,
		Schwarz:        hs.Schwarz,
		Multiplier:     hs.Multiplier,
	}
	if !hs.Leaster {
		for _, c := range s.st.Buried {
			result.Buried = append(result.Buried, c.String())
		}
	}

	s.room.mu.Lock()
	humanOnline := false
	for seat := 0; seat < len(s.st.Seats); seat++ {
		p := s.room.playerAtSeat(seat)
		if p == nil {
			continue
		}
		p.Score += hs.Deltas[seat]
		if p.Client != nil && !p.IsBot {
			humanOnline = true
		}
		result.Seats = append(result.Seats, protocol.SeatResult{
			PlayerID:    p.ID,
			PlayerName:  p.Name,
			Seat:        seat,
			PointsTaken: trickPoints(s.st, seat),
			Delta:       hs.Deltas[seat],
			Score:       p.Score,
		})

		if s.store != nil && !p.IsBot {
			wasPicker := seat == hs.PickerSeat
			go func(id, name string, picker bool, delta int) {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := s.store.RecordHandResult(ctx, id, name, picker, delta); err != nil {
					logger.LogError("recording hand result for %s: %v", id, err)
				}
			}(p.ID, p.Name, wasPicker, hs.Deltas[seat])
		}
	}
	s.room.Broadcast(protocol.MustNewMessage(protocol.MsgHandResult, result))
	s.room.mu.Unlock()

	logger.LogInfo("room %s: hand %d scored, picker seat %d, deltas %v",
		s.room.Code, s.handNumber, hs.PickerSeat, hs.Deltas)

	s.st.CompleteScoring()
	s.dealer = deck.NextDealer(s.dealer, s.room.Rules.Players)

	if !humanOnline {
		// No one left watching; a table of bots plays no more hands.
		s.endGame()
		return
	}

	// Deal the next hand off this goroutine so the result lands first.
	time.AfterFunc(3*time.Second, s.StartHand)
}

// endGame broadcasts final totals and closes the table. Callers hold s.mu.
func (s *Session) endGame() {
	s.stopped = true
	if s.turnTimer != nil {
		s.turnTimer.Stop()
	}

	var payload protocol.GameOverPayload
	s.room.mu.Lock()
	for _, id := range s.room.PlayerOrder {
		p := s.room.Players[id]
		payload.Seats = append(payload.Seats, protocol.SeatResult{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Seat:       p.Seat,
			Score:      p.Score,
		})
	}
	s.room.Broadcast(protocol.MustNewMessage(protocol.MsgGameOver, payload))
	s.room.State = RoomStateEnded
	s.room.mu.Unlock()

	logger.LogInfo("room %s: game over", s.room.Code)
}

// Stop halts the session without a final broadcast, used when the room is
// torn down.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.turnTimer != nil {
		s.turnTimer.Stop()
	}
}

// State exposes a snapshot of the live hand for tests and diagnostics.
func (s *Session) State() *hand.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st == nil {
		return nil
	}
	return s.st.Clone()
}

// HandNumber reports how many hands have been dealt.
func (s *Session) HandNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handNumber
}

// trickPoints is the card points a seat captured in its tricks.
func trickPoints(st *hand.State, seat int) int {
	pts := 0
	for _, t := range st.Seats[seat].TricksWon {
		for _, p := range t.Plays {
			pts += p.Card.Points()
		}
	}
	return pts
}
