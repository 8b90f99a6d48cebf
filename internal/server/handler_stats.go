package server

import (
	"context"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
	"github.com/JohnLemonNFT/sheepshead-sub000/internal/types"
)

func (s *Server) handleGetStats(client types.ClientInterface) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	stats, err := s.store.GetPlayerStats(ctx, client.GetID())
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "stats lookup failed"))
		return
	}

	if stats == nil {
		// No recorded hands yet.
		client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
			PlayerID:   client.GetID(),
			PlayerName: client.GetName(),
		}))
		return
	}

	rank, _ := s.store.GetPlayerRank(ctx, client.GetID())

	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
		PlayerID:    stats.PlayerID,
		PlayerName:  stats.PlayerName,
		TotalHands:  stats.TotalHands,
		Wins:        stats.Wins,
		Losses:      stats.Losses,
		WinRate:     stats.WinRate(),
		PickerHands: stats.PickerHands,
		PickerWins:  stats.PickerWins,
		Score:       stats.Score,
		Rank:        int(rank),
	}))
}

func (s *Server) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		payload = &protocol.GetLeaderboardPayload{Limit: 10}
	}
	if payload.Limit <= 0 || payload.Limit > 50 {
		payload.Limit = 10
	}
	if payload.Offset < 0 {
		payload.Offset = 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	entries, err := s.store.GetLeaderboard(ctx, payload.Offset, payload.Limit)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "leaderboard lookup failed"))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Entries: entries,
	}))
}

func (s *Server) handleGetRoomList(client types.ClientInterface) {
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomListResult, protocol.RoomListResultPayload{
		Rooms: s.roomManager.GetRoomList(),
	}))
}
