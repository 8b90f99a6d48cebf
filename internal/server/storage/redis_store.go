// Package storage persists player sessions and lifetime stats in Redis. Room
// and hand state stay in memory; what lives here must survive a server
// restart or a dropped connection.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JohnLemonNFT/sheepshead-sub000/internal/protocol"
)

const (
	sessionKeyPrefix = "session:"
	statsKeyPrefix   = "player:stats:"
	leaderboardKey   = "leaderboard:score"

	sessionExpiration = 24 * time.Hour
)

// Stake points credited per unit of hand delta. Hand deltas are small
// integers; scaling keeps the leaderboard readable.
const scorePerDelta = 10

// PlayerStats is one player's lifetime record.
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	TotalHands int `json:"total_hands"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`

	PickerHands int `json:"picker_hands"`
	PickerWins  int `json:"picker_wins"`

	Score int `json:"score"`

	LastPlayedAt int64 `json:"last_played_at"`
	CreatedAt    int64 `json:"created_at"`
}

// WinRate is the player's win percentage.
func (s *PlayerStats) WinRate() float64 {
	if s.TotalHands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalHands) * 100
}

// PlayerSessionData is the reconnect record for one player.
type PlayerSessionData struct {
	PlayerID       string `json:"player_id"`
	PlayerName     string `json:"player_name"`
	ReconnectToken string `json:"token"`
	RoomCode       string `json:"room_code"`
	IsOnline       bool   `json:"is_online"`
	DisconnectedAt int64  `json:"disconnected_at,omitempty"`
}

// RedisStore wraps the Redis client behind domain operations.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store around an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping verifies the connection.
func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// --- Sessions ---

// SaveSession writes the reconnect record as a hash with a rolling TTL.
func (rs *RedisStore) SaveSession(ctx context.Context, session *PlayerSessionData) error {
	data := map[string]any{
		"player_id":   session.PlayerID,
		"player_name": session.PlayerName,
		"token":       session.ReconnectToken,
		"room_code":   session.RoomCode,
		"is_online":   session.IsOnline,
	}
	if session.DisconnectedAt != 0 {
		data["disconnected_at"] = session.DisconnectedAt
	}

	key := sessionKeyPrefix + session.PlayerID
	if err := rs.client.HSet(ctx, key, data).Err(); err != nil {
		return err
	}
	return rs.client.Expire(ctx, key, sessionExpiration).Err()
}

// LoadSession returns the reconnect record, or nil when none exists.
func (rs *RedisStore) LoadSession(ctx context.Context, playerID string) (*PlayerSessionData, error) {
	key := sessionKeyPrefix + playerID
	data, err := rs.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &PlayerSessionData{
		PlayerID:       data["player_id"],
		PlayerName:     data["player_name"],
		ReconnectToken: data["token"],
		RoomCode:       data["room_code"],
		IsOnline:       data["is_online"] == "1",
	}, nil
}

// DeleteSession drops the reconnect record.
func (rs *RedisStore) DeleteSession(ctx context.Context, playerID string) error {
	return rs.client.Del(ctx, sessionKeyPrefix+playerID).Err()
}

// --- Stats and leaderboard ---

// GetPlayerStats returns the lifetime record, or nil for an unknown player.
func (rs *RedisStore) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := rs.client.Get(ctx, statsKeyPrefix+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &stats, nil
}

// SavePlayerStats persists the record and refreshes the leaderboard score.
func (rs *RedisStore) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	if err := rs.client.Set(ctx, statsKeyPrefix+stats.PlayerID, data, 0).Err(); err != nil {
		return err
	}
	return rs.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.Score),
		Member: stats.PlayerID,
	}).Err()
}

func (rs *RedisStore) getOrCreateStats(ctx context.Context, playerID, playerName string) (*PlayerStats, error) {
	stats, err := rs.GetPlayerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &PlayerStats{
			PlayerID:   playerID,
			PlayerName: playerName,
			CreatedAt:  time.Now().Unix(),
		}
	}
	return stats, nil
}

// RecordHandResult folds one scored hand into the player's record. delta is
// the player's share of the zero-sum stakes; wasPicker tracks the pick rate.
func (rs *RedisStore) RecordHandResult(ctx context.Context, playerID, playerName string, wasPicker bool, delta int) error {
	stats, err := rs.getOrCreateStats(ctx, playerID, playerName)
	if err != nil {
		return err
	}

	stats.PlayerName = playerName
	stats.TotalHands++
	stats.LastPlayedAt = time.Now().Unix()

	if wasPicker {
		stats.PickerHands++
		if delta > 0 {
			stats.PickerWins++
		}
	}
	if delta > 0 {
		stats.Wins++
	} else if delta < 0 {
		stats.Losses++
	}
	stats.Score += delta * scorePerDelta

	return rs.SavePlayerStats(ctx, stats)
}

// GetLeaderboard returns score-sorted entries, highest first.
func (rs *RedisStore) GetLeaderboard(ctx context.Context, offset, limit int) ([]protocol.LeaderboardEntry, error) {
	results, err := rs.client.ZRevRangeWithScores(ctx, leaderboardKey,
		int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]protocol.LeaderboardEntry, 0, len(results))
	for i, result := range results {
		playerID, _ := result.Member.(string)
		stats, err := rs.GetPlayerStats(ctx, playerID)
		if err != nil || stats == nil {
			continue
		}
		entries = append(entries, protocol.LeaderboardEntry{
			Rank:       offset + i + 1,
			PlayerID:   playerID,
			PlayerName: stats.PlayerName,
			Score:      int(result.Score),
			Wins:       stats.Wins,
			WinRate:    stats.WinRate(),
		})
	}
	return entries, nil
}

// GetPlayerRank returns the 1-based leaderboard rank, or -1 when unranked.
func (rs *RedisStore) GetPlayerRank(ctx context.Context, playerID string) (int64, error) {
	rank, err := rs.client.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, err
	}
	return rank + 1, nil
}
