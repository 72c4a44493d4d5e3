package service

import (
	"context"
	"time"

	"shareabyte/config"
	"shareabyte/internal/cache"
	"shareabyte/internal/models"
	"shareabyte/internal/repository"
)

// LeaderboardCacheKey is invalidated on every score write.
const LeaderboardCacheKey = "leaderboard:top"

// ApplyAdjustment applies a signed delta to a score with a floor of zero.
// The clamp makes adjustment lossy: ApplyAdjustment(ApplyAdjustment(5, -50), 50)
// yields 50, not 5. Reputation can never go negative.
func ApplyAdjustment(current, delta int) int {
	if current < 0 {
		current = 0
	}
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}

type LeaderboardEntry struct {
	Rank      int       `json:"rank"`
	UserID    uint      `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Score     int       `json:"score"`
	Updated   time.Time `json:"updated"`
}

type ScoreService struct {
	repo  *repository.ScoreRepository
	cache *cache.Cache
	cfg   *config.RedisConfig
}

func NewScoreService(repo *repository.ScoreRepository, c *cache.Cache, cfg *config.RedisConfig) *ScoreService {
	return &ScoreService{repo: repo, cache: c, cfg: cfg}
}

// Adjust applies delta to the record with the zero floor and always stamps
// last_updated, whether or not the clamp changed anything.
func (s *ScoreService) Adjust(score *models.ShareScore, delta int) (int, error) {
	next := ApplyAdjustment(score.Score, delta)
	now := time.Now()
	if err := s.repo.SetScore(score.ID, next, now); err != nil {
		return score.Score, err
	}
	score.Score = next
	score.LastUpdated = &now
	s.cache.Delete(context.Background(), LeaderboardCacheKey)
	return next, nil
}

// Leaderboard returns the top entries with 1-based ranks, cache-aside.
func (s *ScoreService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	if found, _ := s.cache.GetJSON(ctx, LeaderboardCacheKey, &entries); found && len(entries) >= limit {
		return entries[:limit], nil
	}
	top, err := s.repo.Top(limit)
	if err != nil {
		return nil, err
	}
	entries = make([]LeaderboardEntry, len(top))
	for i, sc := range top {
		e := LeaderboardEntry{Rank: i + 1, UserID: sc.UserID, UserEmail: sc.UserEmail, Score: sc.Score}
		if sc.LastUpdated != nil {
			e.Updated = *sc.LastUpdated
		}
		entries[i] = e
	}
	ttl := 30 * time.Second
	if s.cfg != nil && s.cfg.LeaderboardTTL > 0 {
		ttl = s.cfg.LeaderboardTTL
	}
	_ = s.cache.SetJSON(ctx, LeaderboardCacheKey, entries, ttl)
	return entries, nil
}

// MyScore returns the acting user's score and computed rank.
func (s *ScoreService) MyScore(userID uint) (*models.ShareScore, int, error) {
	sc, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	rank, err := s.repo.RankOf(userID)
	if err != nil {
		return sc, 0, err
	}
	return sc, rank, nil
}
