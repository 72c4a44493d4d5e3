package repository

import (
	"time"

	"shareabyte/internal/models"

	"gorm.io/gorm"
)

type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// CreateForUser seeds the one-per-user reputation record.
func (r *ScoreRepository) CreateForUser(userID uint, email string, initialScore int) (*models.ShareScore, error) {
	now := time.Now()
	s := &models.ShareScore{
		UserID:      userID,
		UserEmail:   email,
		Score:       initialScore,
		LastUpdated: &now,
	}
	if err := r.db.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ScoreRepository) GetByUserID(userID uint) (*models.ShareScore, error) {
	var s models.ShareScore
	err := r.db.Where("user_id = ?", userID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SetScore persists a new score value and stamps last_updated, whether or not
// the value actually changed.
func (r *ScoreRepository) SetScore(id uint, score int, at time.Time) error {
	return r.db.Model(&models.ShareScore{}).Where("id = ?", id).
		Updates(map[string]interface{}{"score": score, "last_updated": at}).Error
}

// Top returns the highest scores for the leaderboard. Ties rank the earlier
// last_updated first.
func (r *ScoreRepository) Top(limit int) ([]models.ShareScore, error) {
	var list []models.ShareScore
	err := r.db.Order("score DESC, last_updated ASC").Limit(limit).Find(&list).Error
	return list, err
}

// RankOf computes the 1-based leaderboard position of userID.
func (r *ScoreRepository) RankOf(userID uint) (int, error) {
	s, err := r.GetByUserID(userID)
	if err != nil {
		return 0, err
	}
	var ahead int64
	err = r.db.Model(&models.ShareScore{}).
		Where("score > ? OR (score = ? AND last_updated < ?)", s.Score, s.Score, s.LastUpdated).
		Count(&ahead).Error
	if err != nil {
		return 0, err
	}
	return int(ahead) + 1, nil
}
