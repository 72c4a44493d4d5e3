package repository

import (
	"time"

	"shareabyte/internal/domain"
	"shareabyte/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(p *models.Post) error {
	return r.db.Create(p).Error
}

func (r *PostRepository) GetByID(id uint) (*models.Post, error) {
	var p models.Post
	err := r.db.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) ListByOwner(userID uint, limit, offset int) ([]models.Post, error) {
	var list []models.Post
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// SearchFilter narrows the public browse query. Zero values mean "any".
type SearchFilter struct {
	Query          string // matches title or description
	Category       string
	Location       string
	IncludeExpired bool
}

// Search returns Active posts visible to anyone, newest first.
func (r *PostRepository) Search(f SearchFilter, limit, offset int) ([]models.Post, error) {
	q := r.db.Where("status = ?", domain.PostStatusActive)
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if !f.IncludeExpired {
		q = q.Where("go_bad_date IS NULL OR go_bad_date > ?", time.Now())
	}
	var list []models.Post
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *PostRepository) Update(p *models.Post) error {
	return r.db.Save(p).Error
}

// UpdateStatus sets the status of a post owned by userID. Returns
// gorm.ErrRecordNotFound when no owned row matched.
func (r *PostRepository) UpdateStatus(id, userID uint, status string) error {
	res := r.db.Model(&models.Post{}).Where("id = ? AND user_id = ?", id, userID).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a post owned by userID.
func (r *PostRepository) Delete(id, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
