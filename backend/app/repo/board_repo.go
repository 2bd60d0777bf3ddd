package repo

import (
	"board-guard/backend/app/models"
	"context"

	"gorm.io/gorm"
)

type BoardRepository struct{ db *gorm.DB }

func NewBoardRepository(db *gorm.DB) *BoardRepository { return &BoardRepository{db: db} }

// Create inserts b without touching the owning user row and reloads the owner.
func (r *BoardRepository) Create(ctx context.Context, b *models.Board) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(b).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("User").First(b, b.ID).Error
}

func (r *BoardRepository) List(ctx context.Context) ([]models.Board, error) {
	var boards []models.Board
	err := r.db.WithContext(ctx).Preload("User").Order("id ASC").Find(&boards).Error
	return boards, err
}

// Get returns gorm.ErrRecordNotFound when the board does not exist.
func (r *BoardRepository) Get(ctx context.Context, id uint) (*models.Board, error) {
	var b models.Board
	if err := r.db.WithContext(ctx).Preload("User").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateContent writes only the given columns; user_id is never part of an update.
func (r *BoardRepository) UpdateContent(ctx context.Context, id uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	delete(updates, "user_id")
	return r.db.WithContext(ctx).Model(&models.Board{}).Where("id = ?", id).Updates(updates).Error
}

func (r *BoardRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Board{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
