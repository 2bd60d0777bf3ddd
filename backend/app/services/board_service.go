package services

import (
	"board-guard/backend/app/dto"
	"board-guard/backend/app/models"
	"board-guard/backend/app/repo"
	"board-guard/backend/global"
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

const maxTitleLen = 255

type BoardService struct{ boards *repo.BoardRepository }

func NewBoardService(boards *repo.BoardRepository) *BoardService {
	return &BoardService{boards: boards}
}

// Create always records ownerID as the owner; nothing in req can change that.
func (s *BoardService) Create(ctx context.Context, req dto.CreateBoardRequest, ownerID uint) (*models.Board, error) {
	title, err := validTitle(req.Title)
	if err != nil {
		return nil, err
	}
	b := &models.Board{Title: title, Content: req.Content, UserID: ownerID}
	if err := s.boards.Create(ctx, b); err != nil {
		global.Logger.Error().Err(err).Uint("owner", ownerID).Msg("failed to create board")
		return nil, err
	}
	return b, nil
}

// FindAll is not filtered by requester: every authenticated caller sees every board.
func (s *BoardService) FindAll(ctx context.Context) ([]models.Board, error) {
	return s.boards.List(ctx)
}

func (s *BoardService) FindOne(ctx context.Context, id uint) (*models.Board, error) {
	b, err := s.boards.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(ErrNotFound, "board %d not found", id)
	}
	if err != nil {
		global.Logger.Error().Err(err).Uint("id", id).Msg("failed to load board")
		return nil, err
	}
	return b, nil
}

// Update applies patch only when requesterID owns the board.
func (s *BoardService) Update(ctx context.Context, id uint, patch dto.UpdateBoardRequest, requesterID uint) (*models.Board, error) {
	b, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureAuthor(b, requesterID, "update"); err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if patch.Title != nil {
		title, err := validTitle(*patch.Title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if len(updates) == 0 {
		return b, nil
	}
	if err := s.boards.UpdateContent(ctx, id, updates); err != nil {
		global.Logger.Error().Err(err).Uint("id", id).Msg("failed to update board")
		return nil, err
	}
	return s.FindOne(ctx, id)
}

// Remove deletes the board permanently when requesterID owns it. The admin role
// is checked by the router before this runs; being admin does not bypass ownership.
func (s *BoardService) Remove(ctx context.Context, id uint, requesterID uint) error {
	b, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if err := ensureAuthor(b, requesterID, "delete"); err != nil {
		return err
	}
	if err := s.boards.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newError(ErrNotFound, "board %d not found", id)
		}
		global.Logger.Error().Err(err).Uint("id", id).Msg("failed to delete board")
		return err
	}
	return nil
}

func ensureAuthor(b *models.Board, requesterID uint, action string) error {
	if b.UserID != requesterID {
		return newError(ErrPermissionDenied, "only the author can %s this board", action)
	}
	return nil
}

func validTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", newError(ErrInvalidInput, "title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "", newError(ErrInvalidInput, "title longer than %d characters", maxTitleLen)
	}
	return title, nil
}
