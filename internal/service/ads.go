package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/classifieds-board/backend/internal/db"
	"github.com/classifieds-board/backend/internal/model"
)

// maxPrice is the largest value a NUMERIC(10,2) column holds.
const maxPrice = 99999999.99

type AdStore interface {
	ListAds(ctx context.Context, skip, limit int) ([]model.Ad, error)
	ListAdsByUser(ctx context.Context, userID int64) ([]model.Ad, error)
	GetAd(ctx context.Context, id int64) (*model.Ad, error)
	CreateAd(ctx context.Context, userID int64, in model.AdInput) (*model.Ad, error)
	UpdateAd(ctx context.Context, id int64, in model.AdInput) (*model.Ad, error)
	DeleteAd(ctx context.Context, id int64) error
}

type AdService struct {
	ads   AdStore
	users UserDirectory
	log   *slog.Logger
}

func NewAdService(ads AdStore, users UserDirectory, log *slog.Logger) *AdService {
	return &AdService{ads: ads, users: users, log: log.With("component", "ads")}
}

func (s *AdService) List(ctx context.Context, skip, limit int) ([]model.Ad, error) {
	skip, limit = normalizePage(skip, limit)
	return s.ads.ListAds(ctx, skip, limit)
}

func (s *AdService) Get(ctx context.Context, id int64) (*model.Ad, error) {
	ad, err := s.ads.GetAd(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ad, nil
}

// ListByUser returns the ads owned by userID, or ErrNotFound when the user
// does not exist.
func (s *AdService) ListByUser(ctx context.Context, userID int64) ([]model.Ad, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.ads.ListAdsByUser(ctx, userID)
}

func (s *AdService) Create(ctx context.Context, user *model.User, in model.AdInput) (*model.Ad, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	in, err := normalizeAdInput(in)
	if err != nil {
		return nil, err
	}

	ad, err := s.ads.CreateAd(ctx, user.ID, in)
	if err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	s.log.InfoContext(ctx, "ad created", "ad_id", ad.ID, "user_id", user.ID)
	return ad, nil
}

func (s *AdService) Update(ctx context.Context, user *model.User, id int64, in model.AdInput) (*model.Ad, error) {
	ad, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AssertOwner(ad.UserID, user); err != nil {
		return nil, err
	}
	in, err = normalizeAdInput(in)
	if err != nil {
		return nil, err
	}

	updated, err := s.ads.UpdateAd(ctx, id, in)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update ad: %w", err)
	}
	s.log.InfoContext(ctx, "ad updated", "ad_id", id, "user_id", user.ID)
	return updated, nil
}

func (s *AdService) Delete(ctx context.Context, user *model.User, id int64) error {
	ad, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := AssertOwner(ad.UserID, user); err != nil {
		return err
	}

	if err := s.ads.DeleteAd(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete ad: %w", err)
	}
	s.log.InfoContext(ctx, "ad deleted", "ad_id", id, "user_id", user.ID)
	return nil
}

func normalizeAdInput(in model.AdInput) (model.AdInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" || in.Category == "" {
		return in, fmt.Errorf("%w: title and category are required", ErrInvalidInput)
	}
	if math.IsNaN(in.Price) || in.Price < 0 || in.Price > maxPrice {
		return in, fmt.Errorf("%w: price out of range", ErrInvalidInput)
	}
	in.Price = math.Round(in.Price*100) / 100
	return in, nil
}
