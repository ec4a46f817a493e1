package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/classifieds-board/backend/internal/db"
	"github.com/classifieds-board/backend/internal/model"
)

type UserStore interface {
	UserDirectory
	ListUsers(ctx context.Context, skip, limit int) ([]model.User, error)
}

type UserService struct {
	store  UserStore
	hasher *PasswordHasher
	log    *slog.Logger
}

func NewUserService(store UserStore, hasher *PasswordHasher, log *slog.Logger) *UserService {
	return &UserService{store: store, hasher: hasher, log: log.With("component", "users")}
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	skip, limit = normalizePage(skip, limit)
	return s.store.ListUsers(ctx, skip, limit)
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the allow-listed fields of upd to current's own
// record. A password change is re-hashed before it is stored.
func (s *UserService) UpdateProfile(ctx context.Context, current *model.User, upd model.UserUpdate) (*model.User, error) {
	if current == nil {
		return nil, ErrUnauthorized
	}
	target, err := s.Get(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	if err := AssertOwner(target.ID, current); err != nil {
		return nil, err
	}

	var newUsername, newEmail string
	if upd.Username != nil {
		newUsername = strings.TrimSpace(*upd.Username)
		if err := validateUsername(newUsername); err != nil {
			return nil, err
		}
		target.Username = newUsername
	}
	if upd.Email != nil {
		newEmail = strings.TrimSpace(*upd.Email)
		if err := validateEmail(newEmail); err != nil {
			return nil, err
		}
		target.Email = newEmail
	}
	if err := checkAvailable(ctx, s.store, newUsername, newEmail, target.ID); err != nil {
		return nil, err
	}

	if upd.Password != nil {
		if err := validatePassword(*upd.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		target.PasswordHash = hash
	}
	if upd.FirstName != nil {
		target.FirstName = strings.TrimSpace(*upd.FirstName)
	}
	if upd.LastName != nil {
		target.LastName = strings.TrimSpace(*upd.LastName)
	}
	if upd.Phone != nil {
		target.Phone = strings.TrimSpace(*upd.Phone)
	}

	saved, err := s.store.Save(ctx, target)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", "user_id", saved.ID, "password_changed", upd.Password != nil)
	return saved, nil
}

// DeleteProfile removes current's account. Their ads go with it.
func (s *UserService) DeleteProfile(ctx context.Context, current *model.User) error {
	if current == nil {
		return ErrUnauthorized
	}
	target, err := s.Get(ctx, current.ID)
	if err != nil {
		return err
	}
	if err := AssertOwner(target.ID, current); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, target); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "profile deleted", "user_id", target.ID)
	return nil
}
