package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/classifieds-board/backend/internal/db"
	"github.com/classifieds-board/backend/internal/model"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	maxPasswordLength = 72 // bcrypt input limit
)

// UserDirectory is the persistent identity store the auth core reads and
// writes. Lookups return db.ErrNotFound for missing rows and Save returns
// db.ErrDuplicate on a uniqueness violation.
type UserDirectory interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Save(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, user *model.User) error
}

type AuthService struct {
	users  UserDirectory
	hasher *PasswordHasher
	tokens *TokenManager
	log    *slog.Logger

	// compared against on unknown usernames so both login failures cost
	// one bcrypt comparison
	dummyHash string
}

func NewAuthService(users UserDirectory, hasher *PasswordHasher, tokens *TokenManager, log *slog.Logger) (*AuthService, error) {
	dummy, err := hasher.Hash("dummy-password-for-timing")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		log:       log.With("component", "auth"),
		dummyHash: dummy,
	}, nil
}

// Register creates a new account and returns its id. A taken username or
// email yields ErrConflict, including when a concurrent registration wins
// the race at the storage layer.
func (s *AuthService) Register(ctx context.Context, in model.NewUser) (int64, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateUsername(in.Username); err != nil {
		return 0, err
	}
	if err := validateEmail(in.Email); err != nil {
		return 0, err
	}
	if err := validatePassword(in.Password); err != nil {
		return 0, err
	}

	if err := checkAvailable(ctx, s.users, in.Username, in.Email, 0); err != nil {
		return 0, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Save(ctx, &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return 0, ErrConflict
		}
		return 0, fmt.Errorf("save user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user.ID, nil
}

// Login checks credentials and issues a fresh token pair. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			s.hasher.Verify(password, s.dummyHash)
			s.log.DebugContext(ctx, "login rejected", "reason", "unknown user")
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.DebugContext(ctx, "login rejected", "reason", "password mismatch", "user_id", user.ID)
		return nil, ErrUnauthorized
	}

	pair, err := s.tokens.IssuePair(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new access and refresh
// pair. Refresh tokens are not tracked, so an unexpired one can be
// replayed until it expires.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, ErrUnauthorized
	}

	username, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		s.log.DebugContext(ctx, "refresh rejected", "reason", err.Error())
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	pair, err := s.tokens.IssuePair(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	return pair, nil
}

// Authenticate resolves an Authorization header value to a user. Every
// credential problem is reported as ErrUnauthorized; only storage
// failures come back as other errors.
func (s *AuthService) Authenticate(ctx context.Context, authorization string) (*model.User, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return nil, ErrUnauthorized
	}

	username, err := s.tokens.VerifyAccess(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", "reason", err.Error())
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			s.log.DebugContext(ctx, "access token rejected", "reason", "unknown subject")
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	return user, nil
}

// checkAvailable returns ErrConflict when username or email belongs to an
// account other than selfID. Empty values are skipped.
func checkAvailable(ctx context.Context, users UserDirectory, username, email string, selfID int64) error {
	if username != "" {
		existing, err := users.FindByUsername(ctx, username)
		if err == nil && existing.ID != selfID {
			return ErrConflict
		}
		if err != nil && !db.IsNoRows(err) {
			return fmt.Errorf("find user: %w", err)
		}
	}
	if email != "" {
		existing, err := users.FindByEmail(ctx, email)
		if err == nil && existing.ID != selfID {
			return ErrConflict
		}
		if err != nil && !db.IsNoRows(err) {
			return fmt.Errorf("find user: %w", err)
		}
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf("%w: username must be %d-%d characters", ErrInvalidInput, minUsernameLength, maxUsernameLength)
	}
	if strings.ContainsAny(username, " \t\r\n") {
		return fmt.Errorf("%w: username must not contain whitespace", ErrInvalidInput)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}
	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password longer than %d bytes", ErrInvalidInput, maxPasswordLength)
	}
	return nil
}
