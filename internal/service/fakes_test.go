package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/classifieds-board/backend/internal/db"
	"github.com/classifieds-board/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	mu             sync.Mutex
	nextID         int64
	users          map[int64]model.User
	byUsernameHits int
	failWith       error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]model.User{}}
}

func (f *fakeUserStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byUsernameHits++
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeUserStore) FindByID(ctx context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeUserStore) Save(ctx context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID != user.ID && (u.Username == user.Username || u.Email == user.Email) {
			return nil, db.ErrDuplicate
		}
	}
	saved := *user
	now := time.Now()
	if saved.ID == 0 {
		f.nextID++
		saved.ID = f.nextID
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now
	f.users[saved.ID] = saved
	return &saved, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return db.ErrNotFound
	}
	delete(f.users, user.ID)
	return nil
}

func (f *fakeUserStore) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.User{}
	for _, u := range f.users {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	if skip >= len(list) {
		return []model.User{}, nil
	}
	list = list[skip:]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

type fakeAdStore struct {
	mu     sync.Mutex
	nextID int64
	ads    map[int64]model.Ad
}

func newFakeAdStore() *fakeAdStore {
	return &fakeAdStore{ads: map[int64]model.Ad{}}
}

func (f *fakeAdStore) ListAds(ctx context.Context, skip, limit int) ([]model.Ad, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.Ad{}
	for _, a := range f.ads {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	if skip >= len(list) {
		return []model.Ad{}, nil
	}
	list = list[skip:]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (f *fakeAdStore) ListAdsByUser(ctx context.Context, userID int64) ([]model.Ad, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []model.Ad{}
	for _, a := range f.ads {
		if a.UserID == userID {
			list = append(list, a)
		}
	}
	return list, nil
}

func (f *fakeAdStore) GetAd(ctx context.Context, id int64) (*model.Ad, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.ads[id]; ok {
		return &a, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeAdStore) CreateAd(ctx context.Context, userID int64, in model.AdInput) (*model.Ad, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	now := time.Now()
	ad := model.Ad{
		ID:          f.nextID,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      userID,
	}
	f.ads[ad.ID] = ad
	return &ad, nil
}

func (f *fakeAdStore) UpdateAd(ctx context.Context, id int64, in model.AdInput) (*model.Ad, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ad, ok := f.ads[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	ad.Title, ad.Category, ad.Description, ad.Price = in.Title, in.Category, in.Description, in.Price
	ad.UpdatedAt = time.Now()
	f.ads[id] = ad
	return &ad, nil
}

func (f *fakeAdStore) DeleteAd(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ads[id]; !ok {
		return db.ErrNotFound
	}
	delete(f.ads, id)
	return nil
}

func newTestHasher() *PasswordHasher {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}

func newTestTokens(now func() time.Time) *TokenManager {
	m, err := NewTokenManager(TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	})
	if err != nil {
		panic(err)
	}
	if now != nil {
		m.now = now
	}
	return m
}

// clock is a settable time source shared by a TokenManager under test.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
