package handler

import (
	"context"
	"sync"

	"github.com/classifieds-board/backend/internal/db"
	"github.com/classifieds-board/backend/internal/model"
)

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.User
}

func (m *memUsers) find(match func(model.User) bool) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if match(u) {
			return &u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *memUsers) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.find(func(u model.User) bool { return u.Username == username })
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.find(func(u model.User) bool { return u.Email == email })
}

func (m *memUsers) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return m.find(func(u model.User) bool { return u.ID == id })
}

func (m *memUsers) Save(ctx context.Context, user *model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if u.ID != user.ID && (u.Username == user.Username || u.Email == user.Email) {
			return nil, db.ErrDuplicate
		}
	}
	saved := *user
	if saved.ID == 0 {
		m.nextID++
		saved.ID = m.nextID
	}
	m.rows[saved.ID] = saved
	return &saved, nil
}

func (m *memUsers) Delete(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[user.ID]; !ok {
		return db.ErrNotFound
	}
	delete(m.rows, user.ID)
	return nil
}

func (m *memUsers) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := []model.User{}
	for id := int64(1); id <= m.nextID && len(list) < skip+limit; id++ {
		if u, ok := m.rows[id]; ok {
			list = append(list, u)
		}
	}
	if skip >= len(list) {
		return []model.User{}, nil
	}
	return list[skip:], nil
}

type memAds struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Ad
}

func (m *memAds) ListAds(ctx context.Context, skip, limit int) ([]model.Ad, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := []model.Ad{}
	for _, a := range m.rows {
		list = append(list, a)
	}
	return list, nil
}

func (m *memAds) ListAdsByUser(ctx context.Context, userID int64) ([]model.Ad, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := []model.Ad{}
	for _, a := range m.rows {
		if a.UserID == userID {
			list = append(list, a)
		}
	}
	return list, nil
}

func (m *memAds) GetAd(ctx context.Context, id int64) (*model.Ad, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.rows[id]; ok {
		return &a, nil
	}
	return nil, db.ErrNotFound
}

func (m *memAds) CreateAd(ctx context.Context, userID int64, in model.AdInput) (*model.Ad, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	ad := model.Ad{ID: m.nextID, Title: in.Title, Category: in.Category, Description: in.Description, Price: in.Price, UserID: userID}
	m.rows[ad.ID] = ad
	return &ad, nil
}

func (m *memAds) UpdateAd(ctx context.Context, id int64, in model.AdInput) (*model.Ad, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ad, ok := m.rows[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	ad.Title, ad.Category, ad.Description, ad.Price = in.Title, in.Category, in.Description, in.Price
	m.rows[id] = ad
	return &ad, nil
}

func (m *memAds) DeleteAd(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return db.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}
