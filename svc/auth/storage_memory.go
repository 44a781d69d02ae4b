package auth

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage keeps accounts in process memory. Returned users are copies.
type MemoryStorage struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:   make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (m *MemoryStorage) CreateUser(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[user.Email]; ok {
		return ErrEmailTaken
	}
	u := clone(user)
	m.users[u.ID] = u
	m.byEmail[u.Email] = u.ID
	return nil
}

func (m *MemoryStorage) GetUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return clone(u), nil
}

func (m *MemoryStorage) GetUserByEmail(_ context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return clone(m.users[id]), nil
}

func (m *MemoryStorage) UpdatePassword(_ context.Context, id uuid.UUID, hash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return ErrUserNotFound
	}
	u.PasswordHash = slices.Clone(hash)
	u.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStorage) UpdateProfile(_ context.Context, id uuid.UUID, upd ProfileUpdate) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if upd.Email != nil && *upd.Email != u.Email {
		if _, taken := m.byEmail[*upd.Email]; taken {
			return nil, ErrEmailTaken
		}
		delete(m.byEmail, u.Email)
		u.Email = *upd.Email
		m.byEmail[u.Email] = u.ID
	}
	if upd.Name != nil {
		name := *upd.Name
		u.Name = &name
	}
	u.UpdatedAt = time.Now()

	return clone(u), nil
}

func clone(u *User) *User {
	c := *u
	if u.Name != nil {
		name := *u.Name
		c.Name = &name
	}
	c.PasswordHash = slices.Clone(u.PasswordHash)
	return &c
}
