package store

import (
	"strings"
	"sync"
	"time"

	"civicreport-be/models"
)

// UserStore is the in-memory stand-in for the identity provider. It
// tags users with a role and nothing more; the issue core treats user
// ids as opaque strings.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]*models.User

	now   Clock
	newID IDFunc
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
		now:     time.Now,
		newID:   newObjectID,
	}
}

// Create registers a user with a bcrypt-hashed password.
func (s *UserStore) Create(name, email, password string, role models.UserRole) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.User{}, &ValidationError{Field: "email", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[email]; ok {
		return models.User{}, &ValidationError{Field: "email", Reason: "already registered"}
	}

	user := &models.User{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: s.now(),
	}
	if err := user.HashPassword(); err != nil {
		return models.User{}, err
	}
	s.byID[user.ID] = user
	s.byEmail[email] = user
	return *user, nil
}

func (s *UserStore) FindByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return models.User{}, &NotFoundError{Kind: "user", ID: email}
	}
	return *user, nil
}

func (s *UserStore) FindByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byID[id]
	if !ok {
		return models.User{}, &NotFoundError{Kind: "user", ID: id}
	}
	return *user, nil
}
