package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/fluentfox-api/internal/domain"
	"github.com/phrazzld/fluentfox-api/internal/platform/logger"
	"github.com/phrazzld/fluentfox-api/internal/store"
)

// UserStore implements store.UserStore with maps guarded by a single
// RWMutex. IDs are assigned sequentially starting at 1 and are never
// reused after a delete.
type UserStore struct {
	mu      sync.RWMutex
	users   map[int]*domain.User
	byEmail map[string]int
	nextID  int
	now     func() time.Time
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user directory.
func NewUserStore() *UserStore {
	return &UserStore{
		users:   make(map[int]*domain.User),
		byEmail: make(map[string]int),
		nextID:  1,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if user == nil {
		return store.NewOpError("create", 0, fmt.Errorf("%w: nil user", store.ErrInvalidEntity))
	}
	if err := user.Validate(); err != nil {
		log.Debug("rejected invalid user", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	key := domain.NormalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[key]; taken {
		log.Debug("email already registered", slog.String("email", key))
		return store.ErrEmailExists
	}

	now := s.now()
	user.ID = s.nextID
	s.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	s.users[user.ID] = user.Clone()
	s.byEmail[key] = user.ID

	log.Debug("user created", slog.Int("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u.Clone(), nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return s.users[id].Clone(), nil
}

// List implements store.UserStore.List
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.Clone())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContext(ctx)

	if user == nil {
		return store.NewOpError("update", 0, fmt.Errorf("%w: nil user", store.ErrInvalidEntity))
	}
	if err := user.Validate(); err != nil {
		return store.NewOpError("update", user.ID, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}

	oldKey := domain.NormalizeEmail(existing.Email)
	newKey := domain.NormalizeEmail(user.Email)
	if newKey != oldKey {
		if owner, taken := s.byEmail[newKey]; taken && owner != user.ID {
			log.Debug("email already registered", slog.String("email", newKey))
			return store.ErrEmailExists
		}
		delete(s.byEmail, oldKey)
		s.byEmail[newKey] = user.ID
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = s.now()
	s.users[user.ID] = user.Clone()

	log.Debug("user updated", slog.Int("user_id", user.ID))
	return nil
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	delete(s.byEmail, domain.NormalizeEmail(u.Email))
	delete(s.users, id)

	logger.FromContext(ctx).Debug("user deleted", slog.Int("user_id", id))
	return nil
}
