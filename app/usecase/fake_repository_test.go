package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"user-api/app/domain"
	apperrors "user-api/app/utils/errors"
)

// fakeUserRepository is an in-memory port.UserRepository. It mirrors the
// real repository's contract: domain error values for missing users and
// duplicate emails, unique emails enforced on insert and update.
type fakeUserRepository struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		nextID: 1,
		users:  make(map[string]*domain.User),
	}
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepository) FindAll(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeUserRepository) Insert(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return apperrors.ErrUserExists
		}
	}

	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepository) Update(_ context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}

	if update.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *update.Email {
				return nil, apperrors.ErrUserExists
			}
		}
		user.Email = *update.Email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	user.UpdatedAt = time.Now().UTC()

	clone := *user
	return &clone, nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
