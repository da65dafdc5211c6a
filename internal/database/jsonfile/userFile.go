package repository

import (
	"context"
	"strings"

	"excursion-booking/internal/entity"
	"excursion-booking/pkg/jsondb"
)

type userRepository struct {
	store *jsondb.Store
}

func NewUserRepository(store *jsondb.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.Update(func(tx *jsondb.Tx) error {
		var users []*entity.User
		if err := tx.Read(usersCollection, &users); err != nil {
			return err
		}

		for _, u := range users {
			if strings.EqualFold(u.Email, user.Email) {
				return entity.ErrUserAlreadyExists
			}
		}

		ids := make([]int64, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		user.ID = nextID(ids)

		users = append(users, user)
		return tx.Write(usersCollection, users)
	})
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var users []*entity.User
	if err := r.store.View(usersCollection, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var users []*entity.User
	if err := r.store.View(usersCollection, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *userRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := r.store.View(usersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}
