// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaloria/v1/internal/domain/account"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// UserRepository implements the user repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) outbound.UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *account.User) error {
	model := UserToModel(user)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return account.ErrEmailExists
		}
		return result.Error
	}
	return nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, user *account.User) error {
	model := UserToModel(user)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return account.ErrUserNotFound
	}
	return nil
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, account.ErrUserNotFound
		}
		return nil, result.Error
	}
	return ModelToUser(&model), nil
}

// FindByEmail finds a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*account.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "email = ?", strings.ToLower(email))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, account.ErrUserNotFound
		}
		return nil, result.Error
	}
	return ModelToUser(&model), nil
}

// ExistsByEmail reports whether a user with the email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// List returns a page of users ordered by creation time
func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]*account.User, int64, error) {
	var models []UserModel
	var total int64

	if err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	users := make([]*account.User, 0, len(models))
	for i := range models {
		users = append(users, ModelToUser(&models[i]))
	}
	return users, total, nil
}

// Delete deletes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return account.ErrUserNotFound
	}
	return nil
}

func isDuplicateErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
