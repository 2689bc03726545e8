package repo

import (
	"context"

	"github.com/crucial707/todo-api/internal/models"
	"gorm.io/gorm"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	DB *gorm.DB
}

// ==========================
// Constructor
// ==========================
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// ==========================
// Create User
// ==========================

// Create stores a user. passwordHash must already be hashed.
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: passwordHash,
	}

	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, classify(err)
	}

	return user, nil
}

// ==========================
// Get By ID
// ==========================
func (r *UserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}

	if err := r.DB.WithContext(ctx).First(user, id).Error; err != nil {
		return nil, classify(err)
	}

	return user, nil
}

// ==========================
// Get By Email
// ==========================
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}

	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(user).Error; err != nil {
		return nil, classify(err)
	}

	return user, nil
}
