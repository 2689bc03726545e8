package repo

import (
	"context"

	"github.com/crucial707/todo-api/internal/models"
	"gorm.io/gorm"
)

// ========================
// REPOSITORY STRUCT
// ========================

type TodoRepo struct {
	DB *gorm.DB
}

func NewTodoRepo(db *gorm.DB) *TodoRepo {
	return &TodoRepo{DB: db}
}

// ========================
// CREATE TODO
// ========================

func (r *TodoRepo) Create(ctx context.Context, content string, userID int) (*models.Todo, error) {
	todo := &models.Todo{
		Content: content,
		UserID:  userID,
	}

	if err := r.DB.WithContext(ctx).Create(todo).Error; err != nil {
		return nil, classify(err)
	}

	return todo, nil
}

// ========================
// GET TODO BY ID
// ========================

func (r *TodoRepo) GetByID(ctx context.Context, id int) (*models.Todo, error) {
	todo := &models.Todo{}

	if err := r.DB.WithContext(ctx).First(todo, id).Error; err != nil {
		return nil, classify(err)
	}

	return todo, nil
}

// ========================
// DELETE TODO BY ID
// ========================

// Delete removes the todo with the given id. A missing row is ErrNotFound.
func (r *TodoRepo) Delete(ctx context.Context, id int) error {
	result := r.DB.WithContext(ctx).Delete(&models.Todo{}, id)
	if result.Error != nil {
		return classify(result.Error)
	}

	if result.RowsAffected == 0 {
		return classify(gorm.ErrRecordNotFound)
	}

	return nil
}
