package repository

import (
	"context"

	"patient-management-service/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	CountByRole(ctx context.Context, roleID int) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
