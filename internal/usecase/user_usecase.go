package usecase

import (
	"context"

	"patient-management-service/internal/converter"
	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/domain/entity"
	"patient-management-service/internal/domain/repository"
	"patient-management-service/internal/service"
	"patient-management-service/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserUsecase covers the admin-only account management surface.
type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetAll(ctx context.Context) (*dto.UserListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	roleID := roleIDByName(req.Role)
	if roleID == 0 {
		return nil, apperrors.InvalidValue("role", "must be admin, assistant or user")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
		RoleID:   roleID,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, apperrors.Conflict("username already exists")
		}
		if isForeignKeyError(err, "role") {
			return nil, apperrors.InvalidValue("role", "unknown role")
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogCreate(ctx, actorID, entity.AuditActionUserCreate, "user", user.ID.String(), user.Username)

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAll(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// Delete removes an account. Deleting an admin requires at least one other
// admin to remain: the system must never be left without an admin, even when
// the sole admin asks to delete their own account.
func (u *userUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return err
	}
	if user == nil {
		return apperrors.NotFound("user")
	}

	if user.IsAdmin() {
		adminCount, err := u.userRepo.CountByRole(ctx, entity.RoleIDAdmin)
		if err != nil {
			u.log.Warnf("Failed to count admin users: %+v", err)
			return err
		}
		if adminCount <= 1 {
			return apperrors.Forbidden("cannot delete the last remaining admin account")
		}
	}

	affected, err := u.userRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete user %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("user")
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogDelete(ctx, actorID, entity.AuditActionUserDelete, "user", id.String(), user.Username)

	return nil
}

func roleIDByName(name string) int {
	switch name {
	case entity.RoleAdmin:
		return entity.RoleIDAdmin
	case entity.RoleAssistant:
		return entity.RoleIDAssistant
	case entity.RoleUser:
		return entity.RoleIDUser
	default:
		return 0
	}
}
