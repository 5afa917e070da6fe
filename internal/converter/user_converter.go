package converter

import (
	"patient-management-service/internal/delivery/dto"
	"patient-management-service/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	role := user.Role.RoleName
	if role == "" {
		role = entity.RoleName(user.RoleID)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities to response DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		resp := UserToResponse(&user)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
