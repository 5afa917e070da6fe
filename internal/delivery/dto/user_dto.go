package dto

// Request DTOs

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin assistant user"`
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
