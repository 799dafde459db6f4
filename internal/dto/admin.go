package dto

import (
	md "github.com/JMURv/courseguard/internal/models"
	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     md.Role `json:"role"`
}

type CreateUserResponse struct {
	ID uuid.UUID `json:"id"`
}

type PaginatedSessionResponse struct {
	Data        []*md.Session `json:"data"`
	Count       int64         `json:"count"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	HasNextPage bool          `json:"hasNextPage"`
}

type PaginatedEventResponse struct {
	Data        []*md.SecurityEvent `json:"data"`
	Count       int64               `json:"count"`
	TotalPages  int                 `json:"totalPages"`
	CurrentPage int                 `json:"currentPage"`
	HasNextPage bool                `json:"hasNextPage"`
}
