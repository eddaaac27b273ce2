package dto

import (
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a new user.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"required,oneof=accountant admin manager"`
}

// UpdateUserRequest defines the data allowed for updating a user.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      *string `json:"role" binding:"omitempty,oneof=accountant admin manager"`
}

// SuspendUserRequest defines the suspension window to apply to a user.
type SuspendUserRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required,gtfield=Start"`
}

// UserResponse defines the data returned for a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	UserID          string          `json:"userID"`
	Username        string          `json:"username"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Role            domain.UserRole `json:"role"`
	Active          bool            `json:"active"`
	SuspensionStart *time.Time      `json:"suspensionStart,omitempty"`
	SuspensionEnd   *time.Time      `json:"suspensionEnd,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:          u.UserID,
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Role:            u.Role,
		Active:          u.Active,
		SuspensionStart: u.SuspensionStart,
		SuspensionEnd:   u.SuspensionEnd,
		CreatedAt:       u.CreatedAt,
		LastUpdatedAt:   u.LastUpdatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to response DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
