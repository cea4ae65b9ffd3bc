package transport

import (
	"github.com/go-playground/validator/v10"

	"github.com/piotrekk1688/shop-api/internal/models"
)

var validate = validator.New()

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// required on Price also rejects zero, so zero-priced products get a 400
// just like products with no price at all.
type CreateProductRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Price float64 `json:"price" validate:"required"`
}

// UserResponse is the only user shape that ever leaves the API: no
// password digest, no id.
type UserResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}

func ValidateCreateUser(req CreateUserRequest) error {
	return validate.Struct(req)
}

func ValidateLogin(req LoginRequest) error {
	return validate.Struct(req)
}

func ValidateCreateProduct(req CreateProductRequest) error {
	return validate.Struct(req)
}
