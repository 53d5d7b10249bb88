package dto

type CreateLocationDTO struct {
	Name string `json:"name" validate:"required"`
}
