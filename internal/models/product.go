package models

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategorySkincare  Category = "Skincare"
	CategoryMakeup    Category = "Makeup"
	CategoryFragrance Category = "Fragrance"
	CategoryHairCare  Category = "Hair Care"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Category    Category      `json:"category"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Rating      float64       `json:"rating"`
	Image       string        `json:"image,omitempty"`
	Status      ProductStatus `json:"status"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string        `json:"name" validate:"required,min=2,max=200"`
	Category    Category      `json:"category" validate:"required,oneof=Skincare Makeup Fragrance 'Hair Care'"`
	Price       float64       `json:"price" validate:"required,gt=0"`
	Stock       int           `json:"stock" validate:"gte=0"`
	Rating      float64       `json:"rating" validate:"gte=0,lte=5"`
	Image       string        `json:"image,omitempty"`
	Status      ProductStatus `json:"status" validate:"required,oneof=active inactive"`
	Description string        `json:"description,omitempty"`
}

// Edits replace the whole record, so the update payload carries the same
// required fields as create.
type UpdateProductRequest struct {
	Name        string        `json:"name" validate:"required,min=2,max=200"`
	Category    Category      `json:"category" validate:"required,oneof=Skincare Makeup Fragrance 'Hair Care'"`
	Price       float64       `json:"price" validate:"required,gt=0"`
	Stock       int           `json:"stock" validate:"gte=0"`
	Rating      float64       `json:"rating" validate:"gte=0,lte=5"`
	Image       string        `json:"image,omitempty"`
	Status      ProductStatus `json:"status" validate:"required,oneof=active inactive"`
	Description string        `json:"description,omitempty"`
}

// ProductFilter combines a case-insensitive name search with equality
// matches on category and status. Zero values mean "all".
type ProductFilter struct {
	Query    string
	Category Category
	Status   ProductStatus
}
