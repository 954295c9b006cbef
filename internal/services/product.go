package service

import (
	"context"
	"errors"

	appErrors "github.com/glowcart/store-admin/internal/errors"
	"github.com/glowcart/store-admin/internal/metrics"
	"github.com/glowcart/store-admin/internal/models"
	repository "github.com/glowcart/store-admin/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context) ([]*models.Product, error)
	FilterProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
}

type productService struct {
	repo      repository.ProductRepository
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{
		repo:      repo,
		validate:  validator.New(),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.ValidationError("Invalid product data").WithError(err)
	}

	product := &models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Rating:      req.Rating,
		Image:       req.Image,
		Status:      req.Status,
		Description: s.sanitizer.Sanitize(req.Description),
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.InternalError("Failed to create product").WithError(err)
	}

	metrics.RecordOperation("product", "create")

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, appErrors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.ValidationError("Invalid product data").WithError(err)
	}

	product := &models.Product{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Rating:      req.Rating,
		Image:       req.Image,
		Status:      req.Status,
		Description: s.sanitizer.Sanitize(req.Description),
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.InternalError("Failed to update product").WithError(err)
	}

	metrics.RecordOperation("product", "update")

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	// Deleting a missing identity is a no-op, not an error.
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return appErrors.InternalError("Failed to delete product").WithError(err)
	}

	metrics.RecordOperation("product", "delete")

	return nil
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) FilterProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	products, err := s.repo.FilterProducts(ctx, filter)
	if err != nil {
		return nil, appErrors.InternalError("Failed to filter products").WithError(err)
	}

	return products, nil
}
