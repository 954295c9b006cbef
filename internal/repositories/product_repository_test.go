package repository_test

import (
	"context"
	"testing"

	"github.com/glowcart/store-admin/internal/models"
	repository "github.com/glowcart/store-admin/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducts(t *testing.T) repository.ProductRepository {
	t.Helper()

	repo := repository.NewProductRepo()
	ctx := context.Background()

	products := []models.Product{
		{Name: "Luxury Face Cream", Category: models.CategorySkincare, Price: 89.99, Status: models.ProductStatusActive},
		{Name: "Vitamin C Serum", Category: models.CategorySkincare, Price: 45.50, Status: models.ProductStatusActive},
		{Name: "Lip Balm Set", Category: models.CategoryMakeup, Price: 24.99, Status: models.ProductStatusInactive},
	}

	for i := range products {
		require.NoError(t, repo.CreateProduct(ctx, &products[i]))
	}

	return repo
}

func TestProductRepoCreateAssignsFreshIdentity(t *testing.T) {
	repo := repository.NewProductRepo()
	ctx := context.Background()

	first := &models.Product{Name: "Luxury Face Cream"}
	second := &models.Product{Name: "Vitamin C Serum"}

	require.NoError(t, repo.CreateProduct(ctx, first))
	require.NoError(t, repo.CreateProduct(ctx, second))

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, uuid.Nil, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID)
}

func TestProductRepoUpdateReplacesWholeRecord(t *testing.T) {
	repo := repository.NewProductRepo()
	ctx := context.Background()

	product := &models.Product{Name: "Luxury Face Cream", Price: 89.99, Description: "Premium"}
	require.NoError(t, repo.CreateProduct(ctx, product))

	replacement := &models.Product{ID: product.ID, Name: "Luxury Face Cream", Price: 79.99}
	require.NoError(t, repo.UpdateProduct(ctx, replacement))

	stored, err := repo.GetProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.InDelta(t, 79.99, stored.Price, 0.001)
	// Fields absent from the replacement are gone, not merged.
	assert.Empty(t, stored.Description)
	assert.Equal(t, product.CreatedAt, stored.CreatedAt)
}

func TestProductRepoUpdateMissing(t *testing.T) {
	repo := repository.NewProductRepo()

	err := repo.UpdateProduct(context.Background(), &models.Product{ID: uuid.New()})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductRepoDelete(t *testing.T) {
	repo := repository.NewProductRepo()
	ctx := context.Background()

	product := &models.Product{Name: "Moisturizing Mask"}
	require.NoError(t, repo.CreateProduct(ctx, product))

	t.Run("removes the record", func(t *testing.T) {
		require.NoError(t, repo.DeleteProduct(ctx, product.ID))

		products, err := repo.ListProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("missing identity is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.DeleteProduct(ctx, uuid.New()))
	})
}

func TestProductRepoFilter(t *testing.T) {
	repo := seedProducts(t)
	ctx := context.Background()

	t.Run("case-insensitive name search", func(t *testing.T) {
		products, err := repo.FilterProducts(ctx, models.ProductFilter{Query: "SERUM"})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Vitamin C Serum", products[0].Name)
	})

	t.Run("category and status combine with AND", func(t *testing.T) {
		products, err := repo.FilterProducts(ctx, models.ProductFilter{
			Category: models.CategorySkincare,
			Status:   models.ProductStatusActive,
		})

		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("zero filter matches everything", func(t *testing.T) {
		products, err := repo.FilterProducts(ctx, models.ProductFilter{})

		require.NoError(t, err)
		assert.Len(t, products, 3)
	})
}

// Combining predicates is order-independent: the combined filter equals
// the intersection of the single-field filters, and refiltering an
// already-matching set changes nothing.
func TestProductRepoFilterCommutesAndIsIdempotent(t *testing.T) {
	repo := seedProducts(t)
	ctx := context.Background()

	byQuery, err := repo.FilterProducts(ctx, models.ProductFilter{Query: "l"})
	require.NoError(t, err)

	byCategory, err := repo.FilterProducts(ctx, models.ProductFilter{Category: models.CategoryMakeup})
	require.NoError(t, err)

	combined, err := repo.FilterProducts(ctx, models.ProductFilter{Query: "l", Category: models.CategoryMakeup})
	require.NoError(t, err)

	inCategory := make(map[uuid.UUID]bool)
	for _, product := range byCategory {
		inCategory[product.ID] = true
	}

	var intersection []uuid.UUID
	for _, product := range byQuery {
		if inCategory[product.ID] {
			intersection = append(intersection, product.ID)
		}
	}

	var combinedIDs []uuid.UUID
	for _, product := range combined {
		combinedIDs = append(combinedIDs, product.ID)
	}

	assert.Equal(t, intersection, combinedIDs)

	// Idempotence: every record in the combined result still matches the
	// same filter.
	again, err := repo.FilterProducts(ctx, models.ProductFilter{Query: "l", Category: models.CategoryMakeup})
	require.NoError(t, err)
	assert.Equal(t, combined, again)
}
