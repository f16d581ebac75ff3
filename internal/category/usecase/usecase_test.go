package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/cache"
	"github.com/altoshop/catalog-service/internal/category/dto"
	"github.com/altoshop/catalog-service/internal/model"
)

type fakeCategoryRepo struct {
	categories   []model.Category
	productCount map[string]int // category id -> active products
	summaryCalls int
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *model.Category) error {
	for _, existing := range r.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return &apperr.UniquenessError{Field: "name"}
		}
		if existing.Slug == c.Slug {
			return &apperr.UniquenessError{Field: "slug"}
		}
	}
	r.categories = append(r.categories, *c)
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *model.Category) error {
	for i, existing := range r.categories {
		if existing.ID == c.ID {
			r.categories[i] = *c
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	for i, existing := range r.categories {
		if existing.ID == id {
			if r.productCount[id] > 0 {
				return apperr.ErrProtected
			}
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*model.Category, error) {
	for _, existing := range r.categories {
		if existing.ID == id {
			c := existing
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, existing := range r.categories {
		if existing.Slug == slug {
			c := existing
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	return append([]model.Category(nil), r.categories...), nil
}

func (r *fakeCategoryRepo) ListActiveSummaries(_ context.Context) ([]model.CategorySummary, error) {
	r.summaryCalls++
	var summaries []model.CategorySummary
	for _, c := range r.categories {
		if !c.IsActive {
			continue
		}
		summaries = append(summaries, model.CategorySummary{
			ID:                  c.ID,
			Name:                c.Name,
			Slug:                c.Slug,
			ActiveProductsCount: r.productCount[c.ID],
		})
	}
	return summaries, nil
}

func newTestUseCase() (*fakeCategoryRepo, *cache.Memory, *categoryUseCase) {
	repo := &fakeCategoryRepo{productCount: map[string]int{}}
	mem := cache.NewMemory()
	uc := NewCategoryUseCase(repo, mem, time.Hour, zap.NewNop()).(*categoryUseCase)
	return repo, mem, uc
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	_, _, uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Shoes", Slug: "shoes"})
	require.NoError(t, err)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "SHOES", Slug: "shoes-2"})
	var uniqErr *apperr.UniquenessError
	require.ErrorAs(t, err, &uniqErr)
	assert.Equal(t, "name", uniqErr.Field)
}

func TestDeleteCategoryWithProductsIsBlocked(t *testing.T) {
	repo, _, uc := newTestUseCase()
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Shoes", Slug: "shoes"})
	require.NoError(t, err)
	repo.productCount[created.ID] = 2

	err = uc.DeleteCategory(ctx, created.ID)
	assert.ErrorIs(t, err, apperr.ErrProtected)

	// The category must still exist.
	got, err := uc.GetCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestListActiveCategoriesIsCached(t *testing.T) {
	repo, _, uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Shoes", Slug: "shoes"})
	require.NoError(t, err)

	first, err := uc.ListActiveCategories(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := uc.ListActiveCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.summaryCalls)
}

func TestCategoryMutationInvalidatesNavigation(t *testing.T) {
	repo, _, uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Shoes", Slug: "shoes"})
	require.NoError(t, err)

	summaries, err := uc.ListActiveCategories(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Hats", Slug: "hats"})
	require.NoError(t, err)

	summaries, err = uc.ListActiveCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, 2, repo.summaryCalls)
}

func TestListActiveCategoriesDiscardsCorruptCacheEntry(t *testing.T) {
	repo := &fakeCategoryRepo{productCount: map[string]int{}}
	mem := cache.NewMemory()
	core, logs := observer.New(zap.WarnLevel)
	uc := NewCategoryUseCase(repo, mem, time.Hour, zap.New(core)).(*categoryUseCase)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, CategoriesCacheKey, []byte("[not json"), 0))

	summaries, err := uc.ListActiveCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.Equal(t, 1, repo.summaryCalls)

	entries := logs.FilterMessage("discarding unreadable cached category list").All()
	require.Len(t, entries, 1)
	// The warning must carry the decode failure, not a nil error.
	assert.Contains(t, entries[0].ContextMap(), "error")
}

func TestInactiveCategoriesExcludedFromNavigation(t *testing.T) {
	_, _, uc := newTestUseCase()
	ctx := context.Background()

	inactive := false
	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Archive", Slug: "archive", IsActive: &inactive})
	require.NoError(t, err)

	summaries, err := uc.ListActiveCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
