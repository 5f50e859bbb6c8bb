package service_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCatalogService_List(t *testing.T) {
	repo := &fakeCatalogRepository{items: []domain.Item{
		newItem("a", "1.00"),
		newItem("b", "2.00"),
		newItem("c", "3.00"),
	}}

	svc, err := service.NewCatalog(repo, nil, 2, zap.NewNop())
	require.NoError(t, err)

	tests := []struct {
		name         string
		page         int
		wantPage     int
		wantSlugs    []string
		wantNext     bool
		wantPrevious bool
	}{
		{
			name:      "first page",
			page:      1,
			wantPage:  1,
			wantSlugs: []string{"a", "b"},
			wantNext:  true,
		},
		{
			name:         "second page",
			page:         2,
			wantPage:     2,
			wantSlugs:    []string{"c"},
			wantPrevious: true,
		},
		{
			name:      "page below one is treated as first",
			page:      0,
			wantPage:  1,
			wantSlugs: []string{"a", "b"},
			wantNext:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(t.Context(), tt.page)
			require.NoError(t, err)

			var slugs []string
			for _, item := range page.Items {
				slugs = append(slugs, item.Slug)
			}

			assert.Equal(t, tt.wantSlugs, slugs)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, 3, page.Total)
			assert.Equal(t, tt.wantNext, page.HasNext())
			assert.Equal(t, tt.wantPrevious, page.HasPrevious())
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	item := newItem("blue-shirt", "49.99")

	t.Run("miss then cached", func(t *testing.T) {
		repo := &fakeCatalogRepository{items: []domain.Item{item}}
		cache := &fakeCatalogCache{items: map[string]domain.Item{}}

		svc, err := service.NewCatalog(repo, cache, 2, zap.NewNop())
		require.NoError(t, err)

		got, err := svc.Get(t.Context(), "blue-shirt")
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)

		got, err = svc.Get(t.Context(), "blue-shirt")
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)

		assert.Equal(t, 1, repo.getCalls)
	})

	t.Run("cache failure falls through", func(t *testing.T) {
		repo := &fakeCatalogRepository{items: []domain.Item{item}}
		cache := &fakeCatalogCache{items: map[string]domain.Item{}, getErr: errBoom, setErr: errBoom}

		core, logs := observer.New(zap.WarnLevel)

		svc, err := service.NewCatalog(repo, cache, 2, zap.New(core))
		require.NoError(t, err)

		got, err := svc.Get(t.Context(), "blue-shirt")
		require.NoError(t, err)
		assert.Equal(t, item.ID, got.ID)
		assert.Equal(t, 2, logs.Len())
	})

	t.Run("not found", func(t *testing.T) {
		svc, err := service.NewCatalog(&fakeCatalogRepository{}, nil, 2, zap.NewNop())
		require.NoError(t, err)

		_, err = svc.Get(t.Context(), "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestNewCatalog_Validation(t *testing.T) {
	_, err := service.NewCatalog(nil, nil, 2, zap.NewNop())
	require.EqualError(t, err, "items repository is nil")

	_, err = service.NewCatalog(&fakeCatalogRepository{}, nil, 0, zap.NewNop())
	require.EqualError(t, err, "pageSize must be positive")
}
