// Package category contains category-related use case tests.
package category

import (
	"context"
	"testing"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

type fakeCatalogStore struct {
	adapter.CategoryRepository
	categories []*entity.Category
}

func (f *fakeCatalogStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

func (f *fakeCatalogStore) CreateBatch(_ context.Context, categories []*entity.Category) error {
	f.categories = append(f.categories, categories...)
	return nil
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	if len(catalog) == 0 {
		t.Fatal("expected a non-empty default catalog")
	}

	seen := make(map[string]struct{}, len(catalog))
	for i, cat := range catalog {
		if cat.ID == "" || cat.Name == "" || cat.Color == "" || cat.Emoji == "" || cat.Icon == "" {
			t.Errorf("category %q is missing presentation fields", cat.ID)
		}
		if _, dup := seen[cat.ID]; dup {
			t.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = struct{}{}
		if cat.SortOrder != i {
			t.Errorf("expected sort order %d for %q, got %d", i, cat.ID, cat.SortOrder)
		}
	}

	if _, ok := seen["food"]; !ok {
		t.Error("expected the catalog to contain the food category")
	}
}

func TestSeedCategories(t *testing.T) {
	store := &fakeCatalogStore{}
	uc := NewSeedCategoriesUseCase(store)

	output, err := uc.Execute(context.Background(), SeedCategoriesInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Seeded != len(DefaultCatalog()) {
		t.Errorf("expected %d seeded categories, got %d", len(DefaultCatalog()), output.Seeded)
	}

	// A second run is a no-op.
	output, err = uc.Execute(context.Background(), SeedCategoriesInput{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Seeded != 0 {
		t.Errorf("expected rerun to seed nothing, got %d", output.Seeded)
	}
	if len(store.categories) != len(DefaultCatalog()) {
		t.Errorf("expected catalog size to stay %d, got %d", len(DefaultCatalog()), len(store.categories))
	}
}
