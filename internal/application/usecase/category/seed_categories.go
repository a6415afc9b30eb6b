// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// defaultCatalog is the built-in category set. Ids are stable slugs that
// expenses and budgets reference directly; keywords feed the rule-based
// categorizer fallback.
var defaultCatalog = []struct {
	id       string
	name     string
	color    string
	emoji    string
	icon     string
	keywords []string
}{
	{"food", "Food & Dining", "#F59E0B", "🍔", "utensils",
		[]string{"restaurant", "lunch", "dinner", "breakfast", "pizza", "burger", "cafe", "coffee", "swiggy", "zomato"}},
	{"groceries", "Groceries", "#10B981", "🛒", "shopping-cart",
		[]string{"grocery", "supermarket", "vegetables", "fruits", "bigbasket", "mart"}},
	{"transport", "Transport", "#3B82F6", "🚌", "bus",
		[]string{"uber", "ola", "taxi", "metro", "bus", "train", "petrol", "diesel", "fuel", "parking"}},
	{"shopping", "Shopping", "#EC4899", "🛍️", "shopping-bag",
		[]string{"amazon", "flipkart", "myntra", "clothes", "shoes", "mall"}},
	{"entertainment", "Entertainment", "#8B5CF6", "🎬", "clapperboard",
		[]string{"movie", "netflix", "spotify", "concert", "game", "bookmyshow"}},
	{"bills", "Bills & Utilities", "#EF4444", "🧾", "file-text",
		[]string{"electricity", "water", "internet", "broadband", "recharge", "rent", "bill"}},
	{"health", "Health", "#14B8A6", "💊", "heart-pulse",
		[]string{"doctor", "pharmacy", "medicine", "hospital", "gym", "clinic"}},
	{"education", "Education", "#6366F1", "📚", "graduation-cap",
		[]string{"course", "books", "tuition", "udemy", "exam"}},
	{"travel", "Travel", "#F97316", "✈️", "plane",
		[]string{"flight", "hotel", "airbnb", "trip", "visa", "irctc"}},
	{"other", "Other", "#6B7280", "📦", "package", nil},
}

// DefaultCatalog builds the built-in category entities in display order.
func DefaultCatalog() []*entity.Category {
	categories := make([]*entity.Category, len(defaultCatalog))
	for i, c := range defaultCatalog {
		categories[i] = entity.NewCategory(c.id, c.name, c.color, c.emoji, c.icon, c.keywords, i)
	}
	return categories
}

// SeedCategoriesInput represents the input for catalog seeding.
type SeedCategoriesInput struct{}

// SeedCategoriesOutput represents the output of catalog seeding.
type SeedCategoriesOutput struct {
	Seeded int
}

// SeedCategoriesUseCase inserts the built-in catalog on first startup. It is
// a no-op when the catalog table is already populated.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the catalog seeding.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context, _ SeedCategoriesInput) (*SeedCategoriesOutput, error) {
	count, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return &SeedCategoriesOutput{Seeded: 0}, nil
	}

	categories := DefaultCatalog()
	if err := uc.categoryRepo.CreateBatch(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}

	return &SeedCategoriesOutput{Seeded: len(categories)}, nil
}
