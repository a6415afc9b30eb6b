// Package analytics contains the spending analytics use cases.
package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

var testCategories = map[string]*entity.Category{
	"food":          {ID: "food", Name: "Food & Dining", Color: "#F59E0B", Emoji: "🍔"},
	"transport":     {ID: "transport", Name: "Transport", Color: "#3B82F6", Emoji: "🚌"},
	"entertainment": {ID: "entertainment", Name: "Entertainment", Color: "#8B5CF6", Emoji: "🎬"},
}

func expenseOn(amount float64, categoryID string, date time.Time) *entity.ExpenseWithCategory {
	e := entity.NewExpense(decimal.NewFromFloat(amount), categoryID, "test expense", date, "")
	return &entity.ExpenseWithCategory{
		Expense:  e,
		Category: testCategories[categoryID],
	}
}

func marchInterval() valueobject.Interval {
	return valueobject.NewInterval(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC),
	)
}

func TestBuildSummary_SingleCategory(t *testing.T) {
	expenses := []*entity.ExpenseWithCategory{
		expenseOn(100, "food", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
		expenseOn(50, "food", time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)),
	}

	summary := BuildSummary(expenses, marchInterval())

	if !summary.TotalAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected total 150, got %s", summary.TotalAmount)
	}
	if summary.ExpenseCount != 2 {
		t.Errorf("expected 2 expenses, got %d", summary.ExpenseCount)
	}
	if len(summary.Breakdown) != 1 {
		t.Fatalf("expected 1 breakdown entry, got %d", len(summary.Breakdown))
	}

	entry := summary.Breakdown[0]
	if entry.Category.ID != "food" {
		t.Errorf("expected category food, got %s", entry.Category.ID)
	}
	if !entry.TotalAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected category total 150, got %s", entry.TotalAmount)
	}
	if entry.Percentage != 100 {
		t.Errorf("expected percentage 100, got %v", entry.Percentage)
	}
	if entry.ExpenseCount != 2 {
		t.Errorf("expected expense count 2, got %d", entry.ExpenseCount)
	}
}

func TestBuildSummary_EmptyInput(t *testing.T) {
	summary := BuildSummary(nil, marchInterval())

	if !summary.TotalAmount.IsZero() {
		t.Errorf("expected zero total, got %s", summary.TotalAmount)
	}
	if len(summary.Breakdown) != 0 {
		t.Errorf("expected empty breakdown, got %d entries", len(summary.Breakdown))
	}
	if summary.ExpenseCount != 0 {
		t.Errorf("expected zero expense count, got %d", summary.ExpenseCount)
	}
}

func TestBuildSummary_SortsByAmountDescending(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	expenses := []*entity.ExpenseWithCategory{
		expenseOn(40, "transport", day),
		expenseOn(500, "food", day),
		expenseOn(60, "entertainment", day),
	}

	summary := BuildSummary(expenses, marchInterval())

	if len(summary.Breakdown) != 3 {
		t.Fatalf("expected 3 breakdown entries, got %d", len(summary.Breakdown))
	}

	wantOrder := []string{"food", "entertainment", "transport"}
	for i, want := range wantOrder {
		if got := summary.Breakdown[i].Category.ID; got != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestBuildSummary_TiesBrokenByCategoryID(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	expenses := []*entity.ExpenseWithCategory{
		expenseOn(75, "transport", day),
		expenseOn(75, "entertainment", day),
		expenseOn(75, "food", day),
	}

	summary := BuildSummary(expenses, marchInterval())

	wantOrder := []string{"entertainment", "food", "transport"}
	for i, want := range wantOrder {
		if got := summary.Breakdown[i].Category.ID; got != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestBuildSummary_PercentagesSumToHundred(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	expenses := []*entity.ExpenseWithCategory{
		expenseOn(33.33, "food", day),
		expenseOn(33.33, "transport", day),
		expenseOn(33.34, "entertainment", day),
	}

	summary := BuildSummary(expenses, marchInterval())

	var sum float64
	for _, entry := range summary.Breakdown {
		sum += entry.Percentage
	}

	if math.Abs(sum-100) > 0.05 {
		t.Errorf("expected percentages to sum to 100 within rounding, got %v", sum)
	}
}

func TestBuildSummary_FiltersOutsideInterval(t *testing.T) {
	expenses := []*entity.ExpenseWithCategory{
		expenseOn(100, "food", time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)),
		expenseOn(200, "food", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		expenseOn(300, "food", time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)),
		expenseOn(400, "food", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	summary := BuildSummary(expenses, marchInterval())

	// Only the two March expenses count; both interval ends are inclusive.
	if !summary.TotalAmount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected total 500, got %s", summary.TotalAmount)
	}
	if summary.ExpenseCount != 2 {
		t.Errorf("expected 2 expenses, got %d", summary.ExpenseCount)
	}
}

func TestBuildSummary_GroupsUnresolvedUnderUncategorized(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	unknown := entity.NewExpense(decimal.NewFromInt(25), "bitcoin", "mystery", day, "")

	expenses := []*entity.ExpenseWithCategory{
		{Expense: unknown, Category: nil},
		expenseOn(75, "food", day),
	}

	summary := BuildSummary(expenses, marchInterval())

	if len(summary.Breakdown) != 2 {
		t.Fatalf("expected 2 breakdown entries, got %d", len(summary.Breakdown))
	}

	last := summary.Breakdown[1]
	if last.Category.ID != UncategorizedID {
		t.Errorf("expected uncategorized entry, got %s", last.Category.ID)
	}
	if last.Percentage != 25 {
		t.Errorf("expected percentage 25, got %v", last.Percentage)
	}
}

func TestBuildSummary_SkipsMalformedExpenses(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	negative := entity.NewExpense(decimal.NewFromInt(-50), "food", "refund gone wrong", day, "")
	zeroDate := entity.NewExpense(decimal.NewFromInt(50), "food", "lost in time", time.Time{}, "")

	expenses := []*entity.ExpenseWithCategory{
		{Expense: negative, Category: testCategories["food"]},
		{Expense: zeroDate, Category: testCategories["food"]},
		expenseOn(100, "food", day),
	}

	summary := BuildSummary(expenses, marchInterval())

	if !summary.TotalAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected total 100 with malformed records skipped, got %s", summary.TotalAmount)
	}
	if summary.ExpenseCount != 1 {
		t.Errorf("expected 1 counted expense, got %d", summary.ExpenseCount)
	}
}

func TestBuildSummary_Idempotent(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	expenses := []*entity.ExpenseWithCategory{
		expenseOn(120.45, "food", day),
		expenseOn(80.55, "transport", day),
	}

	first := BuildSummary(expenses, marchInterval())
	second := BuildSummary(expenses, marchInterval())

	if !first.TotalAmount.Equal(second.TotalAmount) {
		t.Errorf("totals differ between calls: %s vs %s", first.TotalAmount, second.TotalAmount)
	}
	if len(first.Breakdown) != len(second.Breakdown) {
		t.Fatalf("breakdown lengths differ: %d vs %d", len(first.Breakdown), len(second.Breakdown))
	}
	for i := range first.Breakdown {
		if first.Breakdown[i].Category.ID != second.Breakdown[i].Category.ID {
			t.Errorf("entry %d differs: %s vs %s", i, first.Breakdown[i].Category.ID, second.Breakdown[i].Category.ID)
		}
		if first.Breakdown[i].Percentage != second.Breakdown[i].Percentage {
			t.Errorf("entry %d percentage differs: %v vs %v", i, first.Breakdown[i].Percentage, second.Breakdown[i].Percentage)
		}
	}
}

func TestBuildSummary_DecimalPrecision(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	expenses := make([]*entity.ExpenseWithCategory, 0, 10)
	for i := 0; i < 10; i++ {
		expenses = append(expenses, expenseOn(0.1, "food", day))
	}

	summary := BuildSummary(expenses, marchInterval())

	// Ten 0.10 expenses sum to exactly 1.00, no float drift.
	if !summary.TotalAmount.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected exact total 1, got %s", summary.TotalAmount)
	}
}
