// Package achievement contains the gamification engine: the static definition
// catalog, the progress rules, and the use cases that evaluate and persist
// achievement state.
package achievement

import (
	"github.com/spendwise/backend/internal/domain/entity"
)

// Definition ids. The ids are persisted as primary keys of the achievement
// state records, so they must never change once shipped.
const (
	AchievementFirstExpense      = "first_expense"
	AchievementFirstBudget       = "first_budget"
	AchievementCategoryExplorer  = "category_explorer"
	AchievementNoteTaker         = "note_taker"
	AchievementStreak7           = "streak_7"
	AchievementStreak30          = "streak_30"
	AchievementStreak100         = "streak_100"
	AchievementExpense100        = "expense_100"
	AchievementExpense500        = "expense_500"
	AchievementSpend10K          = "spend_10k"
	AchievementBudgetKeeper      = "budget_keeper"
	AchievementBudgetMaster      = "budget_master"
	AchievementBudgetLegend      = "budget_legend"
	AchievementSavingsHero       = "savings_hero"
	AchievementAIAdopter         = "ai_adopter"
	AchievementAnalyticsExplorer = "analytics_explorer"
)

var definitions = []entity.AchievementDefinition{
	{
		ID:          AchievementFirstExpense,
		Title:       "First Step",
		Description: "Record your very first expense",
		Icon:        "footprints",
		Category:    entity.AchievementCategoryMilestone,
		Tier:        entity.AchievementTierBronze,
		Requirement: "Add 1 expense",
		Reward:      "Expense tracking unlocked",
	},
	{
		ID:          AchievementFirstBudget,
		Title:       "Planner",
		Description: "Create your first budget",
		Icon:        "clipboard-list",
		Category:    entity.AchievementCategoryMilestone,
		Tier:        entity.AchievementTierBronze,
		Requirement: "Create 1 budget",
		Reward:      "Budget insights unlocked",
	},
	{
		ID:          AchievementCategoryExplorer,
		Title:       "Category Explorer",
		Description: "Spread your spending across five different categories",
		Icon:        "compass",
		Category:    entity.AchievementCategoryMilestone,
		Tier:        entity.AchievementTierBronze,
		Requirement: "Spend in 5 categories",
		Reward:      "A fuller picture of where your money goes",
	},
	{
		ID:          AchievementNoteTaker,
		Title:       "Note Taker",
		Description: "Add notes to ten expenses",
		Icon:        "pencil",
		Category:    entity.AchievementCategoryMilestone,
		Tier:        entity.AchievementTierBronze,
		Requirement: "Write notes on 10 expenses",
		Reward:      "Richer expense history",
	},
	{
		ID:          AchievementStreak7,
		Title:       "Week Warrior",
		Description: "Track expenses seven days in a row",
		Icon:        "flame",
		Category:    entity.AchievementCategoryStreak,
		Tier:        entity.AchievementTierBronze,
		Requirement: "7-day tracking streak",
		Reward:      "Habit forming",
	},
	{
		ID:          AchievementStreak30,
		Title:       "Monthly Devotee",
		Description: "Track expenses thirty days in a row",
		Icon:        "calendar-check",
		Category:    entity.AchievementCategoryStreak,
		Tier:        entity.AchievementTierSilver,
		Requirement: "30-day tracking streak",
		Reward:      "Habit locked in",
	},
	{
		ID:          AchievementStreak100,
		Title:       "Century Tracker",
		Description: "Track expenses one hundred days in a row",
		Icon:        "medal",
		Category:    entity.AchievementCategoryStreak,
		Tier:        entity.AchievementTierGold,
		Requirement: "100-day tracking streak",
		Reward:      "Elite consistency",
	},
	{
		ID:          AchievementExpense100,
		Title:       "Centurion",
		Description: "Record one hundred expenses",
		Icon:        "receipt",
		Category:    entity.AchievementCategorySpending,
		Tier:        entity.AchievementTierSilver,
		Requirement: "Record 100 expenses",
		Reward:      "Serious tracking credentials",
	},
	{
		ID:          AchievementExpense500,
		Title:       "Ledger Legend",
		Description: "Record five hundred expenses",
		Icon:        "library",
		Category:    entity.AchievementCategorySpending,
		Tier:        entity.AchievementTierGold,
		Requirement: "Record 500 expenses",
		Reward:      "A complete financial diary",
	},
	{
		ID:          AchievementSpend10K,
		Title:       "Big Spender",
		Description: "Track ₹10,000 of cumulative spending",
		Icon:        "banknote",
		Category:    entity.AchievementCategorySpending,
		Tier:        entity.AchievementTierSilver,
		Requirement: "Track ₹10,000 in total",
		Reward:      "Every rupee accounted for",
	},
	{
		ID:          AchievementBudgetKeeper,
		Title:       "Budget Keeper",
		Description: "Finish a month within your budgets",
		Icon:        "shield",
		Category:    entity.AchievementCategoryBudget,
		Tier:        entity.AchievementTierBronze,
		Requirement: "1 month within budget",
		Reward:      "Discipline pays off",
	},
	{
		ID:          AchievementBudgetMaster,
		Title:       "Budget Master",
		Description: "Stay within your budgets three months in a row",
		Icon:        "shield-check",
		Category:    entity.AchievementCategoryBudget,
		Tier:        entity.AchievementTierGold,
		Requirement: "3 consecutive months within budget",
		Reward:      "Proven self-control",
	},
	{
		ID:          AchievementBudgetLegend,
		Title:       "Budget Legend",
		Description: "Stay within your budgets six months in a row",
		Icon:        "crown",
		Category:    entity.AchievementCategoryBudget,
		Tier:        entity.AchievementTierPlatinum,
		Requirement: "6 consecutive months within budget",
		Reward:      "Legendary discipline",
	},
	{
		ID:          AchievementSavingsHero,
		Title:       "Savings Hero",
		Description: "Keep a month's spending at or below 80% of your budgets",
		Icon:        "piggy-bank",
		Category:    entity.AchievementCategoryBudget,
		Tier:        entity.AchievementTierGold,
		Requirement: "Spend at most 80% of your monthly budget",
		Reward:      "Real savings, not leftovers",
	},
	{
		ID:          AchievementAIAdopter,
		Title:       "AI Adopter",
		Description: "Let smart categorization file your expenses",
		Icon:        "sparkles",
		Category:    entity.AchievementCategorySpecial,
		Tier:        entity.AchievementTierSilver,
		Requirement: "Accept 10 automatic category suggestions",
		Reward:      "Less typing, same insight",
	},
	{
		ID:          AchievementAnalyticsExplorer,
		Title:       "Analytics Explorer",
		Description: "Dig into your spending analytics",
		Icon:        "bar-chart",
		Category:    entity.AchievementCategorySpecial,
		Tier:        entity.AchievementTierBronze,
		Requirement: "Open the analytics screen 5 times",
		Reward:      "Know your numbers",
	},
}

// Definitions returns the static achievement catalog in presentation order.
// Callers get a copy; the catalog itself is immutable.
func Definitions() []entity.AchievementDefinition {
	out := make([]entity.AchievementDefinition, len(definitions))
	copy(out, definitions)
	return out
}

// definitionByID looks up one catalog entry.
func definitionByID(id string) (entity.AchievementDefinition, bool) {
	for _, def := range definitions {
		if def.ID == id {
			return def, true
		}
	}
	return entity.AchievementDefinition{}, false
}
