package templates

import (
	"strings"
	"testing"
)

func digestData() MonthlyDigestData {
	return MonthlyDigestData{
		RecipientName: "Owner",
		MonthLabel:    "July 2024",
		TotalSpent:    "₹1250.00",
		ExpenseCount:  5,
		PreviousTotal: "₹1000.00",
		ChangePercent: "+25%",
		SpentMore:     true,
		HasComparison: true,
		TopCategories: []DigestCategoryRow{
			{Name: "Food & Dining", Amount: "₹800.00", Percentage: "64%"},
			{Name: "Transport", Amount: "₹250.00", Percentage: "20%"},
		},
		Budgets: []DigestBudgetRow{
			{Label: "Food & Dining", Spent: "₹800.00", Limit: "₹2000.00", Percentage: "40%", Status: "good", StatusText: "On track"},
		},
		Unlocked: []string{"First Step", "Week Warrior"},
		Streak:   3,
		AppURL:   "https://spendwise.example.com/analytics",
	}
}

func TestRenderer_MonthlyDigest(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	html, text, err := renderer.Render("monthly_digest", digestData())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for _, want := range []string{
		"Your July 2024 report",
		"₹1250.00",
		"across 5 expenses",
		"+25% vs ₹1000.00 last month",
		"Food &amp; Dining",
		"On track",
		"First Step",
		"Week Warrior",
		"3-day",
		"https://spendwise.example.com/analytics",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected HTML to contain %q", want)
		}
	}

	for _, want := range []string{
		"YOUR July 2024 REPORT",
		"₹1250.00",
		"Food & Dining: ₹800.00 (64%)",
		"On track",
		"* First Step",
		"3-day tracking streak",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected text to contain %q", want)
		}
	}
}

func TestRenderer_MonthlyDigestStaysMinimalWhenEmpty(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	data := MonthlyDigestData{
		MonthLabel:   "February 2024",
		TotalSpent:   "₹0.00",
		ExpenseCount: 0,
	}

	html, text, err := renderer.Render("monthly_digest", data)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for _, section := range []string{"Where it went", "Budgets", "Achievements unlocked", "last month", "tracking streak"} {
		if strings.Contains(html, section) {
			t.Errorf("expected empty digest HTML to omit %q", section)
		}
	}
	if !strings.Contains(html, "across 0 expenses") {
		t.Error("expected empty digest to still show the zero expense count")
	}
	if strings.Contains(text, "WHERE IT WENT") || strings.Contains(text, "BUDGETS") {
		t.Error("expected empty digest text to omit section headers")
	}
}

func TestRenderer_UnknownTemplateFails(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	if _, _, err := renderer.Render("weekly_summary", digestData()); err == nil {
		t.Error("expected rendering an unknown template to fail")
	}
}
