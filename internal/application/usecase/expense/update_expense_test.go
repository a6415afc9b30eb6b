// Package expense contains expense-related use case tests.
package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func seedExpense(store *fakeExpenseStore) *entity.Expense {
	expense := entity.NewExpense(
		decimal.NewFromInt(200),
		"food",
		"Groceries",
		time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC),
		"",
	)
	store.expenses[expense.ID] = expense
	return expense
}

func TestUpdateExpense_NotFound(t *testing.T) {
	uc := NewUpdateExpenseUseCase(newFakeExpenseStore(), newFakeCategoryCatalog("food"))

	_, err := uc.Execute(context.Background(), UpdateExpenseInput{ExpenseID: uuid.New()})

	if !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected expense not found, got %v", err)
	}
}

func TestUpdateExpense_AppliesProvidedFields(t *testing.T) {
	store := newFakeExpenseStore()
	expense := seedExpense(store)
	uc := NewUpdateExpenseUseCase(store, newFakeCategoryCatalog("food", "transport"))

	amount := decimal.NewFromInt(350)
	categoryID := "transport"
	notes := "monthly pass"

	output, err := uc.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:  expense.ID,
		Amount:     &amount,
		CategoryID: &categoryID,
		Notes:      &notes,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !output.Expense.Amount.Equal(amount) {
		t.Errorf("expected amount 350, got %s", output.Expense.Amount)
	}
	if output.Expense.CategoryID != "transport" {
		t.Errorf("expected category transport, got %s", output.Expense.CategoryID)
	}
	if output.Expense.Notes != "monthly pass" {
		t.Errorf("expected updated notes, got %q", output.Expense.Notes)
	}
	// Untouched fields survive.
	if output.Expense.Description != "Groceries" {
		t.Errorf("expected description to be untouched, got %q", output.Expense.Description)
	}
}

func TestUpdateExpense_ClearCategory(t *testing.T) {
	store := newFakeExpenseStore()
	expense := seedExpense(store)
	uc := NewUpdateExpenseUseCase(store, newFakeCategoryCatalog("food"))

	output, err := uc.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:     expense.ID,
		ClearCategory: true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Expense.CategoryID != "" {
		t.Errorf("expected uncategorized expense, got %q", output.Expense.CategoryID)
	}
	if output.Expense.Category != nil {
		t.Error("expected no resolved category in the output")
	}
}

func TestUpdateExpense_RejectsBadInput(t *testing.T) {
	store := newFakeExpenseStore()
	expense := seedExpense(store)
	uc := NewUpdateExpenseUseCase(store, newFakeCategoryCatalog("food"))

	badAmount := decimal.NewFromInt(-10)
	_, err := uc.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID: expense.ID,
		Amount:    &badAmount,
	})
	if !errors.Is(err, domainerror.ErrInvalidExpenseAmount) {
		t.Errorf("expected invalid amount error, got %v", err)
	}

	unknown := "yachts"
	_, err = uc.Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:  expense.ID,
		CategoryID: &unknown,
	})
	if !errors.Is(err, domainerror.ErrUnknownExpenseCategory) {
		t.Errorf("expected unknown category error, got %v", err)
	}
}

func TestDeleteExpense(t *testing.T) {
	store := newFakeExpenseStore()
	expense := seedExpense(store)
	uc := NewDeleteExpenseUseCase(store)

	output, err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: expense.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !output.Success {
		t.Error("expected success")
	}
	if len(store.expenses) != 0 {
		t.Errorf("expected the expense to be removed, %d left", len(store.expenses))
	}

	_, err = uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: expense.ID})
	if !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected expense not found on repeat delete, got %v", err)
	}
}
