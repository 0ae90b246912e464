package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

const (
	datePrompt        = "Enter the date of the expense (YYYY-MM-DD): "
	categoryPrompt    = "Enter the expense category (example: Education, Food, Travel, Leisure): "
	amountPrompt      = "Enter the amount spent: "
	descriptionPrompt = "Enter a brief description of the expense: "
	budgetPrompt      = "Enter your monthly budget: "

	invalidChoiceMessage = "Invalid input. Please enter a number between 1 and 5."
	outOfRangeMessage    = "Please choose a valid option from the menu."

	invalidDateMessage      = "Invalid date format. Please enter the date as YYYY-MM-DD."
	emptyCategoryMessage    = "Expense category cannot be empty."
	invalidAmountMessage    = "Invalid amount. Please enter a number (example: 22.50)."
	emptyDescriptionMessage = "Expense description cannot be empty."
	invalidBudgetMessage    = "Invalid budget input. Please enter a numeric value."

	expenseAddedMessage  = "Expense added successfully!"
	expensesSavedMessage = "Expenses saved successfully!"
	cannotSaveMessage    = "An error occurred while saving expenses"
	noExpensesMessage    = "No expenses to display."
	goodbyeMessage       = "Exiting the program. Goodbye!"
)

// handleAdd prompts for the four fields in order. The first field that
// fails validation aborts the whole add: no later prompts, no partial
// record.
func (s *Service) handleAdd(_ context.Context) (string, error) {
	raw, err := s.console.Prompt(datePrompt)
	if err != nil {
		return "", errors.Wrap(err, "add expense")
	}
	date, err := expense.ValidateDate(raw)
	if err != nil {
		return invalidDateMessage, errors.Wrap(err, "add expense")
	}

	raw, err = s.console.Prompt(categoryPrompt)
	if err != nil {
		return "", errors.Wrap(err, "add expense")
	}
	category, err := expense.ValidateCategory(raw)
	if err != nil {
		return emptyCategoryMessage, errors.Wrap(err, "add expense")
	}

	raw, err = s.console.Prompt(amountPrompt)
	if err != nil {
		return "", errors.Wrap(err, "add expense")
	}
	amount, err := expense.ParseAmount(raw)
	if err != nil {
		return invalidAmountMessage, errors.Wrap(err, "add expense")
	}

	raw, err = s.console.Prompt(descriptionPrompt)
	if err != nil {
		return "", errors.Wrap(err, "add expense")
	}
	description, err := expense.ValidateDescription(raw)
	if err != nil {
		return emptyDescriptionMessage, errors.Wrap(err, "add expense")
	}

	s.store.Append(expense.Record{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	})
	return expenseAddedMessage, nil
}

// handleView lists the stored records. Incomplete records are skipped with
// a notice; the rest of the listing still renders.
func (s *Service) handleView(_ context.Context) (string, error) {
	records := s.store.All()
	if len(records) == 0 {
		return noExpensesMessage, nil
	}

	res := make([]string, 0, len(records)+2)
	res = append(res, "--- Expense List ---")
	for i, rec := range records {
		if !rec.IsComplete() {
			res = append(res, fmt.Sprintf("Expense %d: incomplete entry, skipping...", i+1))
			continue
		}
		res = append(res, fmt.Sprintf("Expense %d:", i+1))
		res = append(res, fmt.Sprintf("  Date       : %s", rec.Date))
		res = append(res, fmt.Sprintf("  Category   : %s", rec.Category))
		res = append(res, fmt.Sprintf("  Amount     : %.2f", rec.Amount))
		res = append(res, fmt.Sprintf("  Description: %s", rec.Description))
	}
	res = append(res, "--------------------")
	return strings.Join(res, "\n"), nil
}

// handleBudget prompts for the monthly budget on first use only, then
// reports total spending against it.
func (s *Service) handleBudget(_ context.Context) (string, error) {
	if !s.budget.IsSet() {
		raw, err := s.console.Prompt(budgetPrompt)
		if err != nil {
			return "", errors.Wrap(err, "track budget")
		}
		limit, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return invalidBudgetMessage, errors.Wrap(err, "track budget")
		}
		s.budget.Set(limit)
	}
	return s.budget.Report(s.store.All()), nil
}

func (s *Service) handleSave(ctx context.Context) (string, error) {
	if err := s.persist.Save(ctx, s.store.All()); err != nil {
		return fmt.Sprintf("%s: %v", cannotSaveMessage, err), err
	}
	return expensesSavedMessage, nil
}

// handleExit saves before terminating; a failed save is reported but does
// not block the exit.
func (s *Service) handleExit(ctx context.Context) (string, error) {
	resp, err := s.handleSave(ctx)
	return resp + "\n" + goodbyeMessage, err
}
