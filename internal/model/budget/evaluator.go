package budget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jinzhu/now"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// Evaluator compares accumulated spending to the monthly budget. The budget
// is declared once per session; callers check IsSet before prompting for it.
type Evaluator struct {
	limit float64
	set   bool
}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) IsSet() bool {
	return e.set
}

func (e *Evaluator) Set(limit float64) {
	e.limit = limit
	e.set = true
}

// Report renders the current month window, the running total, a
// per-category breakdown and the exceeded/remaining line. The total covers
// every record in the store; a missing amount counts as zero.
func (e *Evaluator) Report(records []expense.Record) string {
	total := 0.0
	for _, rec := range records {
		total += rec.Amount
	}

	res := make([]string, 0, len(records)+3)
	res = append(res, fmt.Sprintf("Budget period: %s to %s",
		now.BeginningOfMonth().Format(expense.DateLayout),
		now.EndOfMonth().Format(expense.DateLayout)))
	res = append(res, fmt.Sprintf("Total expenses so far: %.2f", total))
	res = append(res, groupByCategory(records)...)

	if total > e.limit {
		res = append(res, fmt.Sprintf("WARNING: You have exceeded your budget by %.2f!", total-e.limit))
	} else {
		res = append(res, fmt.Sprintf("You have %.2f left for the month.", e.limit-total))
	}
	return strings.Join(res, "\n")
}

func groupByCategory(records []expense.Record) []string {
	m := make(map[string]float64)
	for _, rec := range records {
		if strings.TrimSpace(rec.Category) == "" {
			continue
		}
		m[rec.Category] += rec.Amount
	}

	categories := make([]string, 0, len(m))
	for cat := range m {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		if m[categories[i]] != m[categories[j]] {
			return m[categories[i]] > m[categories[j]]
		}
		return categories[i] < categories[j]
	})

	res := make([]string, 0, len(categories))
	for _, cat := range categories {
		res = append(res, fmt.Sprintf("%s: %.2f", cat, m[cat]))
	}
	return res
}
