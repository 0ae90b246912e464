package menu

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const menuText = `==== Personal Expense Tracker Menu ====
1. Add expense
2. View expenses
3. Track budget
4. Save expenses
5. Exit
=======================================`

const choicePrompt = "Enter your option (1-5): "

const (
	choiceAdd = iota + 1
	choiceView
	choiceBudget
	choiceSave
	choiceExit
)

type userConsole interface {
	Prompt(label string) (string, error)
	Say(text string)
}

type recordStore interface {
	Append(rec expense.Record)
	All() []expense.Record
}

type persister interface {
	Save(ctx context.Context, records []expense.Record) error
}

type budgetEvaluator interface {
	IsSet() bool
	Set(limit float64)
	Report(records []expense.Record) string
}

type handler func(ctx context.Context) (string, error)

type handlerMap map[int]handler

// Service is the menu loop: it shows the menu, reads a choice and
// dispatches to the matching handler until the user exits.
type Service struct {
	console  userConsole
	store    recordStore
	persist  persister
	budget   budgetEvaluator
	handlers handlerMap
}

func NewService(console userConsole, store recordStore, persist persister, budget budgetEvaluator) *Service {
	s := &Service{
		console: console,
		store:   store,
		persist: persist,
		budget:  budget,
	}
	s.handlers = newMap(s)
	return s
}

func newMap(s *Service) handlerMap {
	m := make(handlerMap)
	m[choiceAdd] = s.handleAdd
	m[choiceView] = s.handleView
	m[choiceBudget] = s.handleBudget
	m[choiceSave] = s.handleSave
	m[choiceExit] = s.handleExit
	return m
}

// Run drives the menu until the user picks exit or the input ends. Handler
// failures are reported to the user and logged; the loop keeps going.
func (s *Service) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.console.Say(menuText)
		line, err := s.console.Prompt(choicePrompt)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "menu loop")
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.console.Say(invalidChoiceMessage)
			continue
		}
		h, ok := s.handlers[choice]
		if !ok {
			s.console.Say(outOfRangeMessage)
			continue
		}

		resp, err := h(ctx)
		if err != nil {
			logger.Error("menu operation failed", zap.Int("choice", choice), zap.Error(err))
		}
		if resp != "" {
			s.console.Say(resp)
		}
		if choice == choiceExit {
			return nil
		}
	}
}
