package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/clients/console"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/budget"
	"max.ks1230/expense-tracker/internal/model/menu"
	"max.ks1230/expense-tracker/internal/model/storage"
)

var (
	cfgFile      string
	expensesFile string
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Personal expense tracker with a monthly budget",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is data/config.yaml)")
	rootCmd.Flags().StringVarP(&expensesFile, "file", "f", "", "Expenses file (overrides config and EXPENSES_FILE)")
}

type persister interface {
	Load(ctx context.Context) ([]expense.Record, error)
	Save(ctx context.Context, records []expense.Record) error
}

func newPersister(conf *config.StorageConfig) (persister, error) {
	switch conf.Backend() {
	case config.BackendPostgres:
		return storage.NewPostgresStorage(conf.Postgres())
	case config.BackendCSV:
		return storage.NewCSVStorage(conf.File()), nil
	default:
		return nil, errors.Errorf("unknown storage backend: %s", conf.Backend())
	}
}

func run(ctx context.Context) error {
	logger.Info("Tracker init - start")

	conf, err := config.New(cfgFile)
	if err != nil {
		return errors.Wrap(err, "failed to init config")
	}
	if expensesFile != "" {
		conf.Storage().SetFile(expensesFile)
	}

	persist, err := newPersister(conf.Storage())
	if err != nil {
		return errors.Wrap(err, "failed to init storage")
	}

	client := console.New(os.Stdin, os.Stdout)

	records, err := persist.Load(ctx)
	if err != nil {
		// Load failures degrade to whatever could be read.
		logger.Warn("failed to load previous expenses", zap.Error(err))
		client.Say("An error occurred while loading expenses. Starting with what could be read.")
	} else if records != nil {
		client.Say("Loaded previous expenses successfully!")
	}

	store := storage.NewStore(records)
	svc := menu.NewService(client, store, persist, budget.NewEvaluator())

	logger.Info("Tracker init - end")
	return svc.Run(ctx)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Fatal("tracker failed", zap.Error(err))
	}
}
