package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type pgConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

// PostgresStorage is the alternative persistence backend. Save mirrors the
// overwrite semantics of the CSV file: the expenses table is replaced in
// one transaction.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config pgConfig) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) Load(ctx context.Context) ([]expense.Record, error) {
	query := psql.Select("expense_date", "category", "amount", "description").
		From("expenses").
		OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load expenses")
	}
	defer rows.Close()

	records := make([]expense.Record, 0)
	for rows.Next() {
		var rec expense.Record
		err = rows.Scan(&rec.Date, &rec.Category, &rec.Amount, &rec.Description)
		if err != nil {
			return records, errors.Wrap(err, "load expenses")
		}
		records = append(records, rec)
	}
	return records, errors.Wrap(rows.Err(), "load expenses")
}

func (s *PostgresStorage) Save(ctx context.Context, records []expense.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "save expenses")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && txErr != sql.ErrTxDone {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	_, err = psql.Delete("expenses").RunWith(tx).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "save expenses")
	}

	for _, rec := range records {
		query := psql.Insert("expenses").
			Columns("expense_date", "category", "amount", "description").
			Values(rec.Date, rec.Category, rec.Amount, rec.Description)

		if _, err = query.RunWith(tx).ExecContext(ctx); err != nil {
			return errors.Wrap(err, "save expenses")
		}
	}
	return errors.Wrap(tx.Commit(), "save expenses")
}
