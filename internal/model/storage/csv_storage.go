package storage

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

var csvHeader = []string{"date", "category", "amount", "description"}

// CSVStorage persists records to a comma-delimited UTF-8 text file with a
// header row. Save overwrites the whole file. Load tolerates a missing
// file and unparseable amounts.
type CSVStorage struct {
	filename string
}

func NewCSVStorage(filename string) *CSVStorage {
	return &CSVStorage{filename: filename}
}

func (s *CSVStorage) Save(_ context.Context, records []expense.Record) error {
	file, err := os.Create(s.filename)
	if err != nil {
		return errors.Wrap(err, "save expenses")
	}

	w := csv.NewWriter(file)
	err = w.Write(csvHeader)
	for i := 0; err == nil && i < len(records); i++ {
		rec := records[i]
		err = w.Write([]string{
			rec.Date,
			rec.Category,
			strconv.FormatFloat(rec.Amount, 'f', -1, 64),
			rec.Description,
		})
	}
	if err == nil {
		w.Flush()
		err = w.Error()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return errors.Wrap(err, "save expenses")
}

// Load reads the expenses file. A missing file yields a nil list and no
// error; a file that exists always yields a non-nil list. A row with an
// unparseable amount loads with amount zero. An error in the middle of the
// file yields the rows read so far plus the error.
func (s *CSVStorage) Load(_ context.Context) ([]expense.Record, error) {
	file, err := os.Open(s.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "load expenses")
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return []expense.Record{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load expenses")
	}
	columns := indexColumns(header)

	records := make([]expense.Record, 0)
	for {
		row, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, errors.Wrap(err, "load expenses")
		}

		rec := expense.Record{
			Date:        columns.at(row, "date"),
			Category:    columns.at(row, "category"),
			Description: columns.at(row, "description"),
		}
		// A bad amount loads as zero rather than failing the file.
		rec.Amount, _ = strconv.ParseFloat(columns.at(row, "amount"), 64)
		records = append(records, rec)
	}
}

// columnIndex maps fields to positions by header name, so column order in
// the file does not matter.
type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	columns := make(columnIndex, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

func (c columnIndex) at(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
