package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_OnAppend_ShouldGrowByOneKeepingOrder(t *testing.T) {
	store := NewStore(nil)
	assert.Equal(t, 0, store.Len())

	first := expense.Record{Date: "2024-01-15", Category: "Food", Amount: 12.5, Description: "lunch"}
	second := expense.Record{Date: "2024-01-16", Category: "Travel", Amount: 3, Description: "bus"}

	store.Append(first)
	assert.Equal(t, 1, store.Len())

	store.Append(second)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, []expense.Record{first, second}, store.All())
}

func Test_OnNewStore_ShouldKeepLoadedRecords(t *testing.T) {
	loaded := []expense.Record{
		{Date: "2024-01-01", Category: "Food", Amount: 1, Description: "a"},
		{Date: "2024-01-02", Category: "Food", Amount: 2, Description: "b"},
	}

	store := NewStore(loaded)

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, loaded, store.All())
}
