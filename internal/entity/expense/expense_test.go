package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnValidateDate_ShouldAcceptISODates(t *testing.T) {
	date, err := ValidateDate(" 2024-02-29 ")

	assert.NoError(t, err)
	assert.Equal(t, "2024-02-29", date)
}

func Test_OnValidateDate_ShouldRejectOtherForms(t *testing.T) {
	for _, raw := range []string{"", "29.02.2024", "2024/02/29", "2023-02-29", "yesterday"} {
		_, err := ValidateDate(raw)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", raw)
	}
}

func Test_OnValidateCategory_ShouldTrimAndRejectBlank(t *testing.T) {
	category, err := ValidateCategory("  Food ")
	assert.NoError(t, err)
	assert.Equal(t, "Food", category)

	_, err = ValidateCategory("   ")
	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func Test_OnParseAmount_ShouldAcceptNumbersIncludingNegative(t *testing.T) {
	amount, err := ParseAmount("22.50")
	assert.NoError(t, err)
	assert.Equal(t, 22.50, amount)

	amount, err = ParseAmount("-3.10")
	assert.NoError(t, err)
	assert.Equal(t, -3.10, amount)
}

func Test_OnParseAmount_ShouldRejectNonNumeric(t *testing.T) {
	_, err := ParseAmount("twenty")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func Test_OnValidateDescription_ShouldTrimAndRejectBlank(t *testing.T) {
	description, err := ValidateDescription(" lunch at work ")
	assert.NoError(t, err)
	assert.Equal(t, "lunch at work", description)

	_, err = ValidateDescription("")
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func Test_OnIsComplete_ShouldSpotBlankFields(t *testing.T) {
	complete := Record{Date: "2024-01-15", Category: "Food", Amount: 10, Description: "lunch"}
	assert.True(t, complete.IsComplete())

	noDescription := Record{Date: "2024-01-15", Category: "Food", Amount: 10}
	assert.False(t, noDescription.IsComplete())

	// Amounts always carry a number, so a zero amount stays complete.
	zeroAmount := Record{Date: "2024-01-15", Category: "Food", Description: "lunch"}
	assert.True(t, zeroAmount.IsComplete())
}
