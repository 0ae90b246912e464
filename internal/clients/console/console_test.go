package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnPrompt_ShouldPrintLabelAndReadOneLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("2024-01-15\nFood\n"), &out)

	line, err := c.Prompt("Enter the date: ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", line)
	assert.Equal(t, "Enter the date: ", out.String())

	line, err = c.Prompt("Category: ")
	require.NoError(t, err)
	assert.Equal(t, "Food", line)
}

func Test_OnExhaustedInput_ShouldReturnEOF(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	_, err := c.Prompt("anything: ")

	assert.Equal(t, io.EOF, err)
}

func Test_OnSay_ShouldWriteLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Say("Expense added successfully!")

	assert.Equal(t, "Expense added successfully!\n", out.String())
}
