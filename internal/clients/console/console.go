package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Client talks to the user over a terminal. Reads block until the user
// submits a line; an exhausted input surfaces as io.EOF.
type Client struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Client {
	return &Client{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Prompt prints a label and reads one line of input.
func (c *Client) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

// Say prints a message on its own line.
func (c *Client) Say(text string) {
	fmt.Fprintln(c.out, text)
}
