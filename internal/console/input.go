package console

import (
	"errors"
	"fmt"
)

// maxLineSize bounds a single answer.
const maxLineSize = 16 * 1024 * 1024

var errInputClosed = errors.New("input closed")

// prompt prints label and reads one line. It returns errInputClosed once
// input is exhausted, or the reader's error if reading failed.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return c.in.Text(), nil
}

// ask reads one answer per label, in order.
func (c *Console) ask(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := c.prompt(label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}
