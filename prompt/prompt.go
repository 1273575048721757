package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/output"
	"bikeshare/utils"
)

const (
	invalidEntryMessage = "Sorry... it seems like you're not typing a correct entry."
	tryAgainMessage     = "Let's try again!"
	readErrorMessage    = "Seems like there is an issue with your input"
)

// IPrompter reads the answers of the user
type IPrompter interface {
	// Choose asks until the lowercased answer is one of validEntries and returns it
	Choose(prompt string, validEntries []string) (string, error)
	// Ask returns the answer as typed, without surrounding spaces
	Ask(prompt string) (string, error)
}

// RetryPolicy limits the amount of invalid entries accepted by Choose.
// MaxAttempts <= 0 means no limit.
type RetryPolicy struct {
	MaxAttempts int `yaml:"max_attempts"`
}

func (rp RetryPolicy) allows(attempt int) bool {
	return rp.MaxAttempts <= 0 || attempt <= rp.MaxAttempts
}

// Console reads answers line by line from a reader
type Console struct {
	reader  *bufio.Reader
	printer *output.Printer
	policy  RetryPolicy
}

func NewConsole(input io.Reader, printer *output.Printer, policy RetryPolicy) *Console {
	return &Console{
		reader:  bufio.NewReader(input),
		printer: printer,
		policy:  policy,
	}
}

func (c *Console) Ask(prompt string) (string, error) {
	c.printer.Prompt(prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		log.Debugf("[prompter: console][method: Ask][status: ERROR] error reading input: %s", err.Error())
		c.printer.Error(readErrorMessage)
		return "", fmt.Errorf("%w: %s", dataErrors.ErrInputRead, err.Error())
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) Choose(prompt string, validEntries []string) (string, error) {
	for attempt := 1; c.policy.allows(attempt); attempt++ {
		answer, err := c.Ask(prompt)
		if err != nil {
			return "", err
		}

		answer = strings.ToLower(answer)
		if utils.ContainsString(answer, validEntries) {
			c.printer.Success("Great! the chosen entry is: %s\n", answer)
			return answer, nil
		}

		log.Debugf("[prompter: console][method: Choose] invalid entry %q, attempt %v", answer, attempt)
		c.printer.Warning(invalidEntryMessage)
		c.printer.Print(tryAgainMessage)
	}

	return "", fmt.Errorf("%w: %v attempts", dataErrors.ErrRetriesExhausted, c.policy.MaxAttempts)
}
