package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/output"
)

var cities = []string{"chicago", "new york city", "washington"}

func newTestConsole(input string, policy RetryPolicy) (*Console, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	printer := output.NewPrinterWithWriters(out, errOut, false)
	return NewConsole(strings.NewReader(input), printer, policy), out, errOut
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestChoose_RetriesUntilValid(t *testing.T) {
	console, out, _ := newTestConsole("foo\nchicago\n", RetryPolicy{})

	city, err := console.Choose("Please choose a city: ", cities)
	require.NoError(t, err)
	assert.Equal(t, "chicago", city)
	assert.Equal(t, 2, strings.Count(out.String(), "Please choose a city: "))
	assert.Equal(t, 1, strings.Count(out.String(), invalidEntryMessage))
	assert.Contains(t, out.String(), "Great! the chosen entry is: chicago")
}

func TestChoose_NormalizesCase(t *testing.T) {
	console, _, _ := newTestConsole("  New York City \n", RetryPolicy{})

	city, err := console.Choose("city: ", cities)
	require.NoError(t, err)
	assert.Equal(t, "new york city", city)
}

func TestChoose_LastLineWithoutNewline(t *testing.T) {
	console, _, _ := newTestConsole("washington", RetryPolicy{})

	city, err := console.Choose("city: ", cities)
	require.NoError(t, err)
	assert.Equal(t, "washington", city)
}

func TestChoose_ClosedInput(t *testing.T) {
	console, _, errOut := newTestConsole("foo\n", RetryPolicy{})

	city, err := console.Choose("city: ", cities)
	assert.Empty(t, city)
	assert.ErrorIs(t, err, dataErrors.ErrInputRead)
	assert.Contains(t, errOut.String(), readErrorMessage)
}

func TestChoose_ReaderFailure(t *testing.T) {
	printer := output.NewPrinterWithWriters(&bytes.Buffer{}, &bytes.Buffer{}, false)
	console := NewConsole(failingReader{}, printer, RetryPolicy{})

	_, err := console.Choose("city: ", cities)
	assert.ErrorIs(t, err, dataErrors.ErrInputRead)
}

func TestChoose_BoundedRetryPolicy(t *testing.T) {
	console, out, _ := newTestConsole("foo\nbar\nchicago\n", RetryPolicy{MaxAttempts: 2})

	_, err := console.Choose("city: ", cities)
	assert.ErrorIs(t, err, dataErrors.ErrRetriesExhausted)
	assert.Equal(t, 2, strings.Count(out.String(), "city: "))
}

func TestAsk_KeepsAnswer(t *testing.T) {
	console, _, _ := newTestConsole("Yes\n", RetryPolicy{})

	answer, err := console.Ask("Would you like to restart? (yes/no): ")
	require.NoError(t, err)
	assert.Equal(t, "Yes", answer)
}
