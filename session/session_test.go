package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/browser"
	"bikeshare/dataset"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/eof"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/output"
	"bikeshare/prompt"
	"bikeshare/reporters/factory"
	"bikeshare/reporters/factory/config"
	"bikeshare/testutil"
)

type fakePublisher struct {
	reports    []*queryresponse.QueryResponse
	eofs       []*eof.EOFData
	publishErr error
}

func (f *fakePublisher) PublishReport(report *queryresponse.QueryResponse) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakePublisher) PublishEOF(eofData *eof.EOFData) error {
	f.eofs = append(f.eofs, eofData)
	return nil
}

func (f *fakePublisher) Close() error {
	return nil
}

type sessionTest struct {
	session   *Session
	publisher *fakePublisher
	out       *bytes.Buffer
	errOut    *bytes.Buffer
}

func newSessionTest(t *testing.T, input string, policy prompt.RetryPolicy) *sessionTest {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	printer := output.NewPrinterWithWriters(out, errOut, false)
	console := prompt.NewConsole(strings.NewReader(input), printer, policy)

	loaderConfig := testutil.NewLoaderConfig(testutil.NewDataDir(t))
	reporters, err := factory.NewReporters(config.ReportersConfig{})
	require.NoError(t, err)

	reportPublisher := &fakePublisher{}
	session := NewSession(
		loaderConfig.GetCityNames(),
		console,
		printer,
		dataset.NewLoader(loaderConfig),
		reporters,
		browser.NewRawDataBrowser(console, printer, browser.DefaultPageSize),
		reportPublisher,
	)

	ids := 0
	session.newSessionID = func() string {
		ids += 1
		return "session-" + string(rune('0'+ids))
	}

	return &sessionTest{session: session, publisher: reportPublisher, out: out, errOut: errOut}
}

func TestRun_SingleIteration(t *testing.T) {
	st := newSessionTest(t, "Chicago\nall\nall\nno\nno\n", prompt.RetryPolicy{})

	require.NoError(t, st.session.Run())
	assert.Equal(t, 1, st.session.GetIterations())

	rendered := st.out.String()
	assert.Contains(t, rendered, "Hi there! Let's explore some US bikeshare data!")
	assert.Contains(t, rendered, "Please choose one of the 3 cities (chicago, new york city, washington): ")
	assert.Contains(t, rendered, "Great! the chosen entry is: chicago")
	assert.Contains(t, rendered, "Calculating The Most Frequent Times of Travel with the filters (city = chicago ; month = all ; day = all) ...")
	assert.Contains(t, rendered, "Most common start station: Canal St & Adams St (3 trips)")
	assert.Contains(t, rendered, "Would you like to see 5 lines of raw data (yes/no)? ")
	assert.Equal(t, 5, strings.Count(rendered, "This took"))
	assert.Empty(t, st.errOut.String())

	titles := []string{"The Most Frequent Times of Travel", "The Most Popular Stations and Trip", "Trip Duration", "User Stats"}
	lastIdx := -1
	for _, title := range titles {
		idx := strings.Index(rendered, "Calculating "+title)
		require.Greater(t, idx, lastIdx, title)
		lastIdx = idx
	}

	require.Len(t, st.publisher.reports, 5)
	for idx, reporterType := range factory.DefaultReporters {
		report := st.publisher.reports[idx]
		assert.Equal(t, reporterType, report.GetMetadata().GetType())
		assert.Equal(t, "chicago", report.GetMetadata().GetCity())
		assert.Equal(t, "session-1", report.GetSessionID())
	}
	require.Len(t, st.publisher.eofs, 1)
	assert.Equal(t, 5, st.publisher.eofs[0].ReportsSent)
	assert.Equal(t, "eof.session-1.chicago", st.publisher.eofs[0].GetMetadata().GetMessage())
}

func TestRun_InvalidEntryIsAskedAgain(t *testing.T) {
	st := newSessionTest(t, "paris\nwashington\nmay\nall\nno\nno\n", prompt.RetryPolicy{})

	require.NoError(t, st.session.Run())
	rendered := st.out.String()
	assert.Contains(t, rendered, "Sorry... it seems like you're not typing a correct entry.")
	assert.Contains(t, rendered, "Let's try again!")
	assert.Contains(t, rendered, "(city = washington ; month = may ; day = all)")
	assert.Contains(t, rendered, "no gender data available for washington")
}

func TestRun_UnavailableDataSkipsReporters(t *testing.T) {
	st := newSessionTest(t, "new york city\nall\nall\nno\n", prompt.RetryPolicy{})

	require.NoError(t, st.session.Run())
	assert.Contains(t, st.errOut.String(), "Erm, seems like the file cannot be read...")
	assert.NotContains(t, st.out.String(), "Calculating")
	assert.NotContains(t, st.out.String(), "raw data")
	assert.Empty(t, st.publisher.reports)
	assert.Empty(t, st.publisher.eofs)
}

func TestRun_AggregationErrorDoesNotStopReporters(t *testing.T) {
	// there are no trips in april
	st := newSessionTest(t, "chicago\napril\nall\nno\nno\n", prompt.RetryPolicy{})

	require.NoError(t, st.session.Run())
	assert.Equal(t, 5, strings.Count(st.out.String(), "This took"))
	assert.Contains(t, st.errOut.String(), "Could not calculate The Most Frequent Times of Travel")
	assert.Contains(t, st.errOut.String(), "Could not calculate The Most Popular Stations and Trip")
	assert.Contains(t, st.out.String(), "Total travel time")

	// time and station reports could not be built
	require.Len(t, st.publisher.eofs, 1)
	assert.Equal(t, 3, st.publisher.eofs[0].ReportsSent)
}

func TestRun_Restart(t *testing.T) {
	input := "washington\nall\nall\nno\nyes\nchicago\njune\nmonday\nyes\nno\n"
	st := newSessionTest(t, input, prompt.RetryPolicy{})

	require.NoError(t, st.session.Run())
	assert.Equal(t, 2, st.session.GetIterations())
	assert.Equal(t, 2, strings.Count(st.out.String(), "Hi there!"))
	assert.Contains(t, st.out.String(), "(city = chicago ; month = june ; day = monday)")
	assert.Contains(t, st.out.String(), "Current data set has a total of 1 rows.")

	require.Len(t, st.publisher.eofs, 2)
	assert.Equal(t, "session-1", st.publisher.eofs[0].SessionID)
	assert.Equal(t, "session-2", st.publisher.eofs[1].SessionID)
	assert.Equal(t, "washington", st.publisher.eofs[0].GetMetadata().GetCity())
}

func TestRun_InputClosedEndsSession(t *testing.T) {
	st := newSessionTest(t, "chicago\n", prompt.RetryPolicy{})

	err := st.session.Run()
	assert.ErrorIs(t, err, dataErrors.ErrInputRead)
	assert.NotContains(t, st.out.String(), "Calculating")
	assert.Contains(t, st.errOut.String(), "Seems like there is an issue with your input")
}

func TestRun_RetriesExhaustedGoesToRestart(t *testing.T) {
	st := newSessionTest(t, "paris\nno\n", prompt.RetryPolicy{MaxAttempts: 1})

	require.NoError(t, st.session.Run())
	assert.Contains(t, st.out.String(), "Too many invalid entries")
	assert.Contains(t, st.out.String(), "Would you like to restart? (yes/no): ")
	assert.NotContains(t, st.out.String(), "Calculating")
}

func TestRun_PublishFailureDoesNotInterrupt(t *testing.T) {
	st := newSessionTest(t, "chicago\nall\nall\nno\nno\n", prompt.RetryPolicy{})
	st.publisher.publishErr = errors.New("broker down")

	require.NoError(t, st.session.Run())
	assert.Equal(t, 5, strings.Count(st.out.String(), "This took"))
	require.Len(t, st.publisher.eofs, 1)
	assert.Zero(t, st.publisher.eofs[0].ReportsSent)
}
