package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/browser"
	"bikeshare/dataset"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/eof"
	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/output"
	"bikeshare/prompt"
	"bikeshare/publisher"
	"bikeshare/reporters/factory"
	"bikeshare/utils"
)

const (
	sessionStage      = "session"
	greetingMessage   = "Hi there! Let's explore some US bikeshare data!"
	monthPrompt       = "Please choose a month (all, january, february, ... , june): "
	dayPrompt         = "Please choose a day (all, monday, tuesday, ... sunday): "
	restartPrompt     = "\nWould you like to restart? (yes/no): "
	unavailableData   = "Erm, seems like the file cannot be read..."
	retriesExhausted  = "Too many invalid entries, skipping this exploration."
	invalidFilters    = "Erm, seems like the filters cannot be applied..."
	aggregationFailed = "Could not calculate %s: %s"
)

// IDatasetLoader loads the dataset of a city with its filters applied
type IDatasetLoader interface {
	Load(criteria filter.Criteria) (*dataset.Dataset, error)
}

// Session is the loop that asks for filters, shows the reports and offers to start over
// + cities: cities the user may choose, in display order
// + reporters: reporters run in every iteration, in order
// + browser: raw data browser shown after the reports
// + publisher: where each computed report is sent besides the console
type Session struct {
	cities       []string
	prompter     prompt.IPrompter
	printer      *output.Printer
	loader       IDatasetLoader
	reporters    []factory.IReporter
	browser      *browser.RawDataBrowser
	publisher    publisher.IPublisher
	newSessionID func() string
	iterations   int
}

func NewSession(
	cities []string,
	prompter prompt.IPrompter,
	printer *output.Printer,
	loader IDatasetLoader,
	reporters []factory.IReporter,
	rawDataBrowser *browser.RawDataBrowser,
	reportPublisher publisher.IPublisher,
) *Session {
	if reportPublisher == nil {
		reportPublisher = publisher.NoopPublisher{}
	}
	return &Session{
		cities:       cities,
		prompter:     prompter,
		printer:      printer,
		loader:       loader,
		reporters:    reporters,
		browser:      rawDataBrowser,
		publisher:    reportPublisher,
		newSessionID: uuid.NewString,
	}
}

// GetIterations returns how many explorations were started
func (s *Session) GetIterations() int {
	return s.iterations
}

// Run loops until the user does not want to restart. The only error returned is
// one wrapping ErrInputRead, every other failure is reported and the loop goes on.
func (s *Session) Run() error {
	for {
		s.iterations += 1
		err := s.runIteration()
		if err != nil {
			if errors.Is(err, dataErrors.ErrInputRead) {
				log.Errorf("[component: session][method: Run][status: ERROR] %s", err.Error())
				return err
			}
			if errors.Is(err, dataErrors.ErrRetriesExhausted) {
				s.printer.Warning(retriesExhausted)
			}
			log.Warnf("[component: session][method: Run][status: ERROR] iteration %v aborted: %s", s.iterations, err.Error())
		}

		answer, err := s.prompter.Ask(restartPrompt)
		if err != nil {
			return err
		}
		if !utils.IsYes(answer) {
			log.Infof("[component: session][method: Run][status: OK] session finished after %v iterations", s.iterations)
			return nil
		}
	}
}

func (s *Session) runIteration() error {
	criteria, err := s.getFilters()
	if err != nil {
		return err
	}

	data, err := s.loader.Load(criteria)
	if err != nil {
		if errors.Is(err, dataErrors.ErrDataSourceUnavailable) {
			s.printer.Error(unavailableData)
		} else {
			s.printer.Error(invalidFilters)
		}
		log.Errorf("[component: session][method: runIteration][status: ERROR] error loading %s: %s", criteria, err.Error())
		return nil
	}

	sessionID := s.newSessionID()
	reportsSent := 0
	for _, reporter := range s.reporters {
		if s.runReporter(reporter, data, criteria, sessionID) {
			reportsSent += 1
		}
	}
	s.publishEOF(criteria, sessionID, reportsSent)

	return s.browser.Browse(data)
}

// getFilters asks for the city, month and day to analyze
func (s *Session) getFilters() (filter.Criteria, error) {
	s.printer.Info(greetingMessage)

	cityPrompt := fmt.Sprintf("Please choose one of the %v cities (%s): ", len(s.cities), strings.Join(s.cities, ", "))
	city, err := s.prompter.Choose(cityPrompt, s.cities)
	if err != nil {
		return filter.Criteria{}, err
	}

	month, err := s.prompter.Choose(monthPrompt, filter.ValidMonths())
	if err != nil {
		return filter.Criteria{}, err
	}

	day, err := s.prompter.Choose(dayPrompt, filter.ValidDays())
	if err != nil {
		return filter.Criteria{}, err
	}

	s.printer.Separator()
	return filter.NewCriteria(city, month, day), nil
}

// runReporter prints the report of a reporter and publishes it. Returns true if the report was published.
func (s *Session) runReporter(reporter factory.IReporter, data *dataset.Dataset, criteria filter.Criteria, sessionID string) bool {
	s.printer.Header(fmt.Sprintf("Calculating %s with the filters %s ...\n", reporter.GetTitle(), criteria))
	startTime := time.Now()

	report, err := reporter.GenerateReport(data)
	if report != nil {
		report.Render(s.printer)
	}
	if err != nil {
		log.Warnf("[component: session][method: runReporter][status: ERROR] reporter %s: %s", reporter.GetType(), err.Error())
		s.printer.Error(aggregationFailed, reporter.GetTitle(), err.Error())
	}

	s.printer.Print("\nThis took %v seconds.", time.Since(startTime).Seconds())
	s.printer.Separator()

	if report == nil {
		return false
	}

	metadata := entities.NewMetadata(criteria.City, criteria.Month, criteria.Day, reporter.GetType(), sessionStage, reporter.GetTitle())
	err = s.publisher.PublishReport(queryresponse.NewQueryResponse(metadata, sessionID, report))
	if err != nil {
		log.Warnf("[component: session][method: runReporter][status: ERROR] report %s not published: %s", reporter.GetType(), err.Error())
		return false
	}
	return true
}

func (s *Session) publishEOF(criteria filter.Criteria, sessionID string, reportsSent int) {
	metadata := entities.NewMetadata(criteria.City, criteria.Month, criteria.Day, "", sessionStage, "")
	err := s.publisher.PublishEOF(eof.NewEOF(metadata, sessionID, reportsSent))
	if err != nil {
		log.Warnf("[component: session][method: publishEOF][status: ERROR] %s", err.Error())
	}
}
