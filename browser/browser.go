package browser

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
	"bikeshare/output"
	"bikeshare/prompt"
	"bikeshare/utils"
)

const (
	DefaultPageSize = 5
	timeLayout      = "2006-01-02 15:04:05"
)

// State of the browser
type State int

const (
	Idle State = iota
	Paginating
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paginating:
		return "paginating"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// RawDataBrowser shows the trips of a dataset page by page, while the user asks for more
type RawDataBrowser struct {
	prompter   prompt.IPrompter
	printer    *output.Printer
	pageSize   int
	state      State
	pagesShown int
}

func NewRawDataBrowser(prompter prompt.IPrompter, printer *output.Printer, pageSize int) *RawDataBrowser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &RawDataBrowser{
		prompter: prompter,
		printer:  printer,
		pageSize: pageSize,
		state:    Idle,
	}
}

func (b *RawDataBrowser) GetState() State {
	return b.state
}

// GetPagesShown returns the amount of pages displayed by the last Browse
func (b *RawDataBrowser) GetPagesShown() int {
	return b.pagesShown
}

// Browse runs the browser from Idle until Done. Each call starts over.
func (b *RawDataBrowser) Browse(data *dataset.Dataset) error {
	b.state = Idle
	b.pagesShown = 0

	answer, err := b.prompter.Ask(fmt.Sprintf("Would you like to see %v lines of raw data (yes/no)? ", b.pageSize))
	if err != nil {
		b.state = Done
		return err
	}
	if !utils.IsYes(answer) {
		b.state = Done
		return nil
	}

	b.state = Paginating
	b.printer.Info("\nDisplaying raw data...\n")
	b.printer.Print("Current data set has a total of %v rows.\n", data.Len())

	from := 0
	for b.state == Paginating {
		if from >= data.Len() {
			b.state = Done
			break
		}

		to := from + b.pageSize
		if to > data.Len() {
			to = data.Len()
		}
		lastRows := to-from < b.pageSize
		if lastRows {
			b.printer.Print("Ok, these are the last rows:\n")
		}
		b.renderPage(data, data.GetTrips(from, to))
		b.pagesShown += 1
		from = to

		// a partial page is the last one, every full page is followed by the question
		if lastRows {
			b.state = Done
			break
		}

		answer, err = b.prompter.Ask("\nDo you wish to see more details (yes/no)? ")
		if err != nil {
			b.state = Done
			return err
		}
		if !utils.IsYes(answer) {
			b.state = Done
		}
	}

	log.Debugf("[component: browser][method: Browse][status: OK] %v pages shown", b.pagesShown)
	b.printer.Separator()
	return nil
}

func (b *RawDataBrowser) renderPage(data *dataset.Dataset, trips []*trip.TripData) {
	headers := []string{"Line", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if data.HasGender {
		headers = append(headers, "Gender")
	}
	if data.HasBirthYear {
		headers = append(headers, "Birth Year")
	}

	table := b.printer.NewTable(headers)
	for _, tripData := range trips {
		table.AddRow(getRow(data, tripData))
	}
	table.Render()
}

func getRow(data *dataset.Dataset, tripData *trip.TripData) []string {
	row := []string{
		strconv.Itoa(tripData.Line),
		tripData.StartTime.Format(timeLayout),
		"",
		"",
		tripData.StartStation,
		tripData.EndStation,
		tripData.UserType.Value,
	}
	if endTime, ok := tripData.EndTime.Get(); ok {
		row[2] = endTime.Format(timeLayout)
	}
	if duration, ok := tripData.Duration.Get(); ok {
		row[3] = formatFloat(duration)
	}
	if data.HasGender {
		row = append(row, tripData.Gender.Value)
	}
	if data.HasBirthYear {
		birthYear := ""
		if year, ok := tripData.BirthYear.Get(); ok {
			birthYear = formatFloat(year)
		}
		row = append(row, birthYear)
	}
	return row
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
