package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/client/config"
	"bikeshare/dataset"
	"bikeshare/domain/business/pager"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/queryhandlers/factory"
	"bikeshare/utils"
)

const (
	yes = "yes"

	greetingMessage    = "\nHello! Let's explore some US bikeshare data!"
	cityPrompt         = "\nWhich city would you like to analyze? (%s): "
	monthPrompt        = "\nWhich month? (all, January, ..., June): "
	dayPrompt          = "\nWhich day? (all, Monday, ..., Sunday): "
	invalidCityMessage = "Invalid input. Please enter %s."
	invalidMonthHint   = "Invalid input. Please enter a valid month or 'all'."
	invalidDayHint     = "Invalid input. Please enter a valid day or 'all'."
	browsePrompt       = "\nWould you like to view %d rows of individual trip data? Enter yes or no: "
	noMoreRowsMessage  = "No more rows to show."
	restartPrompt      = "\nWould you like to restart? Enter yes or no: "
	unavailableMessage = "Sorry, data for %s is unavailable: %s"
	reportErrorMessage = "Sorry, the report for %s could not be completed: %s"
)

type state int

const (
	stateCollectingFilters state = iota
	stateReporting
	stateRestart
	stateDone
)

func (s state) String() string {
	switch s {
	case stateCollectingFilters:
		return "collecting-filters"
	case stateReporting:
		return "reporting"
	case stateRestart:
		return "restart"
	case stateDone:
		return "done"
	}
	return "unknown"
}

// handlersBuilder returns the query handlers of a report, in the order their responses are shown
type handlersBuilder func(stations map[string]*station.StationData) ([]factory.Handler, error)

// Client drives the dialogue with the user: filters, reports, raw rows and restart
type Client struct {
	config      *config.ClientConfig
	loader      *dataset.Loader
	newHandlers handlersBuilder
	reader      *bufio.Reader
	writer      io.Writer
	state       state
	selection   selection.Selection
}

func NewClient(clientConfig *config.ClientConfig, input io.Reader, output io.Writer) *Client {
	return &Client{
		config:      clientConfig,
		loader:      dataset.NewLoader(&clientConfig.Dataset),
		newHandlers: factory.NewQueryHandlers,
		reader:      bufio.NewReader(input),
		writer:      output,
		state:       stateCollectingFilters,
	}
}

func (c *Client) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[client][state: %s][method: %s][status: ERROR] %s: %s", c.state, method, message, err.Error())
	}
	return fmt.Sprintf("[client][state: %s][method: %s][status: OK] %s", c.state, method, message)
}

// Run loops until the user declines to restart or the input is closed
func (c *Client) Run() error {
	for c.state != stateDone {
		var err error
		switch c.state {
		case stateCollectingFilters:
			err = c.collectFilters()
		case stateReporting:
			err = c.report()
		case stateRestart:
			err = c.askRestart()
		}

		if errors.Is(err, io.EOF) {
			log.Info(c.getLogMessage("Run", "input closed", nil))
			c.state = stateDone
			return nil
		}
		if err != nil {
			log.Error(c.getLogMessage("Run", "unexpected error", err))
			return err
		}
	}

	log.Debug(c.getLogMessage("Run", "user finished the session", nil))
	return nil
}

// collectFilters asks for city, month and day until each one is valid
func (c *Client) collectFilters() error {
	c.println(greetingMessage)

	cities := c.config.Dataset.GetCityNames()
	cityChoices := joinChoices(cities)
	city, err := c.askUntilValid(
		fmt.Sprintf(cityPrompt, cityChoices),
		fmt.Sprintf(invalidCityMessage, cityChoices),
		func(value string) error { return selection.ValidateCity(value, cities) },
	)
	if err != nil {
		return err
	}

	month, err := c.askUntilValid(monthPrompt, invalidMonthHint, selection.ValidateMonth)
	if err != nil {
		return err
	}

	day, err := c.askUntilValid(dayPrompt, invalidDayHint, selection.ValidateDay)
	if err != nil {
		return err
	}

	c.println(queryresponse.Separator)
	c.selection = selection.NewSelection(city, month, day)
	log.Debug(c.getLogMessage("collectFilters", fmt.Sprintf("selection: %+v", c.selection), nil))
	c.state = stateReporting
	return nil
}

// report loads and filters the data of the selection, shows every query response and offers the raw rows.
// Responses are only shown if every handler succeeds
func (c *Client) report() error {
	cycleID := uuid.NewString()
	logger := log.WithFields(log.Fields{"cycle": cycleID, "city": c.selection.City})
	c.state = stateRestart

	if err := c.selection.Validate(c.config.Dataset.GetCityNames()); err != nil {
		return err
	}

	table, err := c.loader.Load(c.selection.City)
	if err != nil {
		return c.handleReportError(logger, err)
	}

	stations, err := c.loader.LoadStations(c.selection.City)
	if err != nil {
		return c.handleReportError(logger, err)
	}

	filtered := dataset.Filter(table, c.selection)
	logger.Info(c.getLogMessage("report", fmt.Sprintf("%v of %v trips match %s/%s", filtered.Len(), table.Len(), c.selection.Month, c.selection.Day), nil))

	handlers, err := c.newHandlers(stations)
	if err != nil {
		return err
	}

	responses := make([]*queryresponse.QueryResponse, 0, len(handlers))
	for _, handler := range handlers {
		response, err := handler.GenerateResponse(filtered)
		if err != nil {
			logger.Error(c.getLogMessage("report", fmt.Sprintf("error generating response of query %s", handler.GetQueryID()), err))
			c.println(fmt.Sprintf(reportErrorMessage, utils.Title(c.selection.City), err))
			return nil
		}
		responses = append(responses, response)
	}

	for _, response := range responses {
		if _, err := response.WriteTo(c.writer); err != nil {
			return err
		}
		logger.Debug(c.getLogMessage("report", fmt.Sprintf("query %s answered in %s", response.GetQueryID(), response.Elapsed), nil))
	}

	return c.browseRows(filtered)
}

// handleReportError tells the user why the data could not be loaded. Errors not related with the data are returned
func (c *Client) handleReportError(logger *log.Entry, err error) error {
	if !errors.Is(err, dataset.ErrDataUnavailable) {
		return err
	}

	logger.Warn(c.getLogMessage("report", "data unavailable", err))
	c.println(fmt.Sprintf(unavailableMessage, utils.Title(c.selection.City), err))
	return nil
}

// browseRows shows RowsPerPage rows each time the user answers yes. Once every row was shown the user is not asked again
func (c *Client) browseRows(table *trip.Table) error {
	tripsPager := pager.NewPager(table.Trips, c.config.RowsPerPage)
	for {
		answer, err := c.ask(fmt.Sprintf(browsePrompt, tripsPager.GetPageSize()))
		if err != nil {
			return err
		}
		if !isYes(answer) {
			return nil
		}

		if page := tripsPager.Next(); len(page) > 0 {
			if err := writeRows(c.writer, table, page); err != nil {
				return err
			}
		}
		if tripsPager.Done() {
			c.println(noMoreRowsMessage)
			return nil
		}
	}
}

func (c *Client) askRestart() error {
	answer, err := c.ask(restartPrompt)
	if err != nil {
		return err
	}

	if isYes(answer) {
		c.state = stateCollectingFilters
		return nil
	}
	c.state = stateDone
	return nil
}

// askUntilValid repeats the prompt, printing hint, until validate accepts the answer
func (c *Client) askUntilValid(prompt string, hint string, validate func(string) error) (string, error) {
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return "", err
		}
		answer = utils.NormalizeInput(answer)
		if err := validate(answer); err == nil {
			return answer, nil
		}
		log.Debug(c.getLogMessage("askUntilValid", fmt.Sprintf("invalid answer %q", answer), nil))
		c.println(hint)
	}
}

// ask prints the prompt and returns the answer without its line ending. io.EOF is returned once the input is closed
func (c *Client) ask(prompt string) (string, error) {
	if _, err := io.WriteString(c.writer, prompt); err != nil {
		return "", err
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// isYes returns true only for yes in any letter case. Surrounding spaces make it a no
func isYes(answer string) bool {
	return strings.ToLower(answer) == yes
}

func (c *Client) println(message string) {
	_, err := fmt.Fprintln(c.writer, message)
	if err != nil {
		log.Error(c.getLogMessage("println", "error writing output", err))
	}
}

// joinChoices returns the values title cased as an english list, e.g. Chicago, New York, or Washington
func joinChoices(values []string) string {
	titled := make([]string, 0, len(values))
	for _, value := range values {
		titled = append(titled, utils.Title(value))
	}

	switch len(titled) {
	case 0:
		return ""
	case 1:
		return titled[0]
	case 2:
		return titled[0] + " or " + titled[1]
	}
	return strings.Join(titled[:len(titled)-1], ", ") + ", or " + titled[len(titled)-1]
}
