package window

import (
	"sync"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// State is the display state of the window.
type State string

const (
	Idle       State = "Idle"
	Displaying State = "Displaying"
)

// Notice is a modal message shown on top of the window.
type Notice struct {
	Title string
	Text  string
}

// View is a snapshot of every widget, taken under the window lock.
type View struct {
	Title       string
	Query       string
	Units       entity.UnitSystem
	State       State
	Name        string
	Condition   string
	Temperature string
	Detail      string
	Icon        *entity.IconImage
	Forecast    string
	Notice      *Notice
}

// Window owns the widget state of the single application window.
type Window struct {
	mu sync.Mutex

	title       string
	query       string
	units       entity.UnitSystem
	state       State
	name        string
	condition   string
	temperature string
	detail      string
	icon        *entity.IconImage
	forecast    string
	notice      *Notice
}

// NewWindow creates an idle window with the text field pre-filled with defaultCity.
func NewWindow(title string, defaultCity string) *Window {
	return &Window{
		title: title,
		query: defaultCity,
		units: entity.Metric,
		state: Idle,
	}
}

// SetInput records the text field and unit selection as the user submitted them.
func (w *Window) SetInput(query string, units entity.UnitSystem) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.query = query
	w.units = units
}

// SetUnits records the unit selection.
func (w *Window) SetUnits(units entity.UnitSystem) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.units = units
}

// Apply consumes the outcome of one request. A notice leaves the display
// untouched; a report replaces it.
func (w *Window) Apply(outcome Outcome) {
	if outcome.Notice != nil {
		w.ShowNotice(*outcome.Notice)
		return
	}
	if outcome.Report != nil {
		w.Render(outcome.Report)
	}
}

// Render replaces every display region with the content of the report.
func (w *Window) Render(report *model.WeatherReport) {
	name := formatName(report.Current)
	condition := titleCase(report.Current.Description)
	temperature := formatTemperature(report.Current, report.Units)
	detail := formatDetail(report.Current, report.Units)
	forecast := formatForecast(report.Forecast, report.Units)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.name = name
	w.condition = condition
	w.temperature = temperature
	w.detail = detail
	w.icon = report.Icon
	w.forecast = forecast
	w.state = Displaying
}

// ShowNotice sets the notice shown on the next view.
func (w *Window) ShowNotice(notice Notice) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.notice = &notice
}

// State returns the current display state.
func (w *Window) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// View returns a snapshot of the window and consumes the pending notice.
func (w *Window) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	view := View{
		Title:       w.title,
		Query:       w.query,
		Units:       w.units,
		State:       w.state,
		Name:        w.name,
		Condition:   w.condition,
		Temperature: w.temperature,
		Detail:      w.detail,
		Icon:        w.icon,
		Forecast:    w.forecast,
		Notice:      w.notice,
	}
	w.notice = nil
	return view
}
