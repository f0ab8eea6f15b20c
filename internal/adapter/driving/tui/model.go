// Package tui implements the terminal driving adapter: the color and
// read-time widgets as two tabs of a bubbletea program.
package tui

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ericfisherdev/widgetpanel/internal/application"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
)

// Route identifies a tab. Routes mirror the GUI paths.
type Route string

const (
	RouteColor    Route = "/"
	RouteReadTime Route = "/read-time"
)

var routes = []struct {
	route Route
	label string
}{
	{RouteColor, "Color"},
	{RouteReadTime, "Read time"},
}

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	store  driven.PreferenceStore
	scope  string
	logger *slog.Logger

	active   int
	color    colorPage
	readTime readTimePage

	width int
	err   error
}

// New builds the root model and loads the stored color for scope. store may
// be nil, in which case colors are kept in memory only.
func New(ctx context.Context, store driven.PreferenceStore, scope string, logger *slog.Logger) Model {
	colorWidget := application.NewColorWidget(logger)
	colorWidget.Initialize(ctx, store, scope)

	m := Model{
		ctx:      ctx,
		store:    store,
		scope:    scope,
		logger:   logger,
		color:    newColorPage(colorWidget),
		readTime: newReadTimePage(application.NewReadTimeWidget(logger)),
	}
	m.color.focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.color.init()
}

// Route returns the active tab.
func (m Model) Route() Route {
	return routes[m.active].route
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.readTime.setWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m.switchTab(1)
		case "shift+tab":
			return m.switchTab(len(routes) - 1)
		}
	}

	switch m.Route() {
	case RouteColor:
		var (
			cmd tea.Cmd
			err error
		)
		m.color, cmd, err = m.color.update(m.ctx, m.store, m.scope, msg)
		if err != nil {
			m.err = err
			m.logger.Error("failed to persist color", "scope", m.scope, "error", err)
			return m, tea.Quit
		}
		return m, cmd
	default:
		var cmd tea.Cmd
		m.readTime, cmd = m.readTime.update(msg)
		return m, cmd
	}
}

func (m Model) switchTab(step int) (tea.Model, tea.Cmd) {
	m.active = (m.active + step) % len(routes)

	var cmd tea.Cmd
	switch m.Route() {
	case RouteColor:
		m.readTime.blur()
		cmd = m.color.focus()
	default:
		m.color.blur()
		cmd = m.readTime.focus()
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	tabs := make([]string, len(routes))
	for i, r := range routes {
		if i == m.active {
			tabs[i] = activeTabStyle.Render(r.label)
		} else {
			tabs[i] = inactiveTabStyle.Render(r.label)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch m.Route() {
	case RouteColor:
		b.WriteString(m.color.view())
	default:
		b.WriteString(m.readTime.view())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch page • esc quit"))
	b.WriteString("\n")
	return b.String()
}
