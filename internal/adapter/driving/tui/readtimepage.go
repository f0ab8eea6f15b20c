package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ericfisherdev/widgetpanel/internal/application"
)

const (
	draftWidth  = 50
	draftHeight = 10
)

var statsStyle = lipgloss.NewStyle().Bold(true)

type readTimePage struct {
	widget *application.ReadTimeWidget
	draft  textarea.Model
}

func newReadTimePage(widget *application.ReadTimeWidget) readTimePage {
	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(draftWidth)
	ta.SetHeight(draftHeight)
	return readTimePage{widget: widget, draft: ta}
}

func (p *readTimePage) focus() tea.Cmd {
	return p.draft.Focus()
}

func (p *readTimePage) blur() {
	p.draft.Blur()
}

func (p *readTimePage) setWidth(w int) {
	if w > 0 && w < draftWidth {
		p.draft.SetWidth(w)
	}
}

func (p readTimePage) update(msg tea.Msg) (readTimePage, tea.Cmd) {
	var cmd tea.Cmd
	p.draft, cmd = p.draft.Update(msg)
	if p.draft.Value() != p.widget.Text() {
		p.widget.SetText(p.draft.Value())
	}
	return p, cmd
}

// heading returns "<read time> read time - Words <n>".
func (p readTimePage) heading() string {
	est := p.widget.Estimate()
	return fmt.Sprintf("%s read time - Words %d", est.ReadTime, est.WordCount)
}

func (p readTimePage) view() string {
	var b strings.Builder
	b.WriteString(statsStyle.Render(p.heading()))
	b.WriteString("\n\n")
	b.WriteString(p.draft.View())
	return b.String()
}
