package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ericfisherdev/widgetpanel/internal/application"
	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
)

var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f07178"))

type colorPage struct {
	widget *application.ColorWidget
	input  textinput.Model
	notice string
}

func newColorPage(widget *application.ColorWidget) colorPage {
	in := textinput.New()
	in.Prompt = "color> "
	in.CharLimit = 7
	in.Width = 10
	in.Placeholder = widget.Color()
	return colorPage{widget: widget, input: in}
}

func (p *colorPage) init() tea.Cmd {
	return textinput.Blink
}

func (p *colorPage) focus() tea.Cmd {
	return p.input.Focus()
}

func (p *colorPage) blur() {
	p.input.Blur()
}

// update applies the typed color on enter. The returned error is a failed
// write to store.
func (p colorPage) update(ctx context.Context, store driven.PreferenceStore, scope string, msg tea.Msg) (colorPage, tea.Cmd, error) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		color, err := model.NormalizeColor(p.input.Value())
		if err != nil {
			p.notice = "Enter a color in #RRGGBB form."
			return p, nil, nil
		}
		if err := p.widget.SetColor(ctx, store, scope, color); err != nil {
			return p, nil, err
		}
		p.notice = ""
		p.input.Reset()
		p.input.Placeholder = p.widget.Color()
		return p, nil, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd, nil
}

func (p colorPage) view() string {
	var b strings.Builder

	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.widget.Color()))
	b.WriteString(heading.Render("Color Page"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(p.widget.Style()))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	if p.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(p.notice))
	}
	return b.String()
}
