package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/views"
)

const (
	stateMenu = iota
	stateLive
)

// menu lists the views and hands over to a live Model once one is picked.
type menu struct {
	state, cursor int
	names         []string
	cfg           *config.Config
	now           clock.Source
	gifPath       string
	width, height int
	live          Model
	err           error
}

func newMenu(cfg *config.Config, now clock.Source, gifPath string) menu {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return menu{state: stateMenu, names: views.Names(), cfg: cfg, now: now, gifPath: gifPath}
}

func (m menu) Init() tea.Cmd { return nil }

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
	}
	if m.state == stateLive {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			m.state = stateMenu
			return m, nil
		}
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.menuKey(key)
	}
	return m, nil
}

func (m menu) menuKey(msg tea.KeyMsg) (menu, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m menu) start() (menu, tea.Cmd) {
	v, err := views.New(m.names[m.cursor], m.cfg, m.now)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.live = NewModel(v, m.cfg.FPS, m.gifPath)
	if m.width > 0 {
		m.live.resize(m.width, m.height)
	}
	m.state = stateLive
	return m, m.live.Init()
}

func (m menu) View() string {
	if m.state == stateLive {
		return m.live.View()
	}
	t := CurrentTheme
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	sub := lipgloss.NewStyle().Foreground(t.Muted)
	pick := lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(t.Primary)
	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString("\n\n    " + title.Render("WAVESIM") + "\n    " + sub.Render("wave laboratory") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.names {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", title.Render("▸"), pick.Render(fmt.Sprintf("%-16s", name)), desc.Render(views.Describe(name))))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", sub.Render(fmt.Sprintf("%-16s", name)), sub.Render(views.Describe(name))))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(t.Record).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + key.Render("j/k") + sub.Render(" navigate  ") + key.Render("enter") + sub.Render(" select  ") + key.Render("esc") + sub.Render(" back  ") + key.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive opens the view picker.
func RunInteractive(cfg *config.Config, gifPath string) error {
	_, err := tea.NewProgram(newMenu(cfg, nil, gifPath), tea.WithAltScreen()).Run()
	return err
}
