package viz

import (
	"fmt"
	"image"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wavesim/internal/export"
	"github.com/san-kum/wavesim/internal/views"
)

const (
	width        = 80
	height       = 24
	graphWidth   = 36
	maxGIFFrames = 600
)

// TickMsg is one animation frame. Gen ties it to the tick chain that
// scheduled it, so a tick from before a pause is dropped after resuming.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// eased is a parameter value as displayed, chasing the real value on a
// spring.
type eased struct {
	pos, vel float64
}

// Model runs one view in the terminal. Each tick updates the view from its
// clock and redraws it onto the braille canvas.
type Model struct {
	view      views.View
	canvas    *Canvas
	fps       int
	gen       int
	selected  int
	spring    harmonica.Spring
	display   []eased
	recording bool
	frames    []*image.Paletted
	gifPath   string
	status    string
	showHelp  bool
	styles    styles
}

// NewModel wraps v. fps <= 0 means 60; gifPath is where g recordings go.
func NewModel(v views.View, fps int, gifPath string) Model {
	if fps <= 0 {
		fps = 60
	}
	if gifPath == "" {
		gifPath = v.Name() + ".gif"
	}
	m := Model{
		view:    v,
		canvas:  NewCanvas(width, height),
		fps:     fps,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 10.0, 0.7),
		gifPath: gifPath,
		styles:  newStyles(CurrentTheme),
	}
	m.view.Resize(m.canvas.Size())
	for _, p := range v.Params() {
		m.display = append(m.display, eased{pos: p.Value})
	}
	return m
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

func (m Model) Init() tea.Cmd {
	m.view.Update()
	m.view.Draw(m.canvas)
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if !m.view.Playing() {
			m.draw()
		}
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || !m.view.Playing() {
			return m, nil
		}
		m.view.Update()
		m.draw()
		m.ease()
		if m.recording {
			m.captureFrame()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.recording {
			m.stopRecording()
		}
		return m, tea.Quit
	case " ":
		if m.view.TogglePause() {
			return m, m.restartTicks()
		}
		m.draw()
	case "r":
		wasPlaying := m.view.Playing()
		m.view.Reset()
		m.view.Update()
		m.draw()
		m.snapDisplay()
		if !wasPlaying {
			return m, m.restartTicks()
		}
	case "tab":
		if n := len(m.view.Params()); n > 0 {
			m.selected = (m.selected + 1) % n
		}
	case "shift+tab":
		if n := len(m.view.Params()); n > 0 {
			m.selected = (m.selected + n - 1) % n
		}
	case "up", "k":
		m.adjustParam(1)
	case "down", "j":
		m.adjustParam(-1)
	case "t":
		m.styles = newStyles(NextTheme())
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recording = true
			m.frames = m.frames[:0]
			m.status = "recording"
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// restartTicks starts a fresh tick chain; ticks from older chains are
// ignored.
func (m *Model) restartTicks() tea.Cmd {
	m.gen++
	return m.tick()
}

func (m *Model) adjustParam(dir float64) {
	params := m.view.Params()
	if len(params) == 0 {
		return
	}
	p := params[m.selected%len(params)]
	if err := m.view.SetParam(p.Name, p.Value+dir*p.Step); err != nil {
		log.Printf("set %s: %v", p.Name, err)
		return
	}
	if !m.view.Playing() {
		m.view.Update()
		m.draw()
		m.snapDisplay()
	}
}

// ease moves the displayed parameter values one spring step towards the
// real ones.
func (m *Model) ease() {
	for i, p := range m.view.Params() {
		if i >= len(m.display) {
			m.display = append(m.display, eased{pos: p.Value})
			continue
		}
		d := &m.display[i]
		d.pos, d.vel = m.spring.Update(d.pos, d.vel, p.Value)
	}
}

func (m *Model) snapDisplay() {
	m.display = m.display[:0]
	for _, p := range m.view.Params() {
		m.display = append(m.display, eased{pos: p.Value})
	}
}

// resize fits the canvas to the terminal next to the stats panel.
func (m *Model) resize(termW, termH int) {
	cols := termW - panelWidth - 8
	rows := termH - 4
	if cols < 20 {
		cols = 20
	}
	if rows < 6 {
		rows = 6
	}
	m.canvas = NewCanvas(cols, rows)
	m.view.Resize(m.canvas.Size())
}

func (m *Model) draw() {
	m.view.Draw(m.canvas)
}

func (m *Model) captureFrame() {
	if len(m.frames) >= maxGIFFrames {
		m.stopRecording()
		return
	}
	fg := views.ParseColor(string(CurrentTheme.Curve))
	m.frames = append(m.frames, m.canvas.Image(8, 16, fg))
}

func (m *Model) stopRecording() {
	m.recording = false
	if len(m.frames) == 0 {
		m.status = "nothing recorded"
		return
	}
	delay := 100 / m.fps
	if delay < 2 {
		delay = 2
	}
	if err := export.WriteGIF(m.gifPath, m.frames, delay); err != nil {
		log.Printf("write gif: %v", err)
		m.status = "gif failed"
	} else {
		m.status = fmt.Sprintf("saved %s (%d frames)", m.gifPath, len(m.frames))
	}
	m.frames = nil
}

// Frames returns how many frames are buffered for the current recording.
func (m Model) Frames() int { return len(m.frames) }

// combined picks the series the side graph plots: the sum when the view
// has one, otherwise its only curve.
func combined(series []views.Series) views.Series {
	for _, s := range series {
		if s.Name == "combined" {
			return s
		}
	}
	if len(series) > 0 {
		return series[len(series)-1]
	}
	return views.Series{}
}

// resample picks n evenly spaced values so asciigraph gets a fixed width.
func resample(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i*len(values)/n]
	}
	return out
}

func (m Model) View() string {
	st := m.styles
	canvasView := st.canvas.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.view.Name())) + "\n")
	s.WriteString(views.Describe(m.view.Name()) + "\n\n")

	switch {
	case m.recording:
		s.WriteString(st.record.Render(fmt.Sprintf("● REC %d", len(m.frames))))
	case m.view.Playing():
		s.WriteString(st.running.Render("RUNNING"))
	default:
		s.WriteString(st.paused.Render("PAUSED"))
	}
	s.WriteString("\n\n")

	series := combined(m.view.Series())
	values := resample(series.Frame.Amplitudes(), graphWidth)
	if len(values) > 1 && !hasNaN(values) {
		chart := asciigraph.Plot(values, asciigraph.Height(5), asciigraph.Width(graphWidth), asciigraph.Caption(series.Name))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.label.Render("Elapsed") + st.value.Render(fmt.Sprintf("%.2fs", m.view.Elapsed())) + "\n")
	if p, ok := series.Frame.Peak(); ok {
		s.WriteString(st.label.Render("Peak") + st.value.Render(fmt.Sprintf("%.1f @ %.3f", p.Amplitude, p.Time)) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, p := range m.view.Params() {
		shown := p.Value
		if i < len(m.display) {
			shown = m.display[i].pos
		}
		line := formatParam(p.Name, ParamBar(p, shown, 10), shown)
		if i == m.selected {
			s.WriteString(st.active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.value.Render(line) + "\n")
		}
	}

	if m.status != "" {
		s.WriteString("\n" + st.label.Render(m.status) + "\n")
	}
	s.WriteString(st.help.Render("SP:Pause R:Reset Q:Quit\nT:Theme  G:Record ?:Help\nTab:Param ↑↓:Tune"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume animation   ║
║  R        - Reset view               ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

func hasNaN(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// Run shows v full screen until the user quits.
func Run(v views.View, fps int, gifPath string) error {
	_, err := tea.NewProgram(NewModel(v, fps, gifPath), tea.WithAltScreen()).Run()
	return err
}
