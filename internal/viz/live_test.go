package viz

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/views"
)

func newTestModel(t *testing.T, name string) (Model, *clock.Manual) {
	t.Helper()
	src := clock.NewManual(time.Unix(0, 0))
	v, err := views.New(name, nil, src.Now)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(v, 60, filepath.Join(t.TempDir(), "out.gif")), src
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestTickAdvancesView(t *testing.T) {
	m, src := newTestModel(t, "pulse")
	src.Advance(time.Second)

	m, cmd := update(m, TickMsg{Gen: 0})
	if cmd == nil {
		t.Fatal("a playing model should schedule the next tick")
	}
	if got := m.view.(*views.Pulse).Offset(); got <= 0 {
		t.Errorf("expected the pulse to have moved, offset %f", got)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	m, _ := newTestModel(t, "pulse")

	m, cmd := update(m, key(" "))
	if cmd != nil {
		t.Error("pausing should not schedule a tick")
	}
	if m.view.Playing() {
		t.Fatal("expected paused")
	}
	if _, cmd := update(m, TickMsg{Gen: m.gen}); cmd != nil {
		t.Error("a paused model should not request more frames")
	}

	m, cmd = update(m, key(" "))
	if cmd == nil {
		t.Error("resuming should restart the tick chain")
	}
	if _, cmd := update(m, TickMsg{Gen: m.gen - 1}); cmd != nil {
		t.Error("ticks from the old chain should be dropped")
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t, "superposition")
	m, _ = update(m, tea.WindowSizeMsg{Width: 145, Height: 40})
	w, h := m.canvas.Size()
	if w != 2*(145-panelWidth-8) || h != 4*36 {
		t.Errorf("unexpected canvas size %dx%d", w, h)
	}
	series := m.view.Series()
	if n := len(series[0].Frame); n != w {
		t.Errorf("expected view sampled at canvas width %d, got %d", w, n)
	}
}

func TestAdjustParam(t *testing.T) {
	m, _ := newTestModel(t, "superposition")
	m, _ = update(m, key("tab"))
	m, _ = update(m, key("up"))

	p := m.view.Params()[1]
	if p.Name != "amplitude_right" || p.Value != 45 {
		t.Errorf("expected amplitude_right 45, got %s %f", p.Name, p.Value)
	}
}

func TestResetWhilePausedResumes(t *testing.T) {
	m, src := newTestModel(t, "pulse")
	src.Advance(2 * time.Second)
	m, _ = update(m, key(" "))
	m, cmd := update(m, key("r"))
	if cmd == nil || !m.view.Playing() {
		t.Error("reset should resume ticking")
	}
	if m.view.Elapsed() != 0 {
		t.Errorf("expected elapsed 0, got %f", m.view.Elapsed())
	}
}

func TestRecordGIF(t *testing.T) {
	m, src := newTestModel(t, "pulse")
	m, _ = update(m, key("g"))
	for i := 0; i < 3; i++ {
		src.Advance(time.Second / 60)
		m, _ = update(m, TickMsg{Gen: m.gen})
	}
	if m.Frames() != 3 {
		t.Fatalf("expected 3 buffered frames, got %d", m.Frames())
	}
	m, _ = update(m, key("g"))
	if m.recording || !strings.HasPrefix(m.status, "saved") {
		t.Errorf("expected saved status, got %q", m.status)
	}
}

func TestThemeCycle(t *testing.T) {
	defer SetTheme("cyberpunk")
	SetTheme("cyberpunk")
	m, _ := newTestModel(t, "pulse")
	update(m, key("t"))
	if CurrentTheme.Name != "retro" {
		t.Errorf("expected retro, got %s", CurrentTheme.Name)
	}
	if GetTheme("nope").Name != "cyberpunk" {
		t.Error("unknown theme should fall back to cyberpunk")
	}
}

func TestViewRendersPanel(t *testing.T) {
	m, _ := newTestModel(t, "reflection")
	out := m.View()
	for _, want := range []string{"REFLECTION", "RUNNING", "amplitude", "Elapsed"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestSparklineAndParamBar(t *testing.T) {
	if got := []rune(Sparkline([]float64{0, 1, 2, 3}, 4)); len(got) != 4 || got[0] != '▁' || got[3] != '█' {
		t.Errorf("unexpected sparkline %q", string(got))
	}
	p := views.Param{Min: -120, Max: 120}
	if got := ParamBar(p, 0, 10); got != "[=====-----]" {
		t.Errorf("unexpected bar %q", got)
	}
}
