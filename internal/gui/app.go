package gui

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/views"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(255, 162, 56, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	hudTop    = 80
	hudBottom = 140
	fontPath  = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

// App runs the views in a desktop window: a picker, then one view with a
// parameter list and a strip chart of its combined amplitude.
type App struct {
	Cfg       *config.Config
	View      views.View
	Names     []string
	Selected  int
	ParamSel  int
	InMenu    bool
	Telemetry []float64
	Font      rl.Font
	surface   Surface
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height+hudTop+hudBottom), "wavesim")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	if !rl.FileExists(fontPath) {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp opens on the picker when view is empty, otherwise on that view.
func NewApp(cfg *config.Config, view string) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &App{
		Cfg:    cfg,
		Names:  views.Names(),
		InMenu: view == "",
		Font:   loadFont(),
	}
	if view != "" {
		if err := a.load(view); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Run opens the window on view (or the picker) and blocks until it is
// closed.
func Run(cfg *config.Config, view string) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	initWindow(cfg)
	defer rl.CloseWindow()
	app, err := NewApp(cfg, view)
	if err != nil {
		return err
	}
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) load(name string) error {
	v, err := views.New(name, a.Cfg, nil)
	if err != nil {
		return err
	}
	a.View = v
	a.ParamSel = 0
	a.Telemetry = a.Telemetry[:0]
	a.layout()
	return nil
}

// layout gives the view the window minus the HUD bands.
func (a *App) layout() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()-hudTop-hudBottom
	if h < 50 {
		h = 50
	}
	a.surface = Surface{X: 0, Y: hudTop, Width: w, Height: h}
	if a.View != nil {
		a.View.Resize(w, h)
	}
}

// Update handles input and advances the view. It returns false to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}
	if rl.IsWindowResized() {
		a.layout()
	}

	if a.InMenu {
		a.menuKeys()
		return true
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		a.InMenu = true
		return true
	case rl.IsKeyPressed(rl.KeySpace):
		a.View.TogglePause()
	case rl.IsKeyPressed(rl.KeyR):
		a.View.Reset()
		a.Telemetry = a.Telemetry[:0]
	case rl.IsKeyPressed(rl.KeyTab):
		if n := len(a.View.Params()); n > 0 {
			a.ParamSel = (a.ParamSel + 1) % n
		}
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyK):
		a.adjust(1)
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyJ):
		a.adjust(-1)
	}

	if a.View.Playing() {
		a.View.Update()
		a.record()
	}
	return true
}

func (a *App) menuKeys() {
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Selected = (a.Selected + 1) % len(a.Names)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Selected = (a.Selected + len(a.Names) - 1) % len(a.Names)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		if err := a.load(a.Names[a.Selected]); err != nil {
			log.Printf("load %s: %v", a.Names[a.Selected], err)
			return
		}
		a.InMenu = false
	}
}

func (a *App) adjust(dir float64) {
	params := a.View.Params()
	if len(params) == 0 {
		return
	}
	p := params[a.ParamSel%len(params)]
	if err := a.View.SetParam(p.Name, p.Value+dir*p.Step); err != nil {
		log.Printf("set %s: %v", p.Name, err)
	}
}

// record keeps the peak of the combined series for the strip chart.
func (a *App) record() {
	series := a.View.Series()
	if len(series) == 0 {
		return
	}
	if p, ok := series[len(series)-1].Frame.Peak(); ok {
		a.Telemetry = append(a.Telemetry, p.Amplitude)
	}
	if len(a.Telemetry) > 300 {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.InMenu {
		a.drawMenu()
	} else {
		s := a.surface
		rl.BeginScissorMode(int32(s.X), int32(s.Y), int32(s.Width), int32(s.Height))
		a.View.Draw(&a.surface)
		rl.EndScissorMode()
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("wavesim", 30, 24, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", a.View.Name()), 150, 28, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !a.View.Playing() {
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, int(rl.GetScreenWidth())-130, 28, 16, col)
	a.drawText(fmt.Sprintf("t = %.2fs", a.View.Elapsed()), int(rl.GetScreenWidth())-260, 28, 16, ColText)

	y := rl.GetScreenHeight() - hudBottom + 16
	for i, p := range a.View.Params() {
		c := ColText
		prefix := "  "
		if i == a.ParamSel {
			c, prefix = ColSelect, "> "
		}
		a.drawText(fmt.Sprintf("%s%-16s %8.2f", prefix, p.Name, p.Value), 30, y+i*22, 16, c)
	}
	a.DrawTelemetry(480, y, 400, 70)

	a.drawText("[SPACE] PAUSE  [R] RESET  [TAB] PARAM  [UP/DOWN] TUNE  [ESC] MENU  [Q] QUIT", 30, rl.GetScreenHeight()-24, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), rl.GetScreenWidth()-90, rl.GetScreenHeight()-24, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots the recent peak amplitudes inside the given box.
func (a *App) DrawTelemetry(x, y, width, height int) {
	if len(a.Telemetry) < 2 {
		return
	}
	lo, hi := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, v := range a.Telemetry {
		px := float32(x) + float32(i)/float32(len(a.Telemetry))*float32(width)
		py := float32(y+height) - float32((v-lo)/(hi-lo))*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("peak %.1f", a.Telemetry[len(a.Telemetry)-1]), x+width+10, y+height-10, 14, ColText)
}

func (a *App) drawMenu() {
	a.drawText("wavesim", 50, 50, 40, ColSelect)
	a.drawText("Select View", 50, 100, 16, ColTextDim)

	y := 160
	for i, name := range a.Names {
		if i == a.Selected {
			a.drawText(fmt.Sprintf("> %-16s %s", name, views.Describe(name)), 50, y, 20, ColSelect)
		} else {
			a.drawText(fmt.Sprintf("  %-16s %s", name, views.Describe(name)), 50, y, 20, ColText)
		}
		y += 28
	}

	a.drawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 50, rl.GetScreenHeight()-40, 14, ColTextDim)
}
