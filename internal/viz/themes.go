package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the terminal view. Curve is the braille canvas colour and
// the foreground of recorded GIF frames.
type Theme struct {
	Name    string
	Curve   lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
	Record  lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Curve:   "#ffa238",
		Primary: "#ff00ff",
		Accent:  "#00ffff",
		Text:    "#ffffff",
		Muted:   "#666666",
		Running: "#00ff00",
		Paused:  "#ff8800",
		Record:  "#ff0000",
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Curve:   "#00ff00", // green phosphor
		Primary: "#00cc00",
		Accent:  "#88ff88",
		Text:    "#00ff00",
		Muted:   "#005500",
		Running: "#88ff88",
		Paused:  "#ffff00",
		Record:  "#ff0000",
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Curve:   "#ffffff",
		Primary: "#cccccc",
		Accent:  "#0088ff",
		Text:    "#ffffff",
		Muted:   "#888888",
		Running: "#00ff00",
		Paused:  "#ffaa00",
		Record:  "#ff0000",
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Curve:   "#00bfff",
		Primary: "#0077be",
		Accent:  "#ffd700",
		Text:    "#e0f0ff",
		Muted:   "#4488aa",
		Running: "#00ff88",
		Paused:  "#ffcc00",
		Record:  "#ff4444",
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Curve:   "#ffa500",
		Primary: "#ff6b6b",
		Accent:  "#ff9ff3",
		Text:    "#fff5f5",
		Muted:   "#8b6b8c",
		Running: "#5fd068",
		Paused:  "#ffc048",
		Record:  "#ff4757",
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one and returns it.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = Themes[0]
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
