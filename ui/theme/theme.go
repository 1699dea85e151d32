package theme

// Widget styles for the region editor window. InitStyles activates the base
// theme and configures the named styles used by the views.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	ColorBg        = "#f4f5f7"
	ColorSurface   = "#ffffff"
	ColorPrimary   = "#2563eb"
	ColorDanger    = "#dc2626"
	ColorLocked    = "#64748b"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// Colors holds the resolved colors for the active mode.
type Colors struct {
	AppBg     string
	Surface   string
	Primary   string
	Danger    string
	Locked    string
	Text      string
	TextMuted string
}

// Current returns colors for the current mode.
func Current() Colors {
	if darkMode {
		return Colors{
			AppBg:     "#0f172a",
			Surface:   "#1e293b",
			Primary:   "#3b82f6",
			Danger:    "#ef4444",
			Locked:    "#94a3b8",
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
		}
	}
	return Colors{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Locked:    ColorLocked,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

const (
	StyleActionButton = "action.TButton"
	StyleExitButton   = "exit.TButton"
	StyleStatusLabel  = "status.TLabel"
)

var darkMode bool

// InitStyles applies styles for the current mode.
func InitStyles() { applyStyles(Current()) }

// ToggleDark flips dark mode, reapplies styles and returns the new mode.
func ToggleDark() bool {
	darkMode = !darkMode
	applyStyles(Current())
	return darkMode
}

// IsDark reports the current mode.
func IsDark() bool { return darkMode }

func applyStyles(c Colors) {
	_ = ActivateTheme("azure light")
	App.Configure(Background(c.AppBg))

	StyleConfigure(StyleActionButton,
		Background(c.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleExitButton,
		Background(c.Danger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStatusLabel,
		Foreground(c.Text),
		Background(c.Surface),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
