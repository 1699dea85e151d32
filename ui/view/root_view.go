package view

import (
	"image"
	"log/slog"

	"github.com/soocke/gripframe/config"
	"github.com/soocke/gripframe/domain/geometry"
	"github.com/soocke/gripframe/ui/images"
	"github.com/soocke/gripframe/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	stepSmall = 4
	stepLarge = 40
)

// Handlers are the user actions the root view forwards. Any may be nil.
type Handlers struct {
	OnCapture      func()
	OnToggleAspect func()
	OnToggleFollow func()
	OnExit         func()

	// Keyboard pointer
	OnStep   func(dx, dy float64)
	OnToggle func()
	OnClick  func()
	OnCancel func()

	OnApplied func(*config.Config)
}

// RootView composes the editor window: status line, action buttons, the
// region preview and the settings form.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	Preview  RegionPreview
	Settings SettingsPanel
	Overlay  ScreenOverlay

	StatusLabel *TLabelWidget

	// Cursor, when set, supplies the keyboard pointer drawn over the scene.
	Cursor func() (geometry.Point, bool)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout and binds the keyboard.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	palette := images.DefaultPalette()
	if p, err := palette.WithStrokes(rv.cfg.StrokeColor, rv.cfg.GripStrokeColor, rv.cfg.GripFillColor); err == nil {
		palette = p
	} else if rv.logger != nil {
		rv.logger.Warn("palette fallback", "error", err)
	}

	rv.StatusLabel = TLabel(Style(theme.StyleStatusLabel), Txt("idle"))
	Grid(rv.StatusLabel, Row(0), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	buttons := []struct {
		text  string
		style string
		fn    func()
	}{
		{"Capture Region", theme.StyleActionButton, h.OnCapture},
		{"Aspect Lock [Ctrl+A]", theme.StyleActionButton, h.OnToggleAspect},
		{"Follow Pointer [Ctrl+F]", theme.StyleActionButton, h.OnToggleFollow},
		{"Screen Overlay [Ctrl+O]", theme.StyleActionButton, rv.toggleOverlay},
		{"Dark Mode", theme.StyleActionButton, func() { theme.ToggleDark() }},
		{"Exit", theme.StyleExitButton, h.OnExit},
	}
	for i, b := range buttons {
		fn := b.fn
		if fn == nil {
			fn = func() {}
		}
		btn := TButton(Style(b.style), Txt(b.text), Command(fn))
		Grid(btn, In(btnFrame), Row(i), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}

	rv.Preview = NewRegionPreview(1, rv.cfg.PreviewW, rv.cfg.PreviewH, palette)
	rv.Overlay = NewScreenOverlay(rv.cfg.StrokeColor)
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, rv.logger, func(c *config.Config) {
		if p, err := images.DefaultPalette().WithStrokes(c.StrokeColor, c.GripStrokeColor, c.GripFillColor); err == nil {
			rv.Preview.SetPalette(p)
		}
		if h.OnApplied != nil {
			h.OnApplied(c)
		}
	})
	rv.Settings.Build(2)

	rv.bindKeys(h)
}

func (rv *RootView) bindKeys(h Handlers) {
	step := func(dx, dy float64) func() {
		return func() {
			if h.OnStep != nil {
				h.OnStep(dx, dy)
			}
		}
	}
	for _, k := range []struct {
		seq    string
		dx, dy float64
	}{
		{"<Left>", -stepSmall, 0}, {"<Right>", stepSmall, 0},
		{"<Up>", 0, -stepSmall}, {"<Down>", 0, stepSmall},
		{"<Shift-Left>", -stepLarge, 0}, {"<Shift-Right>", stepLarge, 0},
		{"<Shift-Up>", 0, -stepLarge}, {"<Shift-Down>", 0, stepLarge},
	} {
		Bind(App, k.seq, Command(step(k.dx, k.dy)))
	}
	bind := func(seq string, fn func()) {
		if fn != nil {
			Bind(App, seq, Command(fn))
		}
	}
	bind("<space>", h.OnToggle)
	bind("<Return>", h.OnClick)
	bind("<Escape>", h.OnCancel)
	bind("<Control-a>", h.OnToggleAspect)
	bind("<Control-f>", h.OnToggleFollow)
	bind("<Control-o>", rv.toggleOverlay)
}

func (rv *RootView) toggleOverlay() {
	if rv != nil && rv.Overlay != nil {
		rv.Overlay.Toggle()
	}
}

// ShowScene paints s, adding the keyboard pointer, and moves the screen
// overlay onto the frame.
func (rv *RootView) ShowScene(s images.Scene) {
	if rv == nil || rv.Preview == nil {
		return
	}
	if rv.Cursor != nil {
		s.Cursor, s.ShowCursor = rv.Cursor()
	}
	rv.Preview.ShowScene(s)
	if rv.Overlay != nil {
		rv.Overlay.Follow(s.Frame)
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// ShowCapture shows a thumbnail of the last captured region.
func (rv *RootView) ShowCapture(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ShowCapture(img)
	}
}

// ClearCapture blanks the capture thumbnail.
func (rv *RootView) ClearCapture() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}
