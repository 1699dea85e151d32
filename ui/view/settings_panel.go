package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/gripframe/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel is the constraint and appearance form. ApplyChanges writes the
// parsed values back into *config.Config, saves it and notifies OnApplied.
type SettingsPanel interface {
	Build(startRow int) (endRow int)
	SetEditable(enabled bool)
	ApplyChanges()
}

type settingsPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func(*config.Config)
	applyBtn  *ButtonWidget
	widgets   map[string]*TextWidget
}

// NewSettingsPanel creates the form bound to cfg. onApplied may be nil.
func NewSettingsPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func(*config.Config)) SettingsPanel {
	return &settingsPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApplied: onApplied, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("minWidth", "Min Width", fmt.Sprintf("%.0f", c.MinWidth))
	makeRow("minHeight", "Min Height", fmt.Sprintf("%.0f", c.MinHeight))
	makeRow("hitMargin", "Hit Margin", fmt.Sprintf("%.0f", c.HitMargin))
	makeRow("gripSize", "Grip Size", fmt.Sprintf("%.0f", c.GripSize))
	makeRow("strokeColor", "Stroke Color", c.StrokeColor)
	makeRow("gripStrokeColor", "Grip Stroke Color", c.GripStrokeColor)
	makeRow("gripFillColor", "Grip Fill Color", c.GripFillColor)
	makeRow("tapSlop", "Tap Slop", fmt.Sprintf("%.1f", c.TapSlop))
	makeRow("sound", "Sound (true/false)", fmt.Sprintf("%t", c.Sound))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *settingsPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *settingsPanel) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *settingsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg
	assignFloat := func(id string, dst *float64) {
		if s, ok := v.text(id); ok {
			if f, ok := parseFloatField(s); ok {
				*dst = f
			}
		}
	}
	assignString := func(id string, dst *string) {
		if s, ok := v.text(id); ok && s != "" {
			*dst = s
		}
	}
	assignFloat("minWidth", &cfg.MinWidth)
	assignFloat("minHeight", &cfg.MinHeight)
	assignFloat("hitMargin", &cfg.HitMargin)
	assignFloat("gripSize", &cfg.GripSize)
	assignFloat("tapSlop", &cfg.TapSlop)
	assignString("strokeColor", &cfg.StrokeColor)
	assignString("gripStrokeColor", &cfg.GripStrokeColor)
	assignString("gripFillColor", &cfg.GripFillColor)
	if s, ok := v.text("sound"); ok {
		if b, ok := parseBoolLoose(s); ok {
			cfg.Sound = b
		}
	}
	if err := cfg.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Warn("settings rejected", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if v.onApplied != nil {
		v.onApplied(v.cfg)
	}
	if v.cfgPath == "" {
		return
	}
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
}

func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
