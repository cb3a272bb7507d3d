package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/landmark-editor/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel encapsulates the display settings form.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type SettingsPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int) // returns next free row
	ApplyChanges()                                       // parses widget text into config, persists and notifies
}

type settingsPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewSettingsPanel creates the view bound to cfg. onApply runs after a
// successful apply.
func NewSettingsPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config)) SettingsPanel {
	return &settingsPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(parent *FrameWidget, startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(10))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("markerSize", "Marker Size", fmt.Sprintf("%.1f", c.MarkerSize))
	makeRow("lineWidth", "Line Width", fmt.Sprintf("%.1f", c.LineWidth))
	makeRow("colorMode", "Colors (group/index)", c.ColorMode)
	makeRow("showLabels", "Show Labels (true/false)", fmt.Sprintf("%t", c.ShowLabels))
	makeRow("nudgeStep", "Nudge Step Px", fmt.Sprintf("%.1f", c.NudgeStep))
	makeRow("autoSave", "Auto-save (true/false)", fmt.Sprintf("%t", c.AutoSave))
	makeRow("darkMode", "Dark Mode (true/false)", fmt.Sprintf("%t", c.DarkMode))
	v.applyBtn = Button(Txt("Apply Settings"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *settingsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *settingsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		if f, ok := parseFloatField(v.text(v.widgets[id])); ok {
			*dst = f
		}
	}
	assignBool := func(id string, dst *bool) {
		if b, ok := parseBoolLoose(v.text(v.widgets[id])); ok {
			*dst = b
		}
	}
	assignFloat("markerSize", &cfg.MarkerSize)
	assignFloat("lineWidth", &cfg.LineWidth)
	assignFloat("nudgeStep", &cfg.NudgeStep)
	assignBool("showLabels", &cfg.ShowLabels)
	assignBool("autoSave", &cfg.AutoSave)
	assignBool("darkMode", &cfg.DarkMode)
	if mode := strings.TrimSpace(v.text(v.widgets["colorMode"])); mode != "" {
		cfg.ColorMode = mode
	}
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if v.cfgPath != "" {
		if err := v.cfg.Save(v.cfgPath); err != nil {
			if v.logger != nil {
				v.logger.Error("config save failed", "error", err)
			}
		} else if v.logger != nil {
			v.logger.Info("config saved", "path", v.cfgPath)
		}
	}
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
}

// parsing helpers (unexported)
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
