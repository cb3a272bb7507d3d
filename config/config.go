package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds runtime configuration for the editor and the batch commands.
// Fields may be loaded from a JSON file, overridden by LDMK_* environment
// variables and finally by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Display
	DisplayWidth  int     `json:"display_width"`
	DisplayHeight int     `json:"display_height"`
	MarkerSize    float64 `json:"marker_size"`
	LineWidth     float64 `json:"line_width"`
	ColorMode     string  `json:"color_mode"` // group | index
	ShowLabels    bool    `json:"show_labels"`
	// GroupModifier is the key held to drag a whole connected group.
	GroupModifier string `json:"group_modifier"` // Shift | Control
	NudgeStep     float64 `json:"nudge_step"`

	// Files
	Scheme          string   `json:"scheme"`
	LandmarkSuffix  string   `json:"landmark_suffix"`
	SiblingSuffixes []string `json:"sibling_suffixes"`
	Extensions      []string `json:"extensions"`
	AutoSave        bool     `json:"auto_save"`

	// Batch
	RenderWorkers int `json:"render_workers"`

	// Window persistence
	DarkMode       bool   `json:"dark_mode"`
	WindowGeometry string `json:"window_geometry"`
	LastDir        string `json:"last_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		DisplayWidth:    800,
		DisplayHeight:   800,
		MarkerSize:      10,
		LineWidth:       1.5,
		ColorMode:       "group",
		ShowLabels:      false,
		GroupModifier:   "Shift",
		NudgeStep:       1,
		Scheme:          "ibug68",
		LandmarkSuffix:  "_ldmks.txt",
		SiblingSuffixes: []string{"_ldmks.txt", "_bbox.txt"},
		Extensions:      []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff", ".webp"},
		AutoSave:        true,
		RenderWorkers:   4,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.DisplayWidth <= 0 {
		c.DisplayWidth = d.DisplayWidth
	}
	if c.DisplayHeight <= 0 {
		c.DisplayHeight = d.DisplayHeight
	}
	if c.MarkerSize <= 0 {
		c.MarkerSize = d.MarkerSize
	}
	if c.LineWidth <= 0 {
		c.LineWidth = d.LineWidth
	}
	switch strings.ToLower(c.ColorMode) {
	case "group", "index":
		c.ColorMode = strings.ToLower(c.ColorMode)
	default:
		c.ColorMode = d.ColorMode
	}
	switch strings.ToLower(c.GroupModifier) {
	case "control", "ctrl":
		c.GroupModifier = "Control"
	default:
		c.GroupModifier = "Shift"
	}
	if c.NudgeStep <= 0 {
		c.NudgeStep = d.NudgeStep
	}
	if c.Scheme == "" {
		c.Scheme = d.Scheme
	}
	if c.LandmarkSuffix == "" {
		c.LandmarkSuffix = d.LandmarkSuffix
	}
	if len(c.SiblingSuffixes) == 0 {
		c.SiblingSuffixes = d.SiblingSuffixes
	}
	if len(c.Extensions) == 0 {
		c.Extensions = d.Extensions
	}
	if c.RenderWorkers <= 0 {
		c.RenderWorkers = d.RenderWorkers
	}
	if c.RenderWorkers > 64 {
		c.RenderWorkers = 64
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		cfg.ApplyEnv()
		_ = cfg.Validate()
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		cfg.ApplyEnv()
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		cfg = DefaultConfig()
		cfg.ApplyEnv()
		return cfg, err
	}
	cfg.ApplyEnv()
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format, creating
// the parent directory if needed.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ApplyEnv overrides fields from LDMK_* variables. Unset or invalid values
// leave the field alone.
func (c *Config) ApplyEnv() {
	c.DisplayWidth = envInt("LDMK_DISPLAY_WIDTH", c.DisplayWidth)
	c.DisplayHeight = envInt("LDMK_DISPLAY_HEIGHT", c.DisplayHeight)
	c.MarkerSize = envFloat("LDMK_MARKER_SIZE", c.MarkerSize)
	c.LineWidth = envFloat("LDMK_LINE_WIDTH", c.LineWidth)
	c.RenderWorkers = envInt("LDMK_RENDER_WORKERS", c.RenderWorkers)
	if v := os.Getenv("LDMK_COLOR_MODE"); v != "" {
		c.ColorMode = v
	}
	if v := os.Getenv("LDMK_SCHEME"); v != "" {
		c.Scheme = v
	}
	if v := os.Getenv("LDMK_LANDMARK_SUFFIX"); v != "" {
		c.LandmarkSuffix = v
	}
	if v := os.Getenv("LDMK_GROUP_MODIFIER"); v != "" {
		c.GroupModifier = v
	}
	if v, err := strconv.ParseBool(os.Getenv("LDMK_SHOW_LABELS")); err == nil {
		c.ShowLabels = v
	}
	if v, err := strconv.ParseBool(os.Getenv("LDMK_DEBUG")); err == nil {
		c.Debug = v
	}
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}

// DefaultPath is the per-user config file location, or "" when the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "landmark-editor", "config.json")
}
