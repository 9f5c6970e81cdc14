package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/kobzarvs/hinto/internal/element"
	"github.com/kobzarvs/hinto/internal/hint"
)

// Hints controls label generation, filtering and selection.
type Hints struct {
	ExitKey       string  `toml:"exit-key"`
	LabelCase     string  `toml:"label-case"` // "upper" or "lower"
	Alphabet      string  `toml:"alphabet"`
	HoverModifier string  `toml:"hover-modifier"`
	GrabModifier  string  `toml:"grab-modifier"`
	MinWidth      float64 `toml:"min-width"`
	MinHeight     float64 `toml:"min-height"`
	PaddingX      float64 `toml:"padding-x"`
	HintHeight    float64 `toml:"hint-height"`
}

// Theme holds display colors as hex or named color strings.
type Theme struct {
	HintBackground string `toml:"hint-background"`
	HintBorder     string `toml:"hint-border"`
	HintText       string `toml:"hint-text"`
	HintMatched    string `toml:"hint-matched"`
	ElementFrame   string `toml:"element-frame"`
	ElementText    string `toml:"element-text"`
}

type Config struct {
	Hints Hints `toml:"hints"`
	Theme Theme `toml:"theme"`
}

func Default() Config {
	return Config{
		Hints: Hints{
			ExitKey:       "q",
			LabelCase:     "upper",
			Alphabet:      hint.DefaultAlphabet,
			HoverModifier: "ctrl",
			GrabModifier:  "alt",
			MinWidth:      hint.DefaultMinWidth,
			MinHeight:     hint.DefaultMinHeight,
			PaddingX:      hint.DefaultPaddingX,
			HintHeight:    hint.DefaultHintHeight,
		},
		Theme: Theme{
			HintBackground: "#FFF784",
			HintBorder:     "#C38A22",
			HintText:       "#302505",
			HintMatched:    "#1A1A1A",
			ElementFrame:   "#3E4B59",
			ElementText:    "#B3B1AD",
		},
	}
}

// Uppercase reports the configured label case policy.
func (h Hints) Uppercase() bool {
	return !strings.EqualFold(h.LabelCase, "lower")
}

// SelectionOptions converts the hints section into validated selection
// options for the given overlay bounds. A malformed section is a fatal
// construction-time error.
func (h Hints) SelectionOptions(bounds element.Size) (hint.Options, error) {
	exit, size := utf8.DecodeRuneInString(h.ExitKey)
	if exit == utf8.RuneError || size != len(h.ExitKey) {
		return hint.Options{}, fmt.Errorf("exit-key %q must be a single key", h.ExitKey)
	}
	hover, err := hint.ParseModifier(h.HoverModifier)
	if err != nil {
		return hint.Options{}, fmt.Errorf("hover-modifier: %w", err)
	}
	grab, err := hint.ParseModifier(h.GrabModifier)
	if err != nil {
		return hint.Options{}, fmt.Errorf("grab-modifier: %w", err)
	}
	if h.MinWidth < 0 || h.MinHeight < 0 {
		return hint.Options{}, fmt.Errorf("min size %gx%g", h.MinWidth, h.MinHeight)
	}
	opts := hint.Options{
		Alphabet:  []rune(h.Alphabet),
		ExitKey:   exit,
		HoverMod:  hover,
		GrabMod:   grab,
		Uppercase: h.Uppercase(),
		Filter: hint.FilterOptions{
			MinWidth:  h.MinWidth,
			MinHeight: h.MinHeight,
		},
		Bounds: bounds,
	}
	if err := opts.Validate(); err != nil {
		return hint.Options{}, err
	}
	return opts, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("HINTO_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "hinto"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hinto"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, merging user values over defaults, then
// applies environment overrides. A `.env` in the working directory or
// next to the binary is loaded first.
func Load() (Config, error) {
	cfg := Default()
	loadDotenv()

	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Hints.ExitKey != "" {
		cfg.Hints.ExitKey = userCfg.Hints.ExitKey
	}
	if userCfg.Hints.LabelCase != "" {
		cfg.Hints.LabelCase = userCfg.Hints.LabelCase
	}
	if userCfg.Hints.Alphabet != "" {
		cfg.Hints.Alphabet = userCfg.Hints.Alphabet
	}
	if userCfg.Hints.HoverModifier != "" {
		cfg.Hints.HoverModifier = userCfg.Hints.HoverModifier
	}
	if userCfg.Hints.GrabModifier != "" {
		cfg.Hints.GrabModifier = userCfg.Hints.GrabModifier
	}
	if userCfg.Hints.MinWidth > 0 {
		cfg.Hints.MinWidth = userCfg.Hints.MinWidth
	}
	if userCfg.Hints.MinHeight > 0 {
		cfg.Hints.MinHeight = userCfg.Hints.MinHeight
	}
	if userCfg.Hints.PaddingX > 0 {
		cfg.Hints.PaddingX = userCfg.Hints.PaddingX
	}
	if userCfg.Hints.HintHeight > 0 {
		cfg.Hints.HintHeight = userCfg.Hints.HintHeight
	}
	if userCfg.Theme.HintBackground != "" {
		cfg.Theme.HintBackground = userCfg.Theme.HintBackground
	}
	if userCfg.Theme.HintBorder != "" {
		cfg.Theme.HintBorder = userCfg.Theme.HintBorder
	}
	if userCfg.Theme.HintText != "" {
		cfg.Theme.HintText = userCfg.Theme.HintText
	}
	if userCfg.Theme.HintMatched != "" {
		cfg.Theme.HintMatched = userCfg.Theme.HintMatched
	}
	if userCfg.Theme.ElementFrame != "" {
		cfg.Theme.ElementFrame = userCfg.Theme.ElementFrame
	}
	if userCfg.Theme.ElementText != "" {
		cfg.Theme.ElementText = userCfg.Theme.ElementText
	}

	applyEnv(&cfg)
	return cfg, nil
}

// loadDotenv mirrors the usual tray-tool setup: a .env in the working
// directory or next to the binary provides environment defaults.
func loadDotenv() {
	paths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// applyEnv overrides every [hints] key from HINTO_* variables. Numeric
// values that do not parse are ignored, like out-of-range file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("HINTO_EXIT_KEY"); v != "" {
		cfg.Hints.ExitKey = v
	}
	if v := os.Getenv("HINTO_ALPHABET"); v != "" {
		cfg.Hints.Alphabet = v
	}
	if v := os.Getenv("HINTO_LABEL_CASE"); v != "" {
		cfg.Hints.LabelCase = v
	}
	if v := os.Getenv("HINTO_HOVER_MODIFIER"); v != "" {
		cfg.Hints.HoverModifier = v
	}
	if v := os.Getenv("HINTO_GRAB_MODIFIER"); v != "" {
		cfg.Hints.GrabModifier = v
	}
	applyEnvFloat("HINTO_MIN_WIDTH", &cfg.Hints.MinWidth)
	applyEnvFloat("HINTO_MIN_HEIGHT", &cfg.Hints.MinHeight)
	applyEnvFloat("HINTO_PADDING_X", &cfg.Hints.PaddingX)
	applyEnvFloat("HINTO_HINT_HEIGHT", &cfg.Hints.HintHeight)
}

func applyEnvFloat(name string, dst *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return
	}
	*dst = f
}
