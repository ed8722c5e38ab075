package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/johnfelipe/HarmonyLab/degree"
	"github.com/johnfelipe/HarmonyLab/theory"
)

// DisplayModes toggles which analyzer outputs are requested. Mutually
// exclusive pairs (note names vs Helmholtz, degrees vs solfège) are the
// caller's problem to resolve; the engine honors whatever is set.
type DisplayModes struct {
	NoteNames     bool
	Helmholtz     bool
	ScaleDegrees  bool
	Solfege       bool
	Intervals     bool
	RomanNumerals bool
}

var modeNames = map[string]func(*DisplayModes){
	"note_names":     func(m *DisplayModes) { m.NoteNames = true },
	"helmholtz":      func(m *DisplayModes) { m.Helmholtz = true },
	"scale_degrees":  func(m *DisplayModes) { m.ScaleDegrees = true },
	"solfege":        func(m *DisplayModes) { m.Solfege = true },
	"intervals":      func(m *DisplayModes) { m.Intervals = true },
	"roman_numerals": func(m *DisplayModes) { m.RomanNumerals = true },
}

// ParseModes builds a DisplayModes from option names, failing loudly on an
// unknown name rather than ignoring it.
func ParseModes(names []string) (DisplayModes, error) {
	var m DisplayModes
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set, ok := modeNames[name]
		if !ok {
			return m, fmt.Errorf("unknown display mode %q: %w", name, theory.ErrInvalidArgument)
		}
		set(&m)
	}
	return m, nil
}

// Config is the engine's whole configuration, built once at startup and
// passed explicitly to whoever needs it.
type Config struct {
	Enabled  bool
	Modes    DisplayModes
	Key      string // short key name, see key.Named
	TieBreak degree.TieBreak
	Addr     string // serve listen address
}

const DefaultModes = "note_names,intervals,roman_numerals"

// Load reads configuration from the environment and validates it eagerly.
func Load() (Config, error) {
	cfg := Config{
		Enabled:  true,
		Key:      "C",
		TieBreak: degree.TieLower,
		Addr:     ":8080",
	}

	if v := os.Getenv("HARMONY_ANALYSIS"); v == "off" {
		cfg.Enabled = false
	}
	if v := os.Getenv("HARMONY_KEY"); v != "" {
		cfg.Key = v
	}
	if v := os.Getenv("HARMONY_TIEBREAK"); v != "" {
		tb, err := degree.ParseTieBreak(v)
		if err != nil {
			return cfg, fmt.Errorf("HARMONY_TIEBREAK: %w", err)
		}
		cfg.TieBreak = tb
	}
	if v := os.Getenv("HARMONY_ADDR"); v != "" {
		cfg.Addr = v
	}

	names := DefaultModes
	if v := os.Getenv("HARMONY_DISPLAY"); v != "" {
		names = v
	}
	modes, err := ParseModes(strings.Split(names, ","))
	if err != nil {
		return cfg, err
	}
	cfg.Modes = modes

	return cfg, nil
}

// MustLoad is Load for program startup, where a bad environment is fatal.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic("Could not load config: " + err.Error())
	}
	return cfg
}
