package tui

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Prefs holds persisted terminal UI preferences. Absent entirely if
// no preferences file exists -- nothing here affects program
// semantics, only how the UI starts up.
type Prefs struct {
	ClockHz int `toml:"clock_hz"`
}

// LoadPrefs reads preferences from path. A missing file is not an
// error; it just means defaults are used.
func LoadPrefs(path string) (*Prefs, error) {
	var p Prefs
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &p, nil
	}

	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Apply applies loaded preferences to a freshly created controller.
func (p *Prefs) Apply(c *Controller) {
	if p.ClockHz >= ClockHzMin && p.ClockHz <= ClockHzMax {
		c.hz = p.ClockHz
	}
}
