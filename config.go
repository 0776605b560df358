package joystick

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the settings of a joystick widget, as read from a TOML file.
type Config struct {
	Orientation Orientation `toml:"orientation"`
	// MaxSize caps the diameter of the control. Zero means unbounded.
	MaxSize int `toml:"max_size"`
	// Width and Height are the window dimensions.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	OffsetX float64 `toml:"offset_x"`
	OffsetY float64 `toml:"offset_y"`

	// Background and Handle are paths or URLs of the bitmaps. An empty value
	// selects the built-in disc.
	Background string `toml:"background"`
	Handle     string `toml:"handle"`
}

// DefaultConfig returns the settings used when no configuration file is supplied.
func DefaultConfig() Config {
	return Config{
		Orientation: Both,
		Width:       300,
		Height:      300,
	}
}

// LoadConfig reads the configuration file at path. Missing keys keep their
// default values; unknown keys and unrecognized orientations are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %s", path)
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if !c.Orientation.Valid() {
		return errors.Wrapf(ErrUnknownOrientation, "no such orientation: %d", int(c.Orientation))
	}
	if c.MaxSize < 0 {
		return errors.Errorf("max_size must not be negative, got %d", c.MaxSize)
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("window size must not be negative, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// Apply configures the joystick with the orientation and touch offset of c.
func (c Config) Apply(j *Joystick) error {
	if err := j.SetOrientation(c.Orientation); err != nil {
		return err
	}
	j.SetTouchOffset(c.OffsetX, c.OffsetY)

	return nil
}

// WriteConfig writes c to path in TOML format.
func WriteConfig(path string, c Config) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return errors.Wrap(err, "could not encode config")
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "could not write config file %s", path)
	}
	return nil
}
