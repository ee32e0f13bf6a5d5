package gesture

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Default tunables used by DefaultConfig.
const (
	DefaultPressDuration     = 500 * time.Millisecond
	DefaultDoubleTapInterval = 300 * time.Millisecond
	DefaultFlickDuration     = 150 * time.Millisecond
	DefaultMoveThreshold     = 5.0 // pixels
)

// Config holds the timing and distance thresholds used to tell gestures
// apart. A Config is copied into each Recognizer at construction; changing
// the source value afterwards has no effect.
type Config struct {
	// PressDuration is how long a stationary pointer must stay down before
	// a press fires.
	PressDuration time.Duration `yaml:"press_duration"`
	// DoubleTapInterval is the window after a tap during which a second tap
	// on the same node is promoted to a double-tap. The single tap is held
	// back for this long.
	DoubleTapInterval time.Duration `yaml:"double_tap_interval"`
	// FlickDuration is the maximum elapsed time, down to up, for a drag to
	// end with a flick.
	FlickDuration time.Duration `yaml:"flick_duration"`
	// MoveThreshold is the distance in pixels from the down position that
	// must be exceeded before the pointer counts as moving.
	MoveThreshold float64 `yaml:"move_threshold"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		PressDuration:     DefaultPressDuration,
		DoubleTapInterval: DefaultDoubleTapInterval,
		FlickDuration:     DefaultFlickDuration,
		MoveThreshold:     DefaultMoveThreshold,
	}
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	switch {
	case c.PressDuration <= 0:
		return fmt.Errorf("gesture: press_duration must be positive, got %v", c.PressDuration)
	case c.DoubleTapInterval <= 0:
		return fmt.Errorf("gesture: double_tap_interval must be positive, got %v", c.DoubleTapInterval)
	case c.FlickDuration <= 0:
		return fmt.Errorf("gesture: flick_duration must be positive, got %v", c.FlickDuration)
	case c.MoveThreshold < 0:
		return fmt.Errorf("gesture: move_threshold must not be negative, got %v", c.MoveThreshold)
	}
	return nil
}

// LoadConfig parses a YAML document over DefaultConfig. Durations use Go
// duration syntax ("250ms", "1s"); omitted keys keep their defaults.
//
//	press_duration: 400ms
//	double_tap_interval: 250ms
//	flick_duration: 120ms
//	move_threshold: 6
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse gesture config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
