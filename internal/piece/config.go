package piece

import (
	"errors"
	"fmt"

	"honnef.co/go/inkfield"
)

// Config holds the tunables of the piece. Lengths are in millimetres.
type Config struct {
	Width     float64
	Height    float64
	Padding   float64
	Precision float64

	// NoiseScale is the base frequency of the density noise, in cycles per
	// millimetre. Each seed varies it by up to ±30%.
	NoiseScale float64
	Octaves    int

	Routes       int
	MaxFailures  int
	Trials       int
	Step         float64
	MaxTurn      float64
	Straightness float64
	MaxLength    int
	MinSteps     int
	Decay        float64
	Epsilon      float64

	// Gap is the distance kept between strokes and packed circles.
	Gap       float64
	Circles   int
	MinRadius float64
	MaxRadius float64
}

// DefaultConfig returns the settings for an A4 portrait sheet.
func DefaultConfig() Config {
	return Config{
		Width:        210,
		Height:       297,
		Padding:      15,
		Precision:    1,
		NoiseScale:   0.012,
		Octaves:      3,
		Routes:       2000,
		MaxFailures:  10,
		Trials:       200,
		Step:         1,
		MaxTurn:      0.6,
		Straightness: 0.3,
		MaxLength:    400,
		MinSteps:     8,
		Decay:        1.2,
		Epsilon:      0.1,
		Gap:          2.5,
		Circles:      150,
		MinRadius:    1.5,
		MaxRadius:    18,
	}
}

var errInvalidConfig = errors.New("invalid piece config")

// Validate reports the first setting that cannot produce a drawing.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %gx%g is empty", errInvalidConfig, c.Width, c.Height)
	case c.Padding < 0 || 2*c.Padding >= inkfield.Sz(c.Width, c.Height).MinSide():
		return fmt.Errorf("%w: padding %g leaves no room to draw", errInvalidConfig, c.Padding)
	case c.Precision <= 0:
		return fmt.Errorf("%w: precision must be positive, got %g", errInvalidConfig, c.Precision)
	case c.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %g", errInvalidConfig, c.Step)
	case c.Straightness < 0 || c.Straightness > 1:
		return fmt.Errorf("%w: straightness %g outside [0, 1]", errInvalidConfig, c.Straightness)
	case c.Octaves < 1:
		return fmt.Errorf("%w: need at least one noise octave", errInvalidConfig)
	case c.MinRadius <= 0 || c.MaxRadius < c.MinRadius:
		return fmt.Errorf("%w: radius range [%g, %g]", errInvalidConfig, c.MinRadius, c.MaxRadius)
	}
	return nil
}
