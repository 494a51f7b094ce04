package layout

import (
	"math"

	"github.com/strandlab/braidviz/pkg/errors"
)

// Default spacing values, in user units (pixels in SVG output).
const (
	DefaultStrandSpacing = 40.0
	DefaultRowSpacing    = 60.0
)

// Config holds the layout parameters. It is passed explicitly into
// [Build]; there is no process-wide layout state.
type Config struct {
	// StrandSpacing is the horizontal distance between adjacent slots.
	StrandSpacing float64
	// RowSpacing is the vertical height of one band.
	RowSpacing float64
	// Compact packs crossings on disjoint slot pairs into shared bands.
	Compact bool
}

// DefaultConfig returns the standard extended-mode spacing.
func DefaultConfig() Config {
	return Config{
		StrandSpacing: DefaultStrandSpacing,
		RowSpacing:    DefaultRowSpacing,
	}
}

// Validate checks that the configuration is geometrically usable.
// Spacings must be positive finite numbers.
func (c Config) Validate() error {
	if !positiveFinite(c.StrandSpacing) {
		return errors.New(errors.ErrCodeInvalidConfig,
			"strand spacing must be a positive finite number, got %v", c.StrandSpacing)
	}
	if !positiveFinite(c.RowSpacing) {
		return errors.New(errors.ErrCodeInvalidConfig,
			"row spacing must be a positive finite number, got %v", c.RowSpacing)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}
