// Package config provides YAML-based configuration loading for the hexstar
// game: grid dimensions, hex geometry, pointer tuning, and obstacle presets.
package config

// HexstarConfig contains all configuration for the hexstar game.
type HexstarConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Geometry GeometryConfig `yaml:"geometry"`
	Pointer  PointerConfig  `yaml:"pointer"`
	Scatter  ScatterConfig  `yaml:"scatter"`
}

// GridConfig defines the cell counts of the playfield.
// Odd rows hold one cell less than Width.
type GridConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// GeometryConfig defines the pixel-space hex layout.
type GeometryConfig struct {
	CellHeight float64 `yaml:"cell_height"` // full hexagon height in virtual pixels
	Margin     float64 `yaml:"margin"`      // grid offset from the playfield origin
}

// PointerConfig tunes the pixel-to-cell resolver.
type PointerConfig struct {
	// BoundaryShift corrects assignment of pixels near the diagonal edges
	// between hex rows. The playable default is 0.09.
	BoundaryShift float64 `yaml:"boundary_shift"`
}

// ScatterConfig controls the obstacle scatter of the hexstar_scatter variant.
type ScatterConfig struct {
	// Density is the fraction of cells blocked at reset, in [0, 0.6].
	Density float64 `yaml:"density"`
}

// ObstaclePreset represents a named obstacle density.
type ObstaclePreset string

const (
	ObstaclesSparse ObstaclePreset = "sparse"
	ObstaclesNormal ObstaclePreset = "normal"
	ObstaclesDense  ObstaclePreset = "dense"
)

// DensityForPreset returns the scatter density for an obstacle preset.
func DensityForPreset(preset ObstaclePreset) float64 {
	switch preset {
	case ObstaclesSparse:
		return 0.08
	case ObstaclesNormal:
		return 0.16
	case ObstaclesDense:
		return 0.28
	default:
		return 0.16
	}
}

// ApplyObstaclePreset overrides the configured scatter density with a preset.
func ApplyObstaclePreset(cfg *HexstarConfig, preset ObstaclePreset) {
	cfg.Scatter.Density = DensityForPreset(preset)
}

// Normalize clamps values a hand-edited config could push out of the ranges
// the game supports. Grid dimensions are validated later by grid
// construction, not here.
func (c *HexstarConfig) Normalize() {
	if c.Geometry.CellHeight <= 0 {
		c.Geometry.CellHeight = DefaultHexstarConfig().Geometry.CellHeight
	}
	if c.Geometry.Margin < 0 {
		c.Geometry.Margin = 0
	}
	if c.Pointer.BoundaryShift < 0 {
		c.Pointer.BoundaryShift = 0
	}
	if c.Scatter.Density < 0 {
		c.Scatter.Density = 0
	}
	if c.Scatter.Density > 0.6 {
		c.Scatter.Density = 0.6
	}
}
