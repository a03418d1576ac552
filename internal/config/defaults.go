package config

import (
	_ "embed"
)

//go:embed defaults/hexstar.yaml
var defaultHexstarYAML []byte

// DefaultHexstarConfig returns the built-in hexstar configuration: a grid
// sized for a standard 80x24 terminal.
func DefaultHexstarConfig() HexstarConfig {
	return HexstarConfig{
		Grid: GridConfig{
			Height: 6,
			Width:  10,
		},
		Geometry: GeometryConfig{
			CellHeight: 8,
			Margin:     2,
		},
		Pointer: PointerConfig{
			BoundaryShift: 0.09,
		},
		Scatter: ScatterConfig{
			Density: 0.16,
		},
	}
}
