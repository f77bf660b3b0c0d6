package tilescan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutDerived(t *testing.T) {
	l := Layout{Dim: 3, TileSize: 8, NumTiles: 4}

	assert.Equal(t, 32, l.Points())
	assert.Equal(t, 96, l.SpaceFloats())
	assert.Equal(t, 24, l.TileFloats())
}

func TestLayoutOffsets(t *testing.T) {
	l := Layout{Dim: 2, TileSize: 4, NumTiles: 3}

	// Tile offsets must partition both bulk arrays without gaps or overlap.
	for tt := 0; tt < l.NumTiles; tt++ {
		assert.Equal(t, tt*8, l.SpaceOffset(tt))
		assert.Equal(t, tt*4, l.OutOffset(tt))
	}
	assert.Equal(t, l.SpaceFloats(), l.SpaceOffset(l.NumTiles-1)+l.TileFloats())
	assert.Equal(t, l.Points(), l.OutOffset(l.NumTiles-1)+l.TileSize)
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		field  string
	}{
		{"Zero dim", Layout{Dim: 0, TileSize: 4, NumTiles: 2}, "Dim"},
		{"Negative tile size", Layout{Dim: 2, TileSize: -1, NumTiles: 2}, "TileSize"},
		{"Zero tiles", Layout{Dim: 2, TileSize: 4, NumTiles: 0}, "NumTiles"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.layout.validate()
			var invalid *ErrInvalidLayout
			assert.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.field, invalid.Field)
		})
	}

	assert.NoError(t, Layout{Dim: 1, TileSize: 1, NumTiles: 1}.validate())
}
