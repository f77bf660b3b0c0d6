package tilescan

// Layout fixes the geometry of a scan: the feature dimension, the number of
// points staged per tile, and the number of tiles. All three are immutable
// for the lifetime of a Scanner.
//
// The reference set size is NumTiles*TileSize by construction, so the set is
// always an exact multiple of the tile size and no partial tile exists.
type Layout struct {
	// Dim is the number of coordinates per point.
	Dim int

	// TileSize is the number of points staged per tile.
	TileSize int

	// NumTiles is the number of tiles per scan.
	NumTiles int
}

// Points returns the total number of reference points.
func (l Layout) Points() int {
	return l.NumTiles * l.TileSize
}

// SpaceFloats returns the length of the bulk reference array.
func (l Layout) SpaceFloats() int {
	return l.Points() * l.Dim
}

// TileFloats returns the length of one tile of reference points.
func (l Layout) TileFloats() int {
	return l.TileSize * l.Dim
}

// SpaceOffset returns the flat offset of tile t in the reference array.
func (l Layout) SpaceOffset(t int) int {
	return t * l.TileFloats()
}

// OutOffset returns the flat offset of tile t in the output array.
func (l Layout) OutOffset(t int) int {
	return t * l.TileSize
}

func (l Layout) validate() error {
	if l.Dim <= 0 {
		return &ErrInvalidLayout{Field: "Dim", Value: l.Dim}
	}
	if l.TileSize <= 0 {
		return &ErrInvalidLayout{Field: "TileSize", Value: l.TileSize}
	}
	if l.NumTiles <= 0 {
		return &ErrInvalidLayout{Field: "NumTiles", Value: l.NumTiles}
	}
	return nil
}
