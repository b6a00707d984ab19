package darwin

// Coordinate is an (x, y) position on the grid.
type Coordinate struct {
	X, Y uint32
}

// index returns the row-major offset of c in a grid of the given width.
func (c Coordinate) index(width uint32) int {
	return int(c.Y)*int(width) + int(c.X)
}
