package core

// Point is a cell on the play grid, row first as the grid is drawn
type Point struct {
	Row, Col int
}

// Move returns the point shifted one cell along d
// DirNone leaves the point where it is
func (p Point) Move(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}
