package core

// Area represents a rectangular region of the grid
type Area struct {
	Row, Col      int // Top-left corner
	Height, Width int // Dimensions
}

// Interior returns the playable area of a height x width window, inside its one-cell border
func Interior(height, width int) Area {
	return Area{Row: 1, Col: 1, Height: height - 2, Width: width - 2}
}

// Contains reports whether p lies inside the area
func (a Area) Contains(p Point) bool {
	return p.Row >= a.Row && p.Row < a.Row+a.Height &&
		p.Col >= a.Col && p.Col < a.Col+a.Width
}
