package viewer

import "math"

// Project maps a world point onto a w x h grid. The visible world spans
// [-size, size] on both axes with +y pointing up. ok is false for points
// outside the grid.
func Project(x, y, size float64, w, h int) (col, row int, ok bool) {
	if w <= 0 || h <= 0 || size <= 0 {
		return 0, 0, false
	}
	fx := (x + size) / (2 * size)
	fy := (size - y) / (2 * size)
	col = int(math.Floor(fx * float64(w)))
	row = int(math.Floor(fy * float64(h)))
	if col == w && x == size {
		col = w - 1
	}
	if row == h && y == -size {
		row = h - 1
	}
	ok = col >= 0 && col < w && row >= 0 && row < h
	return col, row, ok
}
