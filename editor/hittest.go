package editor

import "github.com/iw2rmb/varpad/catalog"

// slotAtPoint maps a component-relative cell to a drop slot. Only cells on
// a laid-out row of the placing view resolve.
func (f frame) slotAtPoint(x, y int) (int, bool) {
	row := y - f.boxY
	if row < 0 || row >= len(f.slots) {
		return 0, false
	}
	return slotAt(f.slots[row], x-f.boxX)
}

func (f frame) cardAtPoint(x, y int) (catalog.Variable, bool) {
	for _, c := range f.cards {
		if y == c.y && x >= 0 && x < c.width {
			return c.v, true
		}
	}
	return catalog.Variable{}, false
}

func (f frame) resetAtPoint(x, y int) bool {
	return y == f.resetY && x >= 0 && x < f.resetWidth
}
