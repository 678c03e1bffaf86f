package editor

import (
	"strings"

	"github.com/iw2rmb/varpad/internal/grapheme"
)

const (
	slotMark       = " · "
	slotMarkActive = " │ "
	slotWidth      = 3
)

// slotSeg is one run of cells in the placing view: either a drop slot or
// (part of) a word.
type slotSeg struct {
	text  string
	slot  int // -1 for word text
	x     int
	width int
}

type slotLine []slotSeg

// layoutSlots lays words out as
//
//	slot0 word0 slot1 word1 ... slotN
//
// wrapping at width cells. A slot never starts a line unless the line would
// otherwise overflow, and words wider than width are split on grapheme
// boundaries.
func layoutSlots(words []string, width int) []slotLine {
	if width < slotWidth {
		width = slotWidth
	}

	var (
		lines []slotLine
		cur   slotLine
		x     int
	)
	emit := func(text string, slot, w int) {
		if x > 0 && x+w > width {
			lines = append(lines, cur)
			cur, x = nil, 0
		}
		cur = append(cur, slotSeg{text: text, slot: slot, x: x, width: w})
		x += w
	}

	emit(slotMark, 0, slotWidth)
	for i, word := range words {
		word = displayWord(word)
		if w := grapheme.Width(word); w > 0 {
			if w <= width {
				emit(word, -1, w)
			} else {
				for _, chunk := range grapheme.Chunks(word, width) {
					emit(chunk, -1, grapheme.Width(chunk))
				}
			}
		}
		emit(slotMark, i+1, slotWidth)
	}
	return append(lines, cur)
}

// displayWord makes a word safe to draw on a single terminal row.
func displayWord(s string) string {
	if !strings.ContainsAny(s, "\n\r\t") {
		return s
	}
	return strings.NewReplacer("\r\n", "↵", "\n", "↵", "\r", "↵", "\t", " ").Replace(s)
}

// slotAt returns the slot nearest to column x on line.
func slotAt(line slotLine, x int) (int, bool) {
	best, bestDist := 0, -1
	for _, seg := range line {
		if seg.slot < 0 {
			continue
		}
		d := 2*x - (2*seg.x + seg.width - 1)
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = seg.slot, d
		}
	}
	return best, bestDist >= 0
}
