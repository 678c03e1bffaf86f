package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ClusterWidth returns the terminal cell width of a single grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += ClusterWidth(c)
	}
	return w
}

// Chunks breaks text into pieces no wider than width cells without splitting
// a grapheme cluster. A cluster wider than width gets a chunk of its own.
func Chunks(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 {
		return []string{text}
	}

	var (
		out  []string
		sb   strings.Builder
		used int
	)
	for _, c := range Split(text) {
		w := ClusterWidth(c)
		if used > 0 && used+w > width {
			out = append(out, sb.String())
			sb.Reset()
			used = 0
		}
		sb.WriteString(c)
		used += w
	}
	if sb.Len() > 0 {
		out = append(out, sb.String())
	}
	return out
}

// Truncate cuts text to at most width cells, ending with tail when it had
// to cut. tail counts toward width.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	limit := width - Width(tail)
	if limit <= 0 {
		return Chunks(tail, width)[0]
	}

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := ClusterWidth(c)
		if used+w > limit {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String() + tail
}
