package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/iw2rmb/varpad/token"
)

var (
	tokenColor = color.New(color.FgCyan, color.Bold)
	nameColor  = color.New(color.Bold)
	usedColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
)

// highlight colors every token in text.
func highlight(text string) string {
	spans := token.Find(text)
	if len(spans) == 0 {
		return text
	}
	var sb strings.Builder
	prev := 0
	for _, sp := range spans {
		sb.WriteString(text[prev:sp.Start])
		sb.WriteString(tokenColor.Sprint(text[sp.Start:sp.End]))
		prev = sp.End
	}
	sb.WriteString(text[prev:])
	return sb.String()
}

func printText(w io.Writer, text string) {
	fmt.Fprintln(w, highlight(text))
}

func warn(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, warnColor.Sprintf(format, args...))
}
