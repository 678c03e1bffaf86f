package editor

// Clipboard receives the text on copy.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	WriteText(s string) error
}
