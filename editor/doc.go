// Package editor provides a Bubble Tea component for placing variable tokens
// into text, backed by the session package.
//
// While editing, the text is a plain textarea. Pressing the mouse on a
// variable card starts a drag gesture: the textarea is swapped for a slot
// view in which every word boundary is a drop target, and releasing over a
// slot inserts the variable's token there. The component also handles
// keyboard placement, the reset button, and clipboard copy.
package editor
