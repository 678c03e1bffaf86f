// Package slots splits text into space-separated words and inserts new words
// at slot positions between them.
//
// For N words there are N+1 slots. Slot i is the point right after the i-th
// word; slot 0 is before the first word and slot N is the end of the text.
// Slots are always derived from the current text and never cached.
package slots

import "strings"

// Separator is the only word boundary. Tabs, newlines and other whitespace
// are part of words.
const Separator = " "

// Words splits text on Separator, keeping the empty words produced by
// leading, trailing or repeated separators. Empty text has no words.
func Words(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, Separator)
}

// Count returns the number of slots in text.
func Count(text string) int {
	return len(Words(text)) + 1
}

// Clamp clamps slot into [0, len(Words(text))].
func Clamp(text string, slot int) int {
	return clamp(slot, len(Words(text)))
}

func clamp(slot, n int) int {
	if slot < 0 {
		return 0
	}
	if slot > n {
		return n
	}
	return slot
}

// InsertAt inserts word at slot and rejoins the words with single
// separators. slot is clamped, so any value is accepted.
//
// When text ends with a separator, its last word is empty. Inserting at
// either end slot fills that empty word rather than adding a new one, so
// "sent from " at the end becomes "sent from {{X}}", not "sent from {{X}} ".
func InsertAt(text string, slot int, word string) string {
	words := Words(text)
	n := len(words)
	slot = clamp(slot, n)

	if n > 1 && words[n-1] == "" && slot >= n-1 {
		words[n-1] = word
		return strings.Join(words, Separator)
	}

	out := make([]string, 0, n+1)
	out = append(out, words[:slot]...)
	out = append(out, word)
	out = append(out, words[slot:]...)
	return strings.Join(out, Separator)
}
