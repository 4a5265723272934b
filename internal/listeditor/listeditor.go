// Package listeditor holds the plain list and counter transitions behind
// the item and counter demos. Every function returns a new value and leaves
// its input untouched.
package listeditor

import "strings"

// AddItem appends the trimmed value. A value that is empty after trimming
// leaves items unchanged.
func AddItem(items []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return items
	}
	out := make([]string, len(items), len(items)+1)
	copy(out, items)
	return append(out, value)
}

// RemoveItem drops the element at index. An out of range index leaves items
// unchanged.
func RemoveItem(items []string, index int) []string {
	if index < 0 || index >= len(items) {
		return items
	}
	out := make([]string, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...)
}
