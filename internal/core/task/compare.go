package task

import (
	"cmp"
	"strings"
)

// Comparators for use with the store's Sorted. Each returns a negative,
// zero, or positive value in the usual cmp convention.

// ByPriorityDesc orders highest priority first.
func ByPriorityDesc(a, b Task) int {
	return cmp.Compare(b.Meta.Priority, a.Meta.Priority)
}

// ByCreatedDesc orders newest first.
func ByCreatedDesc(a, b Task) int {
	return b.Meta.CreatedAt.Compare(a.Meta.CreatedAt)
}

// ByTitle orders by title, lexicographically ascending.
func ByTitle(a, b Task) int {
	return strings.Compare(a.Title, b.Title)
}
