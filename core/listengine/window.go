// ABOUTME: Visible-window utilities for the "load more" pagination model
// ABOUTME: There is no page addressing, only a growing prefix of the matched list

package listengine

import "newsboard-api/core/domain"

// growWindow returns the next window size: one increment more, clamped to the ceiling
func growWindow(current, pageSize, ceiling int) int {
	next := current + pageSize
	if next > ceiling {
		next = ceiling
	}
	// A window already past the ceiling never shrinks here
	if next < current {
		return current
	}
	return next
}

// visiblePrefix returns the first n items, or all of them when fewer exist
func visiblePrefix(items []domain.NewsItem, n int) []domain.NewsItem {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
