package todo

import (
	"sort"
	"strings"

	"vif/internal/model"
)

// FilterByDate returns the items whose calendar day equals date, preserving
// list order.
func FilterByDate(items []model.TodoItem, date model.Date) []model.TodoItem {
	filtered := make([]model.TodoItem, 0, len(items))
	for _, item := range items {
		if item.Date.Equal(date) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortItems returns a sorted copy of items. The list itself keeps insertion
// order; "oldest" is that order and "newest" its reverse.
func SortItems(items []model.TodoItem, sortBy model.SortOption) []model.TodoItem {
	sorted := make([]model.TodoItem, len(items))
	copy(sorted, items)

	switch sortBy {
	case model.SortNewest:
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	case model.SortOldest:
		// insertion order
	case model.SortAlphabetical:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Text) < strings.ToLower(sorted[j].Text)
		})
	case model.SortCompleted:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Completed && !sorted[j].Completed
		})
	}

	return sorted
}

// Progress returns the completed percentage of items, rounded to the nearest
// whole percent. An empty list is 0.
func Progress(items []model.TodoItem) int {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return int(float64(completed)/float64(len(items))*100 + 0.5)
}
