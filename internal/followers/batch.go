package followers

import "errors"

// ErrInvalidWidth means a non-positive batch width was requested,
// which is a caller configuration bug.
var ErrInvalidWidth = errors.New("batch width must be positive")

// Batch partitions items into consecutive, non-overlapping groups of
// width elements each; the final group holds the remainder. Elements
// are never dropped, duplicated, or reordered, so concatenating the
// groups reproduces items exactly. An empty input yields no groups.
func Batch[T any](items []T, width int) ([][]T, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}
	if len(items) == 0 {
		return nil, nil
	}

	groups := make([][]T, 0, (len(items)+width-1)/width)
	for start := 0; start < len(items); start += width {
		end := start + width
		if end > len(items) {
			end = len(items)
		}
		groups = append(groups, items[start:end:end])
	}

	return groups, nil
}
