// Package sortutil provides common orderings used across the toolkit.
package sortutil

import (
	"sort"

	"github.com/tsawler/textkit/pathutil"
)

// Entry is a key/count pair produced by MapByValue.
type Entry struct {
	Key   string
	Value int
}

// BySize returns the given paths reordered by their computed size, ascending
// by default and descending when reverse is true. Sizes are computed with
// pathutil.Size; a path that cannot be sized fails the whole call. Paths of
// equal size keep their original relative order.
func BySize(paths []string, reverse bool) ([]string, error) {
	type sized struct {
		path string
		size int64
	}
	entries := make([]sized, 0, len(paths))
	for _, p := range paths {
		n, err := pathutil.Size(p, nil)
		if err != nil {
			return nil, err
		}
		entries = append(entries, sized{path: p, size: n})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if reverse {
			return entries[i].size > entries[j].size
		}
		return entries[i].size < entries[j].size
	})

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.path)
	}
	return out, nil
}

// MapByValue returns the entries of m sorted by value, with ties broken by
// key, ascending by default and fully reversed when reverse is true. The
// ordering is a deterministic total order.
func MapByValue(m map[string]int, reverse bool) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: k, Value: v})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		less := a.Value < b.Value || (a.Value == b.Value && a.Key < b.Key)
		if reverse {
			return !less
		}
		return less
	})
	return entries
}
