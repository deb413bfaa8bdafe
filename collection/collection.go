/*
Package collection normalizes the small ordered lists the admin screens edit.

PURPOSE:
  Banner lists, city tags and target-ID lists all need the same three
  cleanups before save: case-insensitive de-duplication that keeps the first
  spelling, contiguous re-indexing of a position field after reordering, and
  keyed de-duplication where the latest edit wins but the original slot is
  kept.

USAGE:
  cities := collection.DedupeCaseInsensitive([]string{"Delhi", "delhi"})
  banners = collection.NormalizePositions(banners)

SEE ALSO:
  - offer: uses DedupeCaseInsensitive for city lists
*/
package collection

import "strings"

// DedupeCaseInsensitive returns one entry per distinct lowercase form,
// keeping the casing and order of the first occurrence.
func DedupeCaseInsensitive(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Positioned is anything carrying a 0-based position field.
type Positioned[T any] interface {
	Position() int
	WithPosition(pos int) T
}

// NormalizePositions returns a new slice with each element's position set to
// its index. Input order is preserved; nothing is sorted.
func NormalizePositions[T Positioned[T]](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.WithPosition(i)
	}
	return out
}

// DedupeByKey collapses items sharing a key. The last value for a key wins,
// but it is emitted at the position where the key first appeared.
func DedupeByKey[T any](items []T, key func(T) string) []T {
	slot := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if i, seen := slot[k]; seen {
			out[i] = item
			continue
		}
		slot[k] = len(out)
		out = append(out, item)
	}
	return out
}
