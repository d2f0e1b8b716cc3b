package reservation

import (
	"slices"
)

// Compare orders reservations by priority: loyal customers first, then
// booking order. Equal createdAt keeps queue order when used with a stable sort.
func Compare(a, b Reservation) int {
	if a.isLoyal != b.isLoyal {
		if a.isLoyal {
			return -1
		}
		return 1
	}
	return a.createdAt.Compare(b.createdAt)
}

// SortByPriority returns a sorted copy and leaves queue untouched.
func SortByPriority(queue []Reservation) []Reservation {
	sorted := slices.Clone(queue)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}

// SelectWinner picks the reservation that auto-starts the device at t.
// ok is false when nothing in queue matches t.
func SelectWinner(queue []Reservation, t TimeOfDay) (winner Reservation, ok bool) {
	var matches []Reservation
	for _, r := range queue {
		if r.MatchesAt(t) {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		return Reservation{}, false
	}
	return SortByPriority(matches)[0], true
}
