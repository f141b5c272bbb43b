package booking

import "time"

// Short is the read-only projection used for last/next enrichment of item
// views. It is recomputed from approved bookings on every query and never
// persists on its own.
type Short struct {
	ID       int64
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

// Projection holds the most recently started past booking and the nearest
// upcoming one for a single item. Either side may be nil.
type Projection struct {
	Last *Short
	Next *Short
}

// ProjectItem derives last/next for one item from its approved bookings.
// Last is the greatest start strictly before now, next the smallest start
// strictly after now. A booking starting exactly at now lands in neither.
func ProjectItem(bookings []Short, now time.Time) Projection {
	var p Projection
	for i := range bookings {
		b := &bookings[i]
		switch {
		case b.Start.Before(now):
			if p.Last == nil || b.Start.After(p.Last.Start) {
				p.Last = b
			}
		case b.Start.After(now):
			if p.Next == nil || b.Start.Before(p.Next.Start) {
				p.Next = b
			}
		}
	}
	return p
}

// ProjectItems derives last/next per item in a single linear scan of a
// start-descending stream of approved bookings across many items.
//
// The scan order makes the first booking seen with start < now the latest
// past one for its item, so last is first-wins and must not be overwritten.
// The descending order yields future starts largest-first, so next is kept
// by comparing and retaining the smaller start. Starts exactly at now fall
// on the next side here, matching the if/else split of the stream.
func ProjectItems(bookings []Short, now time.Time) map[int64]Projection {
	result := make(map[int64]Projection)
	for i := range bookings {
		b := &bookings[i]
		p := result[b.ItemID]
		if b.Start.Before(now) {
			if p.Last == nil {
				p.Last = b
			}
		} else {
			p.Next = closerNext(p.Next, b)
		}
		result[b.ItemID] = p
	}
	return result
}

func closerNext(next, candidate *Short) *Short {
	if next == nil {
		return candidate
	}
	if candidate == nil {
		return next
	}
	if candidate.Start.Before(next.Start) {
		return candidate
	}
	return next
}
