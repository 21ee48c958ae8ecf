package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/infinityCounter2/basis-stream/internal/logic"
	"github.com/infinityCounter2/basis-stream/internal/models"
)

type cursor struct {
	ts float64
	// sent is false until a point of the contract has been delivered;
	// until then the cursor bound is inclusive.
	sent bool
}

// Subscriber tracks, per contract, the timestamp of the last point
// delivered to one connection. It is owned by that connection's
// goroutine and is not safe for concurrent use.
type Subscriber struct {
	ID string

	store   *logic.SeriesStore
	since   float64
	cursors map[string]cursor
}

// NewSubscriber creates a subscriber whose cursors all start at since,
// normally local midnight of the current day.
func NewSubscriber(store *logic.SeriesStore, since time.Time) *Subscriber {
	return &Subscriber{
		ID:      uuid.NewString(),
		store:   store,
		since:   models.UnixSeconds(since),
		cursors: make(map[string]cursor),
	}
}

// Backlog returns every point recorded since the subscriber's start,
// for every contract. It is meant to be called once, right after the
// connection is accepted; it is equivalent to the first Next call.
func (s *Subscriber) Backlog() models.Update {
	return s.Next()
}

// Next returns the points appended since the previous call and advances
// the cursors past them. It returns nil when there is nothing new.
func (s *Subscriber) Next() models.Update {
	var upd models.Update
	for _, contract := range s.store.Contracts() {
		cur, ok := s.cursors[contract]
		if !ok {
			cur = cursor{ts: s.since}
		}

		points := s.store.PointsSince(contract, cur.ts, !cur.sent)
		if len(points) == 0 {
			s.cursors[contract] = cur
			continue
		}

		if upd == nil {
			upd = make(models.Update)
		}
		upd[contract] = points
		s.cursors[contract] = cursor{ts: points[len(points)-1].Timestamp, sent: true}
	}
	return upd
}

// Cursor returns the timestamp of the last point delivered for contract.
func (s *Subscriber) Cursor(contract string) (float64, bool) {
	cur, ok := s.cursors[contract]
	if !ok || !cur.sent {
		return s.since, false
	}
	return cur.ts, true
}

// countPoints is the number of points in an update.
func countPoints(upd models.Update) int {
	n := 0
	for _, points := range upd {
		n += len(points)
	}
	return n
}
