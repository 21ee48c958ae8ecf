package logic

import (
	"sort"
	"time"

	"github.com/infinityCounter2/basis-stream/internal/models"
)

// BarInterval is a bar size.
type BarInterval = time.Duration

const (
	BarInterval1m  BarInterval = time.Minute
	BarInterval5m  BarInterval = 5 * time.Minute
	BarInterval15m BarInterval = 15 * time.Minute
	BarInterval1h  BarInterval = time.Hour
)

type BarBuilderParams struct {
	Interval BarInterval
}

// BarBuilder folds basis points into OHLC bars of a fixed interval.
//
// Bars are built on demand from a copy of a series, so a builder is
// owned by a single request and needs no locking.
type BarBuilder struct {
	p BarBuilderParams

	current *models.BasisBar

	// closed contains the bars that have already elapsed,
	// keyed by the close timestamp of the bar.
	closed map[int64]models.BasisBar
}

func NewBarBuilder(p BarBuilderParams) *BarBuilder {
	return &BarBuilder{
		p:      p,
		closed: make(map[int64]models.BasisBar),
	}
}

// ProcessPoints updates the builder with the points given, creating
// bars as needed.
func (b *BarBuilder) ProcessPoints(points []models.BasisPoint) {
	for _, pt := range points {
		b.processPoint(pt)
	}
}

func (b *BarBuilder) processPoint(pt models.BasisPoint) {
	barTime := roundUpTime(models.FromUnixSeconds(pt.Timestamp), b.p.Interval)

	if b.current != nil && barTime == b.current.Timestamp {
		updateBar(b.current, pt)
	} else if b.current == nil || barTime > b.current.Timestamp {
		bar := initializeBar(barTime, pt)
		if b.current != nil {
			b.closed[b.current.Timestamp] = *b.current
		}
		b.current = bar
	} else {
		// Series are append ordered so this only happens for points
		// loaded from a snapshot written out of order.
		bar, exists := b.closed[barTime]
		if exists {
			updateBar(&bar, pt)
		} else {
			bar = *(initializeBar(barTime, pt))
		}
		b.closed[barTime] = bar
	}
}

// GetBars returns every bar including the one still open, oldest first.
func (b *BarBuilder) GetBars() models.BarList {
	if b.current == nil && len(b.closed) == 0 {
		return nil
	}

	bars := make([]models.BasisBar, 0, len(b.closed)+1)
	for _, bar := range b.closed {
		bars = append(bars, bar)
	}
	if b.current != nil {
		bars = append(bars, *b.current)
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Timestamp < bars[j].Timestamp
	})

	return models.BarList(bars)
}

func initializeBar(barTime int64, pt models.BasisPoint) *models.BasisBar {
	bar := &models.BasisBar{
		Timestamp: barTime,
	}
	updateBar(bar, pt)
	return bar
}

func updateBar(bar *models.BasisBar, pt models.BasisPoint) {
	if bar.Count == 0 {
		bar.High = pt.Basis
		bar.Low = pt.Basis
		bar.Open = pt.Basis
	} else if pt.Basis > bar.High {
		bar.High = pt.Basis
	} else if pt.Basis < bar.Low {
		bar.Low = pt.Basis
	}
	bar.Count++
	bar.Close = pt.Basis
}

// roundUpTime rounds the given time to the next multiple of the duration
// and returns it in unix milliseconds. Used as the close time of a bar.
func roundUpTime(t time.Time, d time.Duration) int64 {
	return t.Truncate(d).Add(d).UnixMilli()
}
