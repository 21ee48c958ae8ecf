package logic

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/infinityCounter2/basis-stream/internal/models"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mtx sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.now = t
}

type recordingSink struct {
	contracts []string
	points    []models.BasisPoint
}

func (s *recordingSink) Publish(contract string, pt models.BasisPoint) {
	s.contracts = append(s.contracts, contract)
	s.points = append(s.points, pt)
}

func newTestEngine(t *testing.T, at time.Time) (*Engine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: at}
	e := NewEngine(EngineParams{
		Registry: newTestRegistry(t),
		Now:      clock.Now,
	})
	return e, clock
}

func quoteTick(code string, price, hhmmss float64) models.Tick {
	return models.Tick{
		Code:   code,
		Fields: []string{"RT_LATEST", "RT_TIME"},
		Data:   []float64{price, hhmmss},
	}
}

var sessionOpen = time.Date(2025, 6, 10, 9, 30, 6, 0, time.Local)

func TestEngine_BasisScenario(t *testing.T) {
	e, _ := newTestEngine(t, sessionOpen)

	n, err := e.Ingest(quoteTick("IC00.CFE", 5720.4, 93005))
	require.NoError(t, err)
	require.Equal(t, 0, n, "No basis with only the future side")

	n, err = e.Ingest(quoteTick("000905.SH", 5715.0, 93006))
	require.NoError(t, err)
	require.Equal(t, 1, n, "Only IC00 has both sides")

	st, ok := e.State("IC00.CFE")
	require.True(t, ok)
	require.Equal(t, "5720.4", st.FuturePrice.Decimal.String())
	require.Equal(t, "5715", st.SpotPrice.Decimal.String())

	points := e.Store().PointsSince("IC00.CFE", 0, false)
	require.Len(t, points, 1)
	require.Equal(t, models.BasisPoint{
		Time:      "09:30:05",
		Basis:     5.4,
		Timestamp: models.UnixSeconds(sessionOpen),
	}, points[0])

	require.Equal(t, 0, e.Store().Len("IC01.CFE"), "Siblings without a future price record nothing")
}

func TestEngine_EmitsOnlyOnceBothSidesSeen(t *testing.T) {
	e, _ := newTestEngine(t, sessionOpen)

	ticks := []struct {
		tick     models.Tick
		expected int
	}{
		{tick: quoteTick("000905.SH", 5715.0, 93000), expected: 0},
		{tick: quoteTick("000905.SH", 5716.0, 93001), expected: 0},
		{tick: quoteTick("IC01.CFE", 5700.0, 93002), expected: 1},
		{tick: quoteTick("000905.SH", 5717.0, 93003), expected: 1},
		{tick: quoteTick("IC01.CFE", 5701.5, 93004), expected: 1},
		{tick: quoteTick("IC00.CFE", 5730.0, 93005), expected: 1},
		{tick: quoteTick("000905.SH", 5718.0, 93006), expected: 2},
	}

	for i, tc := range ticks {
		n, err := e.Ingest(tc.tick)
		require.NoError(t, err)
		require.Equalf(t, tc.expected, n, "tick %d (%s)", i, tc.tick.Code)
	}

	var bases []float64
	for _, pt := range e.Store().PointsSince("IC01.CFE", 0, false) {
		bases = append(bases, pt.Basis)
	}
	require.Equal(t, []float64{-16, -17, -15.5, -16.5}, bases,
		"Each point uses the latest value of both sides")
}

func TestEngine_TimeFallbacks(t *testing.T) {
	e, _ := newTestEngine(t, sessionOpen)

	// Neither side reports a time: wall clock is used.
	_, err := e.Ingest(models.Tick{Code: "IF00.CFE", Fields: []string{"RT_LATEST"}, Data: []float64{3900}})
	require.NoError(t, err)
	_, err = e.Ingest(models.Tick{Code: "000300.SH", Fields: []string{"RT_LATEST"}, Data: []float64{3890}})
	require.NoError(t, err)
	last, _ := e.Store().Last("IF00.CFE")
	require.Equal(t, "09:30:06", last.Time)

	// Spot time is used when the future has none.
	_, err = e.Ingest(quoteTick("000300.SH", 3891, 93010))
	require.NoError(t, err)
	last, _ = e.Store().Last("IF00.CFE")
	require.Equal(t, "09:30:10", last.Time)
	require.Equal(t, 9.0, last.Basis)
}

func TestEngine_UnknownAndMalformed(t *testing.T) {
	e, _ := newTestEngine(t, sessionOpen)

	_, err := e.Ingest(quoteTick("600000.SH", 10, 93000))
	require.True(t, errors.Is(err, ErrUnknownCode))

	_, err = e.Ingest(models.Tick{Code: "IC00.CFE", Fields: []string{"RT_LATEST"}, Data: nil})
	require.True(t, errors.Is(err, ErrMalformedTick))

	_, err = e.Ingest(models.Tick{Code: "IC00.CFE", Fields: []string{"RT_LATEST"}, Data: []float64{math.NaN()}})
	require.True(t, errors.Is(err, ErrMalformedTick))

	st, _ := e.State("IC00.CFE")
	require.Equal(t, PhaseNeither, st.Phase())

	// The engine keeps processing after failures.
	require.NotPanics(t, func() {
		e.OnTick(models.Tick{Code: "IC00.CFE", Fields: []string{"RT_LATEST", "RT_TIME"}, Data: []float64{1}})
		e.OnTick(quoteTick("600000.SH", 10, 93000))
	})
	e.OnTick(quoteTick("IC00.CFE", 5720.4, 93005))
	e.OnTick(quoteTick("000905.SH", 5715.0, 93006))
	require.Equal(t, 1, e.Store().Len("IC00.CFE"))
}

func TestEngine_StaleTickUpdatesCacheOnly(t *testing.T) {
	afternoon := time.Date(2025, 6, 10, 14, 0, 0, 0, time.Local)
	e, _ := newTestEngine(t, afternoon)

	_, err := e.Ingest(quoteTick("IC00.CFE", 5720.4, 140000))
	require.NoError(t, err)

	late := quoteTick("000905.SH", 5715.0, 1)
	late.ReceivedAt = time.Date(2025, 6, 11, 0, 0, 1, 0, time.Local)
	n, err := e.Ingest(late)
	require.NoError(t, err, "Stale ticks are not errors")
	require.Equal(t, 0, n, "A tick past midnight must not be recorded")

	early := quoteTick("000905.SH", 5714.0, 235959)
	early.ReceivedAt = time.Date(2025, 6, 9, 23, 59, 59, 0, time.Local)
	n, err = e.Ingest(early)
	require.NoError(t, err)
	require.Equal(t, 0, n, "A tick from yesterday must not be recorded")

	st, _ := e.State("IC00.CFE")
	require.Equal(t, "5714", st.SpotPrice.Decimal.String(), "Stale ticks still update the cache")
	require.Equal(t, 0, e.Store().Len("IC00.CFE"))
	require.Equal(t, "2025-06-10", e.Store().Day())
}

func TestEngine_RolloverStartsNewSeries(t *testing.T) {
	e, clock := newTestEngine(t, sessionOpen)

	_, err := e.Ingest(quoteTick("IC00.CFE", 5720.4, 93005))
	require.NoError(t, err)
	_, err = e.Ingest(quoteTick("000905.SH", 5715.0, 93006))
	require.NoError(t, err)
	require.Equal(t, 1, e.Store().Len("IC00.CFE"))

	clock.Set(sessionOpen.AddDate(0, 0, 1))
	n, err := e.Ingest(quoteTick("IC00.CFE", 5721.4, 93005))
	require.NoError(t, err)
	require.Equal(t, 1, n, "Cached sides carry over the day boundary")
	require.Equal(t, "2025-06-11", e.Store().Day())
	require.Equal(t, 1, e.Store().Len("IC00.CFE"), "Yesterday's points are gone from the live series")

	last, _ := e.Store().Last("IC00.CFE")
	require.Equal(t, 6.4, last.Basis)
}

func TestEngine_SameClockTickStaysOrdered(t *testing.T) {
	e, _ := newTestEngine(t, sessionOpen)

	_, err := e.Ingest(quoteTick("000905.SH", 5715.0, 93006))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = e.Ingest(quoteTick("IC00.CFE", 5720+float64(i), 93006))
		require.NoError(t, err)
	}

	points := e.Store().PointsSince("IC00.CFE", 0, false)
	require.Len(t, points, 3)
	for i := 1; i < len(points); i++ {
		require.Greater(t, points[i].Timestamp, points[i-1].Timestamp)
	}
}

func TestEngine_PublishesToSink(t *testing.T) {
	sink := &recordingSink{}
	clock := &fakeClock{now: sessionOpen}
	e := NewEngine(EngineParams{
		Registry: newTestRegistry(t),
		Sink:     sink,
		Now:      clock.Now,
	})

	_, err := e.Ingest(quoteTick("IM00.CFE", 6100.2, 93005))
	require.NoError(t, err)
	_, err = e.Ingest(quoteTick("IM01.CFE", 6080.2, 93005))
	require.NoError(t, err)
	_, err = e.Ingest(quoteTick("000852.SH", 6110.0, 93006))
	require.NoError(t, err)

	require.Equal(t, []string{"IM00.CFE", "IM01.CFE"}, sink.contracts)
	require.Equal(t, -9.8, sink.points[0].Basis)
	require.Equal(t, -29.8, sink.points[1].Basis)
}

func TestEngine_Load(t *testing.T) {
	e, _ := newTestEngine(t, sessionOpen)

	e.Load("2025-06-10", models.Snapshot{
		"IC": {"IC00.CFE": {{Time: "09:30:00", Basis: 4.2, Timestamp: models.UnixSeconds(sessionOpen) - 6}}},
	})
	require.Equal(t, 1, e.Store().Len("IC00.CFE"))

	_, err := e.Ingest(quoteTick("IC00.CFE", 5720.4, 93005))
	require.NoError(t, err)
	_, err = e.Ingest(quoteTick("000905.SH", 5715.0, 93006))
	require.NoError(t, err)
	require.Equal(t, 2, e.Store().Len("IC00.CFE"), "New points append to the loaded series")
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2025, 6, 10, 14, 3, 2, 1, time.Local))
	require.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), got)
	require.Equal(t, "2025-06-10", DayKey(got))
}

func TestEngine_TimestampFromEngineClock(t *testing.T) {
	midday := time.Date(2025, 6, 10, 11, 30, 6, 0, time.Local)
	e, _ := newTestEngine(t, midday)

	_, err := e.Ingest(quoteTick("000905.SH", 5715.0, 113005))
	require.NoError(t, err)

	ahead := quoteTick("IC00.CFE", 5720.4, 113005)
	ahead.ReceivedAt = time.Date(2025, 6, 10, 23, 0, 0, 0, time.Local)
	n, err := e.Ingest(ahead)
	require.NoError(t, err)
	require.Equal(t, 1, n, "A same day tick is recorded")

	_, err = e.Ingest(quoteTick("IC00.CFE", 5721.4, 113006))
	require.NoError(t, err)

	points := e.Store().PointsSince("IC00.CFE", 0, false)
	require.Len(t, points, 2)
	require.Equal(t, models.UnixSeconds(midday), points[0].Timestamp, "The client clock must not stamp the point")
	require.Greater(t, points[1].Timestamp, points[0].Timestamp)
	require.Less(t, points[1].Timestamp, models.UnixSeconds(midday.Add(time.Second)))
}

func TestEngine_SnapshotRollsOverWithoutTicks(t *testing.T) {
	friday := time.Date(2025, 6, 13, 14, 0, 0, 0, time.Local)
	e, clock := newTestEngine(t, friday)

	_, err := e.Ingest(quoteTick("IC00.CFE", 5720.4, 140000))
	require.NoError(t, err)
	_, err = e.Ingest(quoteTick("000905.SH", 5715.0, 140000))
	require.NoError(t, err)
	require.Equal(t, 1, e.Snapshot().Count())

	clock.Set(time.Date(2025, 6, 14, 9, 31, 0, 0, time.Local))
	require.Equal(t, 0, e.Snapshot().Count(), "A new day starts empty even before its first tick")
	require.Equal(t, "2025-06-14", e.Store().Day())
}

func TestEngine_LoadDropsOtherDays(t *testing.T) {
	e, _ := newTestEngine(t, sessionOpen)

	yesterday := time.Date(2025, 6, 9, 14, 0, 0, 0, time.Local)
	e.Load("2025-06-10", models.Snapshot{
		"IC": {"IC00.CFE": {
			{Time: "14:00:00", Basis: 9.9, Timestamp: models.UnixSeconds(yesterday)},
			{Time: "09:30:00", Basis: 4.2, Timestamp: models.UnixSeconds(sessionOpen) - 6},
		}},
	})

	points := e.Store().PointsSince("IC00.CFE", 0, false)
	require.Len(t, points, 1, "Points from another day are not loaded")
	require.Equal(t, 4.2, points[0].Basis)
}
