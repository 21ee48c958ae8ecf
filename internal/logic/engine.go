package logic

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/infinityCounter2/basis-stream/internal/metrics"
	"github.com/infinityCounter2/basis-stream/internal/models"
	"github.com/infinityCounter2/basis-stream/internal/registry"
	"go.uber.org/zap"
)

// DayLayout is the calendar date format used for series days and
// snapshot directories.
const DayLayout = "2006-01-02"

var ErrUnknownCode = errors.New("unknown instrument code")

// PointSink receives every point after it has been appended. Publish is
// called with the engine lock held and must not block.
type PointSink interface {
	Publish(contract string, pt models.BasisPoint)
}

type EngineParams struct {
	Registry *registry.Registry
	Logger   *zap.Logger
	// Sink is optional.
	Sink PointSink
	// Now defaults to time.Now. Tests replace it to cross day boundaries.
	Now func() time.Time
}

// Engine turns ticks into basis points. It owns the contract cache and
// the series store; ingestion is serialized so the feed callback and
// the HTTP ingest endpoint can both deliver ticks.
type Engine struct {
	p EngineParams

	mtx   sync.Mutex
	cache *ContractCache
	store *SeriesStore
}

func NewEngine(p EngineParams) *Engine {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	p.Logger = p.Logger.Named("engine")

	return &Engine{
		p:     p,
		cache: NewContractCache(p.Registry),
		store: NewSeriesStore(SeriesStoreParams{
			Registry: p.Registry,
			Day:      DayKey(p.Now()),
		}),
	}
}

// Store exposes the series store to readers (server, persistence).
func (e *Engine) Store() *SeriesStore {
	return e.store
}

func (e *Engine) Registry() *registry.Registry {
	return e.p.Registry
}

// Now is the engine clock.
func (e *Engine) Now() time.Time {
	return e.p.Now()
}

// Load replaces the series with a persisted snapshot for day. Points
// whose timestamp falls on another date are dropped.
func (e *Engine) Load(day string, snap models.Snapshot) {
	kept, dropped := pointsOnDay(day, snap, e.p.Now().Location())

	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.store.Load(day, kept)
	e.p.Logger.Info("Loaded basis snapshot",
		zap.String("day", day),
		zap.Int("points", kept.Count()),
		zap.Int("dropped", dropped),
	)
}

// Snapshot returns a copy of the series for the current day, rolling
// the store over first when the clock has passed midnight since the
// last point. *Engine satisfies persistence.Source.
func (e *Engine) Snapshot() models.Snapshot {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.rollover(e.p.Now())
	return e.store.Snapshot()
}

func pointsOnDay(day string, snap models.Snapshot, loc *time.Location) (models.Snapshot, int) {
	out := make(models.Snapshot, len(snap))
	dropped := 0
	for family, contracts := range snap {
		kept := make(map[string]models.PointList, len(contracts))
		for contract, points := range contracts {
			list := make(models.PointList, 0, len(points))
			for _, pt := range points {
				if DayKey(models.FromUnixSeconds(pt.Timestamp).In(loc)) != day {
					dropped++
					continue
				}
				list = append(list, pt)
			}
			kept[contract] = list
		}
		out[family] = kept
	}
	return out, dropped
}

// State returns a copy of one contract's cached quotes.
func (e *Engine) State(contract string) (ContractState, bool) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.cache.State(contract)
}

// OnTick is the feed callback. Failures are logged and the tick is
// dropped; nothing a single tick does can stop ingestion.
func (e *Engine) OnTick(t models.Tick) {
	defer func() {
		if r := recover(); r != nil {
			metrics.TicksFailed.Inc()
			e.p.Logger.Error("Recovered while processing tick",
				zap.String("code", t.Code),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
	}()

	_, err := e.Ingest(t)
	switch {
	case err == nil:
	case errors.Is(err, ErrUnknownCode):
		e.p.Logger.Debug("Ignoring tick", zap.String("code", t.Code))
	default:
		e.p.Logger.Warn("Dropping tick", zap.String("code", t.Code), zap.Error(err))
	}
}

// Ingest applies one tick and appends a basis point for every affected
// contract that has both a future and a spot price. It returns how many
// points were appended.
func (e *Engine) Ingest(t models.Tick) (int, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	ref, ok := e.p.Registry.Resolve(t.Code)
	if !ok {
		metrics.TicksIgnored.Inc()
		return 0, fmt.Errorf("%w: %q", ErrUnknownCode, t.Code)
	}

	affected, err := e.cache.ApplyTick(ref, t.Fields, t.Data)
	if err != nil {
		metrics.TicksFailed.Inc()
		return 0, fmt.Errorf("tick %s: %w", t.Code, err)
	}
	metrics.TicksProcessed.Inc()

	// The point is stamped with the engine clock. ReceivedAt only
	// decides which day the tick belongs to.
	now := e.p.Now()
	recorded := t.ReceivedAt
	if recorded.IsZero() {
		recorded = now
	}

	appended := 0
	for _, contract := range affected {
		st := e.cache.states[contract]
		basis, ok := st.Basis()
		if !ok {
			continue
		}

		// Only today's points are kept. A tick stamped on another day
		// still updated the cache above but records nothing.
		if DayKey(recorded.In(now.Location())) != DayKey(now) {
			metrics.StalePointsDropped.Inc()
			e.p.Logger.Debug("Dropping point outside current day",
				zap.String("contract", contract),
				zap.Time("recorded", recorded),
			)
			continue
		}
		e.rollover(now)

		timeStr := st.FutureTime
		if timeStr == "" {
			timeStr = st.SpotTime
		}
		if timeStr == "" {
			timeStr = now.Format("15:04:05")
		}

		pt, err := e.store.Append(contract, models.BasisPoint{
			Time:      timeStr,
			Basis:     basis.InexactFloat64(),
			Timestamp: models.UnixSeconds(now),
		})
		if err != nil {
			return appended, fmt.Errorf("append %s: %w", contract, err)
		}
		appended++
		metrics.PointsAppended.WithLabelValues(contract).Inc()

		if e.p.Sink != nil {
			e.p.Sink.Publish(contract, pt)
		}

		if n := e.store.Len(contract); n%100 == 0 {
			e.p.Logger.Info("Basis series progress",
				zap.String("contract", contract),
				zap.String("time", pt.Time),
				zap.Float64("basis", pt.Basis),
				zap.Int("points", n),
			)
		}
	}

	return appended, nil
}

// rollover swaps in empty series when the calendar day has changed.
func (e *Engine) rollover(now time.Time) {
	day := DayKey(now)
	if e.store.Day() == day {
		return
	}
	prev := e.store.Day()
	if e.store.Rollover(day) {
		e.p.Logger.Info("Rolled basis series over to new day",
			zap.String("previous", prev),
			zap.String("day", day),
		)
	}
}

// DayKey formats the local calendar date of t.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
