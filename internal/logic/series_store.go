package logic

import (
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/infinityCounter2/basis-stream/internal/models"
	"github.com/infinityCounter2/basis-stream/internal/registry"
)

var ErrUnknownContract = errors.New("unknown contract")

type SeriesStoreParams struct {
	// Registry supplies the families and contracts; each contract
	// starts out with an empty series.
	Registry *registry.Registry
	// Day is the calendar date (YYYY-MM-DD) the series belong to.
	Day string
}

// SeriesStore holds the intraday basis series of every contract.
//
// Appends come from a single producer while any number of readers take
// copies, so everything is guarded by one RWMutex. The write rate is a
// few points per second per contract which keeps contention low.
type SeriesStore struct {
	p   SeriesStoreParams
	mtx sync.RWMutex

	day string
	// Keyed by family, then contract code.
	series map[string]map[string][]models.BasisPoint
	// familyOf maps contract code to family id.
	familyOf map[string]string
}

func NewSeriesStore(p SeriesStoreParams) *SeriesStore {
	store := &SeriesStore{
		p:   p,
		day: p.Day,
	}
	store.series, store.familyOf = store.emptySeries()
	return store
}

func (store *SeriesStore) emptySeries() (map[string]map[string][]models.BasisPoint, map[string]string) {
	series := make(map[string]map[string][]models.BasisPoint)
	familyOf := make(map[string]string)
	if store.p.Registry == nil {
		return series, familyOf
	}
	for _, fam := range store.p.Registry.Families() {
		contracts := make(map[string][]models.BasisPoint, len(fam.Contracts))
		for _, c := range fam.Contracts {
			contracts[c] = nil
			familyOf[c] = fam.ID
		}
		series[fam.ID] = contracts
	}
	return series, familyOf
}

// Append adds a point to the end of a contract's series and returns the
// point as stored.
//
// Timestamps within a series are kept strictly increasing: when the
// clock yields a value at or below the last stored timestamp the next
// representable value above it is used instead.
func (store *SeriesStore) Append(contract string, pt models.BasisPoint) (models.BasisPoint, error) {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	family, ok := store.familyOf[contract]
	if !ok {
		return pt, ErrUnknownContract
	}

	points := store.series[family][contract]
	if n := len(points); n > 0 && pt.Timestamp <= points[n-1].Timestamp {
		pt.Timestamp = math.Nextafter(points[n-1].Timestamp, math.Inf(1))
	}

	store.series[family][contract] = append(points, pt)
	return pt, nil
}

// PointsSince returns, in append order, the points of a contract with a
// timestamp greater than cursor, or greater than or equal to it when
// inclusive is set. The result is a copy.
func (store *SeriesStore) PointsSince(contract string, cursor float64, inclusive bool) models.PointList {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	family, ok := store.familyOf[contract]
	if !ok {
		return nil
	}

	var out models.PointList
	for _, pt := range store.series[family][contract] {
		if pt.Timestamp > cursor || (inclusive && pt.Timestamp == cursor) {
			out = append(out, pt)
		}
	}
	return out
}

// Last returns the most recent point of a contract.
func (store *SeriesStore) Last(contract string) (models.BasisPoint, bool) {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	points := store.series[store.familyOf[contract]][contract]
	if len(points) == 0 {
		return models.BasisPoint{}, false
	}
	return points[len(points)-1], true
}

func (store *SeriesStore) Len(contract string) int {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	return len(store.series[store.familyOf[contract]][contract])
}

// Snapshot returns a deep copy of every series, keyed by family and
// contract. Contracts without points are included with an empty list.
func (store *SeriesStore) Snapshot() models.Snapshot {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	snap := make(models.Snapshot, len(store.series))
	for family, contracts := range store.series {
		out := make(map[string]models.PointList, len(contracts))
		for contract, points := range contracts {
			cp := make(models.PointList, len(points))
			copy(cp, points)
			out[contract] = cp
		}
		snap[family] = out
	}
	return snap
}

// Load replaces every series with the content of snap. Registry
// contracts absent from snap end up empty. Contracts in snap that the
// registry does not know are kept as is.
func (store *SeriesStore) Load(day string, snap models.Snapshot) {
	series, familyOf := store.emptySeries()
	for family, contracts := range snap {
		if series[family] == nil {
			series[family] = make(map[string][]models.BasisPoint, len(contracts))
		}
		for contract, points := range contracts {
			cp := make([]models.BasisPoint, len(points))
			copy(cp, points)
			series[family][contract] = cp
			familyOf[contract] = family
		}
	}

	store.mtx.Lock()
	defer store.mtx.Unlock()

	store.day = day
	store.series = series
	store.familyOf = familyOf
}

// Day returns the calendar date the current series belong to.
func (store *SeriesStore) Day() string {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	return store.day
}

// Rollover starts fresh empty series for day. It reports false and
// leaves the series alone when day is already current.
func (store *SeriesStore) Rollover(day string) bool {
	series, familyOf := store.emptySeries()

	store.mtx.Lock()
	defer store.mtx.Unlock()

	if store.day == day {
		return false
	}
	store.day = day
	store.series = series
	store.familyOf = familyOf
	return true
}

// Contracts lists every contract with a series: registry contracts in
// registry order, then any extra loaded contracts sorted by code.
func (store *SeriesStore) Contracts() []string {
	var out []string
	known := make(map[string]struct{})
	if store.p.Registry != nil {
		for _, c := range store.p.Registry.Contracts() {
			out = append(out, c)
			known[c] = struct{}{}
		}
	}

	store.mtx.RLock()
	var extra []string
	for c := range store.familyOf {
		if _, ok := known[c]; !ok {
			extra = append(extra, c)
		}
	}
	store.mtx.RUnlock()

	sort.Strings(extra)
	return append(out, extra...)
}
