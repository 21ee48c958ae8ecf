package logic

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/infinityCounter2/basis-stream/internal/registry"
	"github.com/shopspring/decimal"
)

const (
	FieldLatest = "RT_LATEST"
	FieldTime   = "RT_TIME"

	// ZeroTime is substituted for any time value that cannot be parsed.
	ZeroTime = "00:00:00"
)

var ErrMalformedTick = errors.New("malformed tick")

// ContractPhase is which sides of a contract have been seen so far.
type ContractPhase int

const (
	PhaseNeither ContractPhase = iota
	PhaseFutureOnly
	PhaseSpotOnly
	PhaseBoth
)

func (p ContractPhase) String() string {
	switch p {
	case PhaseFutureOnly:
		return "FUTURE_ONLY"
	case PhaseSpotOnly:
		return "SPOT_ONLY"
	case PhaseBoth:
		return "BOTH"
	default:
		return "NEITHER"
	}
}

// ContractState is the latest known quote on each side of one contract.
// An empty time string means the side has not reported a time yet.
type ContractState struct {
	FuturePrice decimal.NullDecimal
	FutureTime  string
	SpotPrice   decimal.NullDecimal
	SpotTime    string
}

// Phase derives the state machine position from which prices are set.
// Prices are never cleared, so once BOTH is reached it stays there.
func (s ContractState) Phase() ContractPhase {
	switch {
	case s.FuturePrice.Valid && s.SpotPrice.Valid:
		return PhaseBoth
	case s.FuturePrice.Valid:
		return PhaseFutureOnly
	case s.SpotPrice.Valid:
		return PhaseSpotOnly
	default:
		return PhaseNeither
	}
}

// Basis returns future minus spot rounded to 2 places. ok is false
// until both sides are known.
func (s ContractState) Basis() (basis decimal.Decimal, ok bool) {
	if s.Phase() != PhaseBoth {
		return decimal.Decimal{}, false
	}
	return s.FuturePrice.Decimal.Sub(s.SpotPrice.Decimal).Round(2), true
}

// ContractCache holds the ContractState of every futures contract.
//
// It is not safe for concurrent use; the Engine serializes access.
type ContractCache struct {
	reg    *registry.Registry
	states map[string]*ContractState
}

func NewContractCache(reg *registry.Registry) *ContractCache {
	contracts := reg.Contracts()
	c := &ContractCache{
		reg:    reg,
		states: make(map[string]*ContractState, len(contracts)),
	}
	for _, code := range contracts {
		c.states[code] = &ContractState{}
	}
	return c
}

// quote is the validated content of one tick.
type quote struct {
	price    decimal.Decimal
	hasPrice bool
	time     string
	hasTime  bool
}

// ApplyTick updates the cache from one resolved tick and returns the
// contracts whose state changed. A spot tick updates every contract of
// its family; a futures tick only its own contract.
//
// The tick is validated before anything is written, so a malformed tick
// leaves the cache untouched.
func (c *ContractCache) ApplyTick(ref registry.Ref, fields []string, data []float64) ([]string, error) {
	q, err := parseQuote(fields, data)
	if err != nil {
		return nil, err
	}

	if ref.Role == registry.RoleSpot {
		siblings := c.reg.Siblings(ref.Family)
		for _, code := range siblings {
			st := c.state(code)
			if q.hasPrice {
				st.SpotPrice = decimal.NewNullDecimal(q.price)
			}
			if q.hasTime {
				st.SpotTime = q.time
			}
		}
		return append([]string(nil), siblings...), nil
	}

	st := c.state(ref.Contract)
	if q.hasPrice {
		st.FuturePrice = decimal.NewNullDecimal(q.price)
	}
	if q.hasTime {
		st.FutureTime = q.time
	}
	return []string{ref.Contract}, nil
}

// State returns a copy of a contract's state.
func (c *ContractCache) State(contract string) (ContractState, bool) {
	st, ok := c.states[contract]
	if !ok {
		return ContractState{}, false
	}
	return *st, true
}

func (c *ContractCache) state(contract string) *ContractState {
	st, ok := c.states[contract]
	if !ok {
		st = &ContractState{}
		c.states[contract] = st
	}
	return st
}

func parseQuote(fields []string, data []float64) (quote, error) {
	var q quote
	if len(fields) != len(data) {
		return q, fmt.Errorf("%w: %d fields but %d values", ErrMalformedTick, len(fields), len(data))
	}

	for i, field := range fields {
		v := data[i]
		switch {
		case strings.EqualFold(field, FieldLatest):
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return q, fmt.Errorf("%w: non-numeric %s", ErrMalformedTick, FieldLatest)
			}
			q.price = decimal.NewFromFloat(v).Round(2)
			q.hasPrice = true
		case strings.EqualFold(field, FieldTime):
			q.time = ParseTime(v)
			q.hasTime = true
		}
	}
	return q, nil
}

// ParseTime converts the feed's HHMMSS integer encoding into "HH:MM:SS".
// 93059 becomes "09:30:59". Anything that is not a valid time of day
// yields ZeroTime.
func ParseTime(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= 1e6 {
		return ZeroTime
	}

	s := fmt.Sprintf("%06d", int64(v))
	hh, _ := strconv.Atoi(s[0:2])
	mm, _ := strconv.Atoi(s[2:4])
	ss, _ := strconv.Atoi(s[4:6])
	if hh > 23 || mm > 59 || ss > 59 {
		return ZeroTime
	}

	return s[0:2] + ":" + s[2:4] + ":" + s[4:6]
}
