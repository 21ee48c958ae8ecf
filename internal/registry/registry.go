// Package registry maps raw feed codes onto instrument families.
//
// A family is an index (for example IC) with one spot code and a fixed
// set of futures contracts, one per tenor. The registry is built once
// at startup and is read-only afterwards, so it needs no locking.
package registry

import (
	"errors"
	"fmt"
)

type Role int

const (
	RoleSpot Role = iota
	RoleFuture
)

func (r Role) String() string {
	if r == RoleSpot {
		return "spot"
	}
	return "future"
}

// FamilyParams describes one configured family.
type FamilyParams struct {
	ID   string
	Spot string
}

type Params struct {
	Families []FamilyParams
	// Tenors are the month codes appended to the family id, in order.
	//
	// Defaults to DefaultTenors.
	Tenors []string
	// MarketSuffix is appended after the tenor.
	//
	// Defaults to DefaultMarketSuffix.
	MarketSuffix string
}

var (
	DefaultTenors       = []string{"00", "01", "02", "03"}
	DefaultMarketSuffix = ".CFE"

	DefaultFamilies = []FamilyParams{
		{ID: "IH", Spot: "000016.SH"},
		{ID: "IF", Spot: "000300.SH"},
		{ID: "IC", Spot: "000905.SH"},
		{ID: "IM", Spot: "000852.SH"},
	}
)

var ErrInvalidFamily = errors.New("invalid instrument family")

// Family is an index together with its spot code and futures contracts.
type Family struct {
	ID        string
	Spot      string
	Contracts []string
}

// Ref is the result of resolving a code. Contract is empty for spot codes.
type Ref struct {
	Family   string
	Role     Role
	Contract string
}

type Registry struct {
	families []Family
	byID     map[string]int
	byCode   map[string]Ref
}

// New builds the registry. Construction is deterministic: the same
// params always produce the same codes in the same order.
func New(p Params) (*Registry, error) {
	if len(p.Tenors) == 0 {
		p.Tenors = DefaultTenors
	}
	if p.MarketSuffix == "" {
		p.MarketSuffix = DefaultMarketSuffix
	}

	r := &Registry{
		families: make([]Family, 0, len(p.Families)),
		byID:     make(map[string]int, len(p.Families)),
		byCode:   make(map[string]Ref, len(p.Families)*(len(p.Tenors)+1)),
	}

	for _, fp := range p.Families {
		if fp.ID == "" || fp.Spot == "" {
			return nil, fmt.Errorf("%w: id %q spot %q", ErrInvalidFamily, fp.ID, fp.Spot)
		}
		if _, dup := r.byID[fp.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidFamily, fp.ID)
		}

		fam := Family{
			ID:        fp.ID,
			Spot:      fp.Spot,
			Contracts: ContractCodes(fp.ID, p.Tenors, p.MarketSuffix),
		}

		if err := r.claim(fam.Spot, Ref{Family: fam.ID, Role: RoleSpot}); err != nil {
			return nil, err
		}
		for _, c := range fam.Contracts {
			if err := r.claim(c, Ref{Family: fam.ID, Role: RoleFuture, Contract: c}); err != nil {
				return nil, err
			}
		}

		r.byID[fam.ID] = len(r.families)
		r.families = append(r.families, fam)
	}

	return r, nil
}

func (r *Registry) claim(code string, ref Ref) error {
	if prev, dup := r.byCode[code]; dup {
		return fmt.Errorf("%w: code %q used by %s and %s", ErrInvalidFamily, code, prev.Family, ref.Family)
	}
	r.byCode[code] = ref
	return nil
}

// ContractCodes generates the futures codes for a family, e.g.
// IC + 00 + .CFE = IC00.CFE.
func ContractCodes(family string, tenors []string, suffix string) []string {
	codes := make([]string, 0, len(tenors))
	for _, t := range tenors {
		codes = append(codes, family+t+suffix)
	}
	return codes
}

// Resolve looks up a raw feed code. ok is false for codes that are not
// part of any family; callers ignore such ticks.
func (r *Registry) Resolve(code string) (Ref, bool) {
	ref, ok := r.byCode[code]
	return ref, ok
}

// Families returns the families in configured order.
func (r *Registry) Families() []Family {
	out := make([]Family, len(r.families))
	for i, f := range r.families {
		f.Contracts = append([]string(nil), f.Contracts...)
		out[i] = f
	}
	return out
}

func (r *Registry) Family(id string) (Family, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Family{}, false
	}
	f := r.families[idx]
	f.Contracts = append([]string(nil), f.Contracts...)
	return f, true
}

// Siblings returns the futures contracts of a family without copying.
// The returned slice must not be modified.
func (r *Registry) Siblings(family string) []string {
	idx, ok := r.byID[family]
	if !ok {
		return nil
	}
	return r.families[idx].Contracts
}

// Contracts returns every futures contract, family by family.
func (r *Registry) Contracts() []string {
	var out []string
	for _, f := range r.families {
		out = append(out, f.Contracts...)
	}
	return out
}

// Codes returns every code a feed should subscribe to: all futures
// first, then the spot codes.
func (r *Registry) Codes() []string {
	out := r.Contracts()
	for _, f := range r.families {
		out = append(out, f.Spot)
	}
	return out
}
