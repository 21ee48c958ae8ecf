package models

import "time"

//go:generate easyjson -all

// Tick is a single quote update for one instrument code as delivered
// by the vendor feed. Fields and Data are positional, Data[i] is the
// value of Fields[i].
//
//easyjson:skip
type Tick struct {
	Code   string
	Fields []string
	// Data holds NaN for any value that was not numeric on the wire.
	Data []float64
	// ReceivedAt is when the feed adapter received the tick. It only
	// decides which day the tick belongs to; points are stamped with the
	// engine clock. Zero means now.
	ReceivedAt time.Time
}

type TickList []Tick

// BasisPoint is one observation of future minus spot for a contract.
//
// Timestamp is wall-clock unix seconds (with fraction) at ingestion and
// is what subscriber cursors compare against.
type BasisPoint struct {
	Time      string  `json:"time"`
	Basis     float64 `json:"basis"`
	Timestamp float64 `json:"timestamp"`
}

type PointList []BasisPoint

// Update is the payload pushed to subscribers, keyed by contract code.
type Update map[string]PointList

// Snapshot is the persisted form of every series, keyed by family and
// then by contract code.
type Snapshot map[string]map[string]PointList

// Count returns the total number of points held in the snapshot.
func (s Snapshot) Count() int {
	n := 0
	for _, contracts := range s {
		for _, points := range contracts {
			n += len(points)
		}
	}
	return n
}

// BasisBar summarises the basis over one interval. Timestamp is the
// close time of the bar in unix milliseconds.
type BasisBar struct {
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Count     int     `json:"count"`
	Timestamp int64   `json:"timestamp"`
}

type BarList []BasisBar

// ContractInfo describes one futures contract for the /contracts listing.
type ContractInfo struct {
	Family   string `json:"family"`
	Contract string `json:"contract"`
	Spot     string `json:"spot"`
}

type ContractList []ContractInfo

// IngestResult reports the outcome of one /ingest request.
type IngestResult struct {
	Processed int `json:"processed"`
	Appended  int `json:"appended"`
	Failed    int `json:"failed"`
}
