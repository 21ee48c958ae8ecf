package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// Wire form of a tick:
//
//	{"code":"IC00.CFE","fields":["RT_LATEST","RT_TIME"],"data":[5720.4,93005],"received_at":1718000000.5}
//
// The vendor delivers each value wrapped in a one element list, so
// [[5720.4],[93005]] is accepted as well. Values that are not numbers
// decode to NaN and are rejected later by the cache.

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (t *Tick) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "code":
			t.Code = in.String()
		case "fields":
			t.Fields = t.Fields[:0]
			in.Delim('[')
			for !in.IsDelim(']') {
				t.Fields = append(t.Fields, in.String())
				in.WantComma()
			}
			in.Delim(']')
		case "data":
			t.Data = t.Data[:0]
			in.Delim('[')
			for !in.IsDelim(']') {
				t.Data = append(t.Data, numericValue(in.Interface()))
				in.WantComma()
			}
			in.Delim(']')
		case "received_at":
			sec := in.Float64()
			if sec > 0 {
				t.ReceivedAt = FromUnixSeconds(sec)
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// UnmarshalJSON supports json.Unmarshaler interface
func (t *Tick) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	t.UnmarshalEasyJSON(&r)
	return r.Error()
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (t Tick) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"code":`)
	out.String(t.Code)
	out.RawString(`,"fields":[`)
	for i, f := range t.Fields {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(f)
	}
	out.RawString(`],"data":[`)
	for i, v := range t.Data {
		if i > 0 {
			out.RawByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out.RawString("null")
			continue
		}
		out.Float64(v)
	}
	out.RawByte(']')
	if !t.ReceivedAt.IsZero() {
		out.RawString(`,"received_at":`)
		out.Float64(UnixSeconds(t.ReceivedAt))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (t Tick) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	t.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

func numericValue(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case []interface{}:
		if len(x) == 0 {
			return math.NaN()
		}
		return numericValue(x[0])
	default:
		return math.NaN()
	}
}

// UnixSeconds converts t to fractional unix seconds, the unit used by
// BasisPoint.Timestamp.
func UnixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// FromUnixSeconds is the inverse of UnixSeconds, to microsecond precision.
func FromUnixSeconds(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(math.Round(frac*1e6))*int64(time.Microsecond))
}
