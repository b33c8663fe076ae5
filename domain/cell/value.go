// Package cell provides the typed scalar value that drift detection operates
// over: every column is a sequence of Values, one per row.
package cell

import (
	"fmt"
	"time"
)

// Type enumerates the six scalar kinds a cell can hold.
type Type string

const (
	TypeAbsent    Type = "absent"
	TypeBoolean   Type = "boolean"
	TypeInteger   Type = "integer"
	TypeFloat     Type = "floating_point"
	TypeText      Type = "text"
	TypeTimestamp Type = "timestamp"
)

// Value is a typed cell in a column. Exactly one of the typed fields is
// meaningful, selected by Type; IsAbsent reports the null/empty case.
type Value struct {
	Type      Type
	Bool      bool
	Int       int64
	Float     float64
	Text      string
	Timestamp time.Time
}

// Absent returns the absent-cell value.
func Absent() Value { return Value{Type: TypeAbsent} }

// Boolean wraps a bool cell.
func Boolean(b bool) Value { return Value{Type: TypeBoolean, Bool: b} }

// Integer wraps an integer cell.
func Integer(i int64) Value { return Value{Type: TypeInteger, Int: i} }

// Float wraps a floating-point cell.
func Float(f float64) Value { return Value{Type: TypeFloat, Float: f} }

// Text wraps a text cell. An empty string is treated as absent, matching
// the coercion convention used across this domain.
func Text(s string) Value {
	if s == "" {
		return Absent()
	}
	return Value{Type: TypeText, Text: s}
}

// TimestampValue wraps a timestamp cell.
func TimestampValue(t time.Time) Value { return Value{Type: TypeTimestamp, Timestamp: t} }

// IsAbsent reports whether the cell represents a null/empty observation.
func (v Value) IsAbsent() bool { return v.Type == TypeAbsent }

// IsNumeric reports whether the cell can participate in numeric kernels.
func (v Value) IsNumeric() bool { return v.Type == TypeInteger || v.Type == TypeFloat }

// AsFloat64 returns the numeric value as a float64, coercing integers.
// Returns 0 for non-numeric cells; callers must check IsNumeric first.
func (v Value) AsFloat64() float64 {
	switch v.Type {
	case TypeInteger:
		return float64(v.Int)
	case TypeFloat:
		return v.Float
	}
	return 0
}

// String renders the cell for fingerprinting, pattern matching and hashing.
func (v Value) String() string {
	switch v.Type {
	case TypeBoolean:
		return fmt.Sprintf("%t", v.Bool)
	case TypeInteger:
		return fmt.Sprintf("%d", v.Int)
	case TypeFloat:
		return fmt.Sprintf("%g", v.Float)
	case TypeText:
		return v.Text
	case TypeTimestamp:
		return v.Timestamp.Format(time.RFC3339)
	default:
		return ""
	}
}
