// Package drift holds the data model shared by every detector, kernel and
// aggregation step: the column Fingerprint, the baseline Anchor it is
// compared against, and the DriftType/DriftReport outcome shapes.
package drift

import (
	"driftwatch/domain/core"
)

// Dtype is the inferred or declared storage type of a column.
type Dtype string

const (
	DtypeInt      Dtype = "int"
	DtypeFloat    Dtype = "float"
	DtypeBool     Dtype = "bool"
	DtypeDatetime Dtype = "datetime"
	DtypeText     Dtype = "text"
	DtypeUnknown  Dtype = "unknown"
)

// IsNumeric reports whether the dtype participates in numeric kernels.
func (d Dtype) IsNumeric() bool { return d == DtypeInt || d == DtypeFloat }

// Severity is an ordered drift severity level; higher values are worse.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "none"
	}
}

// Score maps severity onto the {1,2,3,4} scale the aggregator averages over.
func (s Severity) Score() float64 {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Penalty returns the confidence-degradation penalty associated with a
// severity level (spec weighting, shared by §4.4.5 and §4.5).
func (s Severity) Penalty() float64 {
	switch s {
	case SeverityLow:
		return 0.05
	case SeverityMedium:
		return 0.10
	case SeverityHigh:
		return 0.20
	case SeverityCritical:
		return 0.35
	default:
		return 0
	}
}

// Fingerprint is an immutable, serializable summary of a column.
type Fingerprint struct {
	Dtype         Dtype
	Cardinality   int
	NullRatio     float64
	UniqueRatio   float64
	Min           *float64
	Max           *float64
	MinText       *string
	MaxText       *string
	SampleValues  []string
	RegexPatterns []string
}

// Anchor is a named baseline fingerprint with identity and observation
// history. Anchors are appended to, never rewritten in place, by the
// detection core.
type Anchor struct {
	AnchorID    core.AnchorID
	Dataset     string
	ColumnName  string
	Fingerprint Fingerprint
	FirstSeen   core.Timestamp
	LastSeen    core.Timestamp
	Confidence  *float64
}

// WithLastSeen returns a copy of the anchor with LastSeen advanced and an
// optional confidence adjustment applied, leaving the receiver untouched.
func (a Anchor) WithLastSeen(t core.Timestamp, newConfidence *float64) Anchor {
	next := a
	next.LastSeen = t
	if newConfidence != nil {
		next.Confidence = newConfidence
	}
	return next
}

// Kind discriminates the five drift detectors.
type Kind string

const (
	KindDistribution Kind = "distribution"
	KindFormat       Kind = "format"
	KindUnit         Kind = "unit"
	KindJoinability  Kind = "joinability"
	KindConfidence   Kind = "confidence"
)

// Detail is a discriminated union of per-kind drift evidence (spec design
// note: "Tagged unions for drift kinds and details"). Each detector
// produces exactly one concrete Detail type.
type Detail interface {
	driftDetail()
}

// DistributionDetail carries the KS/PSI evidence behind a distribution flag.
type DistributionDetail struct {
	KSStatistic float64
	KSPValue    float64
	PSI         float64
	UsedFallback bool // true when the baseline was too small for KS/PSI
}

func (DistributionDetail) driftDetail() {}

// FormatDetail carries the pattern-analysis evidence behind a format flag.
type FormatDetail struct {
	Similarity     float64
	NewPatterns    []string
	LostPatterns   []string
	ChangedPatterns []string
	Stability      string
}

func (FormatDetail) driftDetail() {}

// UnitDetail carries the scale-ratio evidence behind a unit/scale flag.
type UnitDetail struct {
	Scale  float64
	RangeH float64
	RangeC float64
}

func (UnitDetail) driftDetail() {}

// JoinabilityDetail carries the unique-ratio evidence behind a joinability flag.
type JoinabilityDetail struct {
	Delta             float64
	DuplicateIncrease float64
	KeyIntegrity      float64
}

func (JoinabilityDetail) driftDetail() {}

// ConfidenceDetail carries the degraded-confidence evidence.
type ConfidenceDetail struct {
	OldConfidence  float64
	NewConfidence  float64
	Degradation    float64
}

func (ConfidenceDetail) driftDetail() {}

// DriftType is a single flagged drift signal from one detector.
type DriftType struct {
	Kind        Kind
	Severity    Severity
	MetricValue float64
	Threshold   float64
	Description string
	Detail      Detail
}

// DriftReport is the outcome of one column evaluation.
type DriftReport struct {
	AnchorID        core.AnchorID
	ColumnName      string
	DriftDetected   bool
	DriftTypes      []DriftType
	Severity        Severity
	ConfidenceScore float64
	Details         map[Kind]Detail
	Recommendations []string
	Performance     *PerformanceMetrics

	// Aborted distinguishes a Timeout/Cancelled outcome from a clean
	// "evaluated successfully, no drift" report (spec §7).
	Aborted     bool
	AbortReason string
}

// PerformanceMetrics reports FastPath optimizer behavior for one evaluation.
type PerformanceMetrics struct {
	DetectionTimeMs    float64
	SamplesProcessed   int
	OptimizationApplied bool
	CompressionRatio   float64
}
