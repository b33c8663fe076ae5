package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID is an opaque domain identifier.
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation.
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs.
	// Falls back to v4 if v7 is not available (for compatibility).
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation.
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty.
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types.
type (
	// AnchorID identifies a baseline anchor (dataset + column + identity).
	AnchorID ID
	// ColumnKey names a column within a dataset.
	ColumnKey ID
)

func (id AnchorID) String() string  { return ID(id).String() }
func (id ColumnKey) String() string { return ID(id).String() }

// ParseAnchorID parses a string into an AnchorID, rejecting blank input.
func ParseAnchorID(s string) (AnchorID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("anchor ID cannot be empty")
	}
	return AnchorID(s), nil
}

// ParseColumnKey parses a string into a ColumnKey, rejecting blank input.
func ParseColumnKey(s string) (ColumnKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("column key cannot be empty")
	}
	return ColumnKey(s), nil
}

// NewAnchorID mints a fresh, time-ordered anchor identifier.
func NewAnchorID() AnchorID {
	return AnchorID(NewID())
}
