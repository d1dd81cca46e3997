package exprtype

import (
	"fmt"
	"strings"
)

// Type is a scalar data type known to the query engine. The set is closed and
// values are compared by identity only.
type Type int

const (
	TypeUnknown Type = iota // type of untyped literals (e.g. NULL) before context fixes a concrete type
	TypeByte
	TypeShort
	TypeInteger
	TypeLong
	TypeFloat
	TypeDouble
	TypeString
	TypeBoolean
	TypeDate
	TypeTime
	TypeTimestamp
	TypeIP

	numTypes
)

var typeNames = [numTypes]string{
	TypeUnknown:   "UNKNOWN",
	TypeByte:      "BYTE",
	TypeShort:     "SHORT",
	TypeInteger:   "INTEGER",
	TypeLong:      "LONG",
	TypeFloat:     "FLOAT",
	TypeDouble:    "DOUBLE",
	TypeString:    "STRING",
	TypeBoolean:   "BOOLEAN",
	TypeDate:      "DATE",
	TypeTime:      "TIME",
	TypeTimestamp: "TIMESTAMP",
	TypeIP:        "IP",
}

// AllTypes returns every type in declaration order, starting with TypeUnknown.
// The returned slice is a copy and can be modified by the caller.
func AllTypes() []Type {
	types := make([]Type, 0, numTypes)
	for t := TypeUnknown; t < numTypes; t++ {
		types = append(types, t)
	}
	return types
}

// ConcreteTypes is AllTypes without TypeUnknown.
func ConcreteTypes() []Type {
	return AllTypes()[1:]
}

// ParseType returns the type with the given name. Matching is case-insensitive.
func ParseType(s string) (Type, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return TypeUnknown, fmt.Errorf("unknown type %q", s)
}

func (t Type) IsValid() bool {
	return t >= TypeUnknown && t < numTypes
}

func (t Type) IsNumeric() bool {
	switch t {
	case TypeByte, TypeShort, TypeInteger, TypeLong, TypeFloat, TypeDouble:
		return true
	}
	return false
}

func (t Type) IsTemporal() bool {
	return t == TypeDate || t == TypeTime || t == TypeTimestamp
}

func (t Type) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typeNames[t]
}
