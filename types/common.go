package types

import (
	"encoding/json"
)

// ValueType describes the runtime type an option resolves to. The set is
// closed: it drives default-if-absent values, arity rules and coercion.
type ValueType int

const (
	// Boolean denotes a bare switch (present == true, absent == false)
	Boolean ValueType = iota
	// Number denotes a flag accepting a single numeric value
	Number
	// NumberArray denotes a flag accumulating numeric values across occurrences
	NumberArray
	// String denotes a flag accepting a single string value
	String
	// StringArray denotes a flag accumulating string values across occurrences
	StringArray
)

// String returns the grammar token for a ValueType
func (t ValueType) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case NumberArray:
		return "number[]"
	case String:
		return "string"
	case StringArray:
		return "string[]"
	default:
		return "unknown"
	}
}

// ValueTypeFromString converts a grammar token to a ValueType
func ValueTypeFromString(s string) (ValueType, bool) {
	switch s {
	case "boolean":
		return Boolean, true
	case "number":
		return Number, true
	case "number[]":
		return NumberArray, true
	case "string":
		return String, true
	case "string[]":
		return StringArray, true
	default:
		return Boolean, false
	}
}

// IsArray returns true for the accumulating types
func (t ValueType) IsArray() bool {
	return t == NumberArray || t == StringArray
}

// Value is the runtime-typed result of resolving one option. Exactly one of
// the payload fields is meaningful, selected by Type. Present is false only
// for the null/absent representation of the scalar Number and String types.
type Value struct {
	Type    ValueType
	Present bool
	Bool    bool
	Num     float64
	Str     string
	Nums    []float64
	Strs    []string
}

// Implicit returns the default-if-absent Value for a type:
// Boolean false, Number/String absent, arrays empty.
func Implicit(t ValueType) Value {
	switch t {
	case Boolean:
		return Value{Type: Boolean, Present: true}
	case NumberArray:
		return Value{Type: NumberArray, Present: true, Nums: []float64{}}
	case StringArray:
		return Value{Type: StringArray, Present: true, Strs: []string{}}
	default:
		return Value{Type: t}
	}
}

// BoolOf wraps a boolean
func BoolOf(b bool) Value {
	return Value{Type: Boolean, Present: true, Bool: b}
}

// NumberOf wraps a single number
func NumberOf(f float64) Value {
	return Value{Type: Number, Present: true, Num: f}
}

// StringOf wraps a single string
func StringOf(s string) Value {
	return Value{Type: String, Present: true, Str: s}
}

// NumbersOf wraps a number sequence. A nil slice becomes the empty sequence.
func NumbersOf(ns []float64) Value {
	if ns == nil {
		ns = []float64{}
	}
	return Value{Type: NumberArray, Present: true, Nums: ns}
}

// StringsOf wraps a string sequence. A nil slice becomes the empty sequence.
func StringsOf(ss []string) Value {
	if ss == nil {
		ss = []string{}
	}
	return Value{Type: StringArray, Present: true, Strs: ss}
}

// IsImplicit reports whether v equals the implicit default of its type
func (v Value) IsImplicit() bool {
	switch v.Type {
	case Boolean:
		return !v.Bool
	case NumberArray:
		return len(v.Nums) == 0
	case StringArray:
		return len(v.Strs) == 0
	default:
		return !v.Present
	}
}

// JSON renders the value as a JSON literal, matching the grammar used to
// declare defaults. The absent representation renders as null.
func (v Value) JSON() string {
	if !v.Present {
		return "null"
	}
	var payload any
	switch v.Type {
	case Boolean:
		payload = v.Bool
	case Number:
		payload = v.Num
	case NumberArray:
		payload = v.Nums
	case String:
		payload = v.Str
	case StringArray:
		payload = v.Strs
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "null"
	}
	return string(b)
}
