// Package state defines the plain-data model a component exposes to the
// framework: a small tagged scalar (Value) and the shapes a component state
// can take (State). No concurrency, no scheduling; values are built once
// and read by the update cycle.
package state

import "github.com/charmbracelet/lipgloss"

// ValueKind discriminates the variants of Value.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueBool
	ValueInt
	ValueUint
	ValueFloat
	ValueString
	ValueColor
)

// Value is a tagged scalar carried inside a State. Values are comparable.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	c    lipgloss.Color
}

func Bool(v bool) Value { return Value{kind: ValueBool, b: v} }

func Int(v int64) Value { return Value{kind: ValueInt, i: v} }

func Uint(v uint64) Value { return Value{kind: ValueUint, u: v} }

func Float(v float64) Value { return Value{kind: ValueFloat, f: v} }

func Str(v string) Value { return Value{kind: ValueString, s: v} }

func Color(v lipgloss.Color) Value { return Value{kind: ValueColor, c: v} }

// Kind reports which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// The accessors return the zero value when the variant does not match;
// check Kind first when the distinction matters.

func (v Value) Bool() bool { return v.b }

func (v Value) Int() int64 { return v.i }

func (v Value) Uint() uint64 { return v.u }

func (v Value) Float() float64 { return v.f }

func (v Value) Str() string { return v.s }

func (v Value) Color() lipgloss.Color { return v.c }

// Kind discriminates the shapes of State.
type Kind uint8

const (
	KindNone Kind = iota
	KindOne
	KindPair
	KindTriple
	KindList
	KindMap
)

// State describes a component state: nothing, a single value, a small tuple,
// an ordered list, or a keyed map.
type State struct {
	kind  Kind
	one   Value
	two   Value
	three Value
	list  []Value
	m     map[string]Value
}

func None() State { return State{kind: KindNone} }

func One(v Value) State { return State{kind: KindOne, one: v} }

func Pair(a, b Value) State { return State{kind: KindPair, one: a, two: b} }

func Triple(a, b, c Value) State { return State{kind: KindTriple, one: a, two: b, three: c} }

func List(vs []Value) State {
	cp := make([]Value, len(vs))
	copy(cp, vs)
	return State{kind: KindList, list: cp}
}

func Map(m map[string]Value) State {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return State{kind: KindMap, m: cp}
}

// Kind reports the shape of the state.
func (s State) Kind() Kind { return s.kind }

// IsNone reports whether the component carries no state.
func (s State) IsNone() bool { return s.kind == KindNone }

// Single returns the value of a One-shaped state.
func (s State) Single() (Value, bool) {
	if s.kind != KindOne {
		return Value{}, false
	}
	return s.one, true
}

// Tuple returns both values of a Pair-shaped state.
func (s State) Tuple() (Value, Value, bool) {
	if s.kind != KindPair {
		return Value{}, Value{}, false
	}
	return s.one, s.two, true
}

// Tuple3 returns the three values of a Triple-shaped state.
func (s State) Tuple3() (Value, Value, Value, bool) {
	if s.kind != KindTriple {
		return Value{}, Value{}, Value{}, false
	}
	return s.one, s.two, s.three, true
}

// Values returns the elements of a List-shaped state.
func (s State) Values() ([]Value, bool) {
	if s.kind != KindList {
		return nil, false
	}
	return s.list, true
}

// Entries returns the map of a Map-shaped state.
func (s State) Entries() (map[string]Value, bool) {
	if s.kind != KindMap {
		return nil, false
	}
	return s.m, true
}

// Equal reports deep equality between two states.
func (s State) Equal(o State) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindNone:
		return true
	case KindOne:
		return s.one == o.one
	case KindPair:
		return s.one == o.one && s.two == o.two
	case KindTriple:
		return s.one == o.one && s.two == o.two && s.three == o.three
	case KindList:
		if len(s.list) != len(o.list) {
			return false
		}
		for i := range s.list {
			if s.list[i] != o.list[i] {
				return false
			}
		}
		return true
	case KindMap:
		if len(s.m) != len(o.m) {
			return false
		}
		for k, v := range s.m {
			if ov, ok := o.m[k]; !ok || ov != v {
				return false
			}
		}
		return true
	default:
		return false
	}
}
