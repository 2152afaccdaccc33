package hir

import (
	"fmt"
	"strconv"
)

// Annotation is a sealed interface over HIR metadata items.
// Only MangleAs implements it.
type Annotation interface {
	annotation()
	String() string
}

// MangleAs overrides the externally visible symbol name.
// Name is opaque here; validating it is the backend's concern.
type MangleAs struct {
	Name string
}

func (MangleAs) annotation() {}

func (a MangleAs) String() string {
	return "@" + NameMangleAs + "(" + strconv.Quote(a.Name) + ")"
}

// NewMangleAs creates a MangleAs annotation.
func NewMangleAs(name string) MangleAs {
	return MangleAs{Name: name}
}

// Source-level annotation names.
const (
	NameMangleAs = "mangle_as"
)

// UnknownAnnotationError reports a source-level annotation that does not map
// to any Annotation variant.
type UnknownAnnotationError struct {
	Name string
	Args []string
}

func (e *UnknownAnnotationError) Error() string {
	return fmt.Sprintf("unknown annotation '@%s' with %d argument(s)", e.Name, len(e.Args))
}

// Lookup maps a source-level annotation and its string arguments to an
// Annotation. mangle_as takes exactly one argument, the symbol name.
func Lookup(name string, args []string) (Annotation, error) {
	switch name {
	case NameMangleAs:
		if len(args) == 1 {
			return NewMangleAs(args[0]), nil
		}
	}
	return nil, &UnknownAnnotationError{Name: name, Args: args}
}

// MangledName returns the symbol name for an entity carrying annotations.
// The first MangleAs wins; without one the entity keeps its own name.
func MangledName(annotations []Annotation, fallback string) string {
	for _, a := range annotations {
		if m, ok := a.(MangleAs); ok {
			return m.Name
		}
	}
	return fallback
}
