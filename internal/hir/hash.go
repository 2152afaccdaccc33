package hir

import (
	"fmt"

	"github.com/roach88/pplir/internal/canon"
)

// DomainAnnotation is the domain prefix for annotation identity.
const DomainAnnotation = "pplir/hir/annotation/v1"

// Canonical lowers an annotation into its canonical value tree.
func Canonical(a Annotation) (canon.Value, error) {
	switch ann := a.(type) {
	case nil:
		return nil, fmt.Errorf("annotation is nil")
	case MangleAs:
		return canon.NewObject(
			canon.P("kind", canon.String(NameMangleAs)),
			canon.P("name", canon.String(ann.Name)),
		), nil
	default:
		return nil, fmt.Errorf("unsupported annotation: %T", a)
	}
}

// AnnotationHash computes the content-addressed identity of an annotation.
// Names are NFC normalized before hashing.
func AnnotationHash(a Annotation) (string, error) {
	v, err := Canonical(a)
	if err != nil {
		return "", fmt.Errorf("AnnotationHash: %w", err)
	}
	return canon.Hash(DomainAnnotation, v)
}
