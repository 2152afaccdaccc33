package hir

import "fmt"

// Structural validation error codes (E300-E399)
const (
	ErrUnsupportedNode   = "E300" // value is not an annotation
	ErrNilAnnotation     = "E301" // annotation slot is empty
	ErrDuplicateMangleAs = "E302" // more than one mangle_as on an entity
)

// ValidationError represents a structural validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidateAnnotations checks the annotations attached to one entity.
// Returns all errors found (does not fail-fast). A duplicate MangleAs is
// reported even though MangledName still resolves to the first one.
func ValidateAnnotations(annotations []Annotation) []ValidationError {
	var errs []ValidationError
	mangled := -1

	for i, a := range annotations {
		field := fmt.Sprintf("annotations[%d]", i)
		switch ann := a.(type) {
		case nil:
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "annotation is required",
				Code:    ErrNilAnnotation,
			})
		case MangleAs:
			if mangled >= 0 {
				errs = append(errs, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("duplicate mangle_as %q, annotations[%d] already sets the symbol name", ann.Name, mangled),
					Code:    ErrDuplicateMangleAs,
				})
				continue
			}
			mangled = i
		default:
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("unsupported annotation: %T", a),
				Code:    ErrUnsupportedNode,
			})
		}
	}

	return errs
}
