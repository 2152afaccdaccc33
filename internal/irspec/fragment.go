package irspec

import (
	"fmt"
	"math"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/pplir/internal/hir"
	"github.com/roach88/pplir/internal/mir"
)

// Fragment is a compiled IR fragment.
type Fragment struct {
	Name        string
	Annotations []hir.Annotation
	Statements  []mir.Statement
}

// LoadFile reads and compiles a CUE fragment file.
func LoadFile(path string) (*Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment file: %w", err)
	}
	return CompileString(path, string(data))
}

// CompileString compiles CUE source text into a Fragment.
// filename is used for error positions only.
func CompileString(filename, src string) (*Fragment, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(src, cue.Filename(filename))
	return CompileFragment(v)
}

// CompileFragment converts a CUE value into a Fragment.
// Uses CUE SDK's Go API directly.
func CompileFragment(v cue.Value) (*Fragment, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	frag := &Fragment{}

	nameVal := v.LookupPath(cue.ParsePath("fragment"))
	if nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		frag.Name = name
	}

	var err error
	frag.Annotations, err = parseAnnotations(v)
	if err != nil {
		return nil, err
	}

	frag.Statements, err = parseStatements(v)
	if err != nil {
		return nil, err
	}

	return frag, nil
}

// parseAnnotations extracts the optional annotations list.
func parseAnnotations(v cue.Value) ([]hir.Annotation, error) {
	var annotations []hir.Annotation

	listVal := v.LookupPath(cue.ParsePath("annotations"))
	if !listVal.Exists() {
		return annotations, nil
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	for i := 0; iter.Next(); i++ {
		field := fmt.Sprintf("annotations[%d]", i)
		annVal := iter.Value()

		name, err := requireString(annVal, "name", field)
		if err != nil {
			return nil, err
		}

		var args []string
		argsVal := annVal.LookupPath(cue.ParsePath("args"))
		if argsVal.Exists() {
			argIter, err := argsVal.List()
			if err != nil {
				return nil, formatCUEError(err)
			}
			for argIter.Next() {
				arg, err := argIter.Value().String()
				if err != nil {
					return nil, formatCUEError(err)
				}
				args = append(args, arg)
			}
		}

		ann, err := hir.Lookup(name, args)
		if err != nil {
			return nil, &CompileError{
				Field:   field,
				Message: err.Error(),
				Pos:     annVal.Pos(),
			}
		}
		annotations = append(annotations, ann)
	}

	return annotations, nil
}

// parseStatements extracts the required statements list.
func parseStatements(v cue.Value) ([]mir.Statement, error) {
	listVal := v.LookupPath(cue.ParsePath("statements"))
	if !listVal.Exists() {
		return nil, &CompileError{
			Field:   "statements",
			Message: "statements list is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	statements := []mir.Statement{}
	for i := 0; iter.Next(); i++ {
		stmt, err := parseStatement(iter.Value(), fmt.Sprintf("statements[%d]", i))
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

func parseStatement(v cue.Value, field string) (mir.Statement, error) {
	assignVal := v.LookupPath(cue.ParsePath("assign"))
	if !assignVal.Exists() {
		return nil, &CompileError{
			Field:   field,
			Message: "statement must be an assign",
			Pos:     v.Pos(),
		}
	}

	lhs, err := parseLocal(assignVal.LookupPath(cue.ParsePath("lhs")), field+".assign.lhs")
	if err != nil {
		return nil, err
	}

	rhsVal := assignVal.LookupPath(cue.ParsePath("rhs"))
	if !rhsVal.Exists() {
		return nil, &CompileError{
			Field:   field + ".assign.rhs",
			Message: "rhs is required",
			Pos:     assignVal.Pos(),
		}
	}
	rhs, err := parseOperand(rhsVal, field+".assign.rhs")
	if err != nil {
		return nil, err
	}

	return mir.NewAssign(lhs, rhs), nil
}

// operandKinds lists the operand labels in the order they are reported.
var operandKinds = []string{"copy", "move", "const"}

func parseOperand(v cue.Value, field string) (mir.Operand, error) {
	var present []string
	for _, kind := range operandKinds {
		if v.LookupPath(cue.ParsePath(kind)).Exists() {
			present = append(present, kind)
		}
	}
	if len(present) != 1 {
		return nil, &CompileError{
			Field:   field,
			Message: fmt.Sprintf("operand must have exactly one of copy, move, const (found %d)", len(present)),
			Pos:     v.Pos(),
		}
	}

	kind := present[0]
	payload := v.LookupPath(cue.ParsePath(kind))
	switch kind {
	case "copy":
		local, err := parseLocal(payload, field+".copy")
		if err != nil {
			return nil, err
		}
		return mir.NewCopy(local), nil
	case "move":
		local, err := parseLocal(payload, field+".move")
		if err != nil {
			return nil, err
		}
		return mir.NewMove(local), nil
	default:
		c, err := parseConstant(payload, field+".const")
		if err != nil {
			return nil, err
		}
		return mir.NewConst(c), nil
	}
}

func parseConstant(v cue.Value, field string) (mir.Constant, error) {
	kind, err := requireString(v, "kind", field)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "none":
		return mir.ConstNone{}, nil
	case "bool":
		valueVal, err := requireField(v, "value", field)
		if err != nil {
			return nil, err
		}
		b, err := valueVal.Bool()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return mir.NewConstBool(b), nil
	case "int":
		bits, valueVal, err := parseIntegerFields(v, field)
		if err != nil {
			return nil, err
		}
		n, err := valueVal.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return mir.NewConstInt(bits, n), nil
	case "uint":
		bits, valueVal, err := parseIntegerFields(v, field)
		if err != nil {
			return nil, err
		}
		n, err := valueVal.Uint64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return mir.NewConstUint(bits, n), nil
	default:
		return nil, &CompileError{
			Field:   field + ".kind",
			Message: fmt.Sprintf("unknown constant kind %q, must be one of: none, bool, int, uint", kind),
			Pos:     v.Pos(),
		}
	}
}

// parseIntegerFields extracts the width and the value of an integer constant.
func parseIntegerFields(v cue.Value, field string) (uint32, cue.Value, error) {
	bitsVal, err := requireField(v, "bits", field)
	if err != nil {
		return 0, cue.Value{}, err
	}
	bits, err := bitsVal.Uint64()
	if err != nil {
		return 0, cue.Value{}, formatCUEError(err)
	}
	if bits > math.MaxUint32 {
		return 0, cue.Value{}, &CompileError{
			Field:   field + ".bits",
			Message: fmt.Sprintf("width %d out of range", bits),
			Pos:     bitsVal.Pos(),
		}
	}

	valueVal, err := requireField(v, "value", field)
	if err != nil {
		return 0, cue.Value{}, err
	}
	return uint32(bits), valueVal, nil
}

func parseLocal(v cue.Value, field string) (mir.LocalID, error) {
	if !v.Exists() {
		return 0, &CompileError{
			Field:   field,
			Message: "local index is required",
			Pos:     v.Pos(),
		}
	}
	index, err := v.Uint64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	if index > math.MaxUint32 {
		return 0, &CompileError{
			Field:   field,
			Message: fmt.Sprintf("local index %d out of range", index),
			Pos:     v.Pos(),
		}
	}
	return mir.NewLocalID(uint32(index)), nil
}

func requireField(v cue.Value, label, field string) (cue.Value, error) {
	fv := v.LookupPath(cue.ParsePath(label))
	if !fv.Exists() {
		return cue.Value{}, &CompileError{
			Field:   field + "." + label,
			Message: label + " is required",
			Pos:     v.Pos(),
		}
	}
	return fv, nil
}

func requireString(v cue.Value, label, field string) (string, error) {
	fv, err := requireField(v, label, field)
	if err != nil {
		return "", err
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
