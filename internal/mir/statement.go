package mir

// Statement is a sealed interface over effects on the local table.
// Only Assign implements it.
type Statement interface {
	statement()
	String() string
}

// Assign evaluates Rhs and stores the result into Lhs.
// If Rhs is a Move, its local is consumed.
type Assign struct {
	Lhs LocalID
	Rhs Operand
}

func (Assign) statement() {}

func (s Assign) String() string {
	if s.Rhs == nil {
		return s.Lhs.String() + " = <nil>"
	}
	return s.Lhs.String() + " = " + s.Rhs.String()
}

// NewAssign creates an Assign statement.
func NewAssign(lhs LocalID, rhs Operand) Assign {
	return Assign{Lhs: lhs, Rhs: rhs}
}

// Consumed returns the local that executing stmt consumes, if any.
func Consumed(stmt Statement) (LocalID, bool) {
	switch s := stmt.(type) {
	case Assign:
		if m, ok := s.Rhs.(Move); ok {
			return m.Local, true
		}
	}
	return 0, false
}
