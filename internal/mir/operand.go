package mir

// Operand is a sealed interface describing how a value is referenced at a
// use site. Only Copy, Move, and Const implement it.
//
// An operand names exactly one local or one constant.
type Operand interface {
	operand()
	String() string
}

// Copy reads the value stored in Local. The local stays usable afterwards.
type Copy struct {
	Local LocalID
}

func (Copy) operand() {}

func (o Copy) String() string {
	return "copy " + o.Local.String()
}

// Move reads the value stored in Local and consumes it. The local may not be
// used again until it is re-assigned.
type Move struct {
	Local LocalID
}

func (Move) operand() {}

func (o Move) String() string {
	return "move " + o.Local.String()
}

// Const embeds a constant by value.
type Const struct {
	Value Constant
}

func (Const) operand() {}

func (o Const) String() string {
	if o.Value == nil {
		return "const <nil>"
	}
	return "const " + o.Value.String()
}

// NewCopy creates a Copy operand.
func NewCopy(local LocalID) Copy {
	return Copy{Local: local}
}

// NewMove creates a Move operand.
func NewMove(local LocalID) Move {
	return Move{Local: local}
}

// NewConst creates a Const operand.
func NewConst(value Constant) Const {
	return Const{Value: value}
}

// OperandLocal returns the local read by op, if any.
func OperandLocal(op Operand) (LocalID, bool) {
	switch o := op.(type) {
	case Copy:
		return o.Local, true
	case Move:
		return o.Local, true
	default:
		return 0, false
	}
}

// IsConsuming reports whether evaluating op consumes its local.
func IsConsuming(op Operand) bool {
	_, ok := op.(Move)
	return ok
}
