package expr

import "github.com/dolthub/cpsolver/interval"

// Literal is a constant value. Its node is born with a singleton interval
// [v, v]; the graph builder's node factory is responsible for seeding
// that when the DAG is constructed.
type Literal struct {
	Leaf
	Value interval.Scalar
}

// NewLiteral constructs a Literal wrapping v.
func NewLiteral(v interval.Scalar) *Literal {
	return &Literal{Value: v}
}

func (l *Literal) Equals(other Expr) bool {
	o, ok := other.(*Literal)
	if !ok {
		return false
	}
	if l.Value.Type != o.Value.Type {
		return false
	}
	c, err := interval.Compare(l.Value, o.Value)
	return err == nil && c == 0
}
