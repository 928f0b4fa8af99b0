package expr

import "github.com/dolthub/cpsolver/interval"

// Column is an unresolved leaf value — a table column, in the calling
// query engine's terms. Column nodes start at the default (-∞, +∞)
// interval over their DataType; the caller seeds a concrete interval via
// graph.Graph.AssignIntervals before evaluation.
type Column struct {
	Leaf
	Name string
	Type interval.DataType
}

// NewColumn constructs a Column named name with datatype t.
func NewColumn(name string, t interval.DataType) *Column {
	return &Column{Name: name, Type: t}
}

func (c *Column) Equals(other Expr) bool {
	o, ok := other.(*Column)
	return ok && c.Name == o.Name && c.Type == o.Type
}
