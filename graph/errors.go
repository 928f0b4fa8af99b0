package graph

import errors "gopkg.in/src-d/go-errors.v1"

// ErrCyclicExpression is returned by NewGraph if an expression tree
// contains a cycle. This should be unreachable from any tree-shaped
// expr.Expr built through the ordinary constructors; it exists as a fatal
// guard against a caller handing the builder a hand-assembled expression
// graph that isn't actually acyclic.
var ErrCyclicExpression = errors.NewKind("graph: cyclic expression detected while building the DAG")
