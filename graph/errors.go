package graph

import "errors"

// ErrInvalidEdge is returned when an edge connects a node to itself.
var ErrInvalidEdge = errors.New("invalid edge: self-loops are not allowed")
