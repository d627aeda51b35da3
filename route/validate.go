package route

import "github.com/katalvlaran/pixpath/gridgraph"

// Validate checks, in order: start in bounds, dest in bounds, start valid,
// dest valid. The first failing check is returned as *EndpointError.
func Validate(g *gridgraph.GridGraph, start, dest gridgraph.Cell) error {
	if !g.InBounds(start) {
		return &EndpointError{Kind: ErrOutOfBounds, Endpoint: StartPoint, Cell: start}
	}
	if !g.InBounds(dest) {
		return &EndpointError{Kind: ErrOutOfBounds, Endpoint: DestPoint, Cell: dest}
	}
	if !g.IsValid(start) {
		return &EndpointError{Kind: ErrInvalidVertex, Endpoint: StartPoint, Cell: start}
	}
	if !g.IsValid(dest) {
		return &EndpointError{Kind: ErrInvalidVertex, Endpoint: DestPoint, Cell: dest}
	}

	return nil
}
