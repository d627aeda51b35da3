package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixpath/gridgraph"
)

// Sentinel errors for search outcomes.
var (
	// ErrOutOfBounds indicates an endpoint outside the grid.
	ErrOutOfBounds = errors.New("route: point is out of bounds")

	// ErrInvalidVertex indicates an endpoint whose pixel is not traversable.
	ErrInvalidVertex = errors.New("route: point is not a valid vertex (pixel too dark)")

	// ErrUnreachable indicates the search exhausted its frontier without reaching the destination.
	ErrUnreachable = errors.New("route: destination is unreachable")

	// ErrBrokenChain indicates a predecessor chain that does not lead back to start.
	// It can only be caused by a bug in a search algorithm.
	ErrBrokenChain = errors.New("route: predecessor chain does not reach start")
)

// Endpoint names which end of the query failed validation.
type Endpoint int

const (
	// StartPoint is the source endpoint.
	StartPoint Endpoint = iota
	// DestPoint is the destination endpoint.
	DestPoint
)

// String returns "start" or "dest".
func (e Endpoint) String() string {
	switch e {
	case StartPoint:
		return "start"
	case DestPoint:
		return "dest"
	default:
		return fmt.Sprintf("Endpoint(%d)", int(e))
	}
}

// EndpointError reports a failed precondition on one endpoint.
// Kind is ErrOutOfBounds or ErrInvalidVertex.
type EndpointError struct {
	Kind     error
	Endpoint Endpoint
	Cell     gridgraph.Cell
}

// Error implements error.
func (e *EndpointError) Error() string {
	return fmt.Sprintf("%v: %s %v", e.Kind, e.Endpoint, e.Cell)
}

// Unwrap exposes Kind to errors.Is.
func (e *EndpointError) Unwrap() error {
	return e.Kind
}
