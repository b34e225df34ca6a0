package navgraph

import (
	"errors"

	apperrors "github.com/matzehuels/navgraph/pkg/errors"
)

// Sentinel errors returned (wrapped in a [*ValidationError]) by
// [Graph.CalcReachability]. Test with errors.Is.
var (
	// ErrDuplicateNodeName is returned when two nodes share a name.
	ErrDuplicateNodeName = errors.New("duplicate node name")

	// ErrDuplicateEdge is returned when the same ordered pair is connected
	// twice, or when an undirected edge coexists with any other edge on the
	// same unordered pair.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrInvalidEdgeEndpoint is returned when an edge references a node
	// that does not exist.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrUnconnectedNodeViolation is returned when a node flagged unconnected
	// takes part in an edge.
	ErrUnconnectedNodeViolation = errors.New("unconnected node violation")

	// ErrGraphDisconnected is returned when the nodes not flagged unconnected
	// do not form a single connected component.
	ErrGraphDisconnected = errors.New("graph is disconnected")
)

// ValidationError describes why a graph failed [Graph.CalcReachability].
//
// Err is one of the Err* sentinels. Nodes and Edges name the offending
// elements; which ones are filled depends on the failure.
type ValidationError struct {
	Err    error    // Sentinel describing the failure kind
	Nodes  []string // Offending node names
	Edges  []Edge   // Offending edges
	Start  string   // Traversal start node, set for ErrGraphDisconnected
	Detail string   // Human-readable description
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Code maps the failure kind to an application error code.
func (e *ValidationError) Code() apperrors.Code {
	switch e.Err {
	case ErrDuplicateNodeName:
		return apperrors.ErrCodeDuplicateNode
	case ErrDuplicateEdge:
		return apperrors.ErrCodeDuplicateEdge
	case ErrInvalidEdgeEndpoint:
		return apperrors.ErrCodeInvalidEdge
	case ErrUnconnectedNodeViolation:
		return apperrors.ErrCodeUnconnectedNode
	case ErrGraphDisconnected:
		return apperrors.ErrCodeGraphDisconnected
	default:
		return apperrors.ErrCodeInternal
	}
}
