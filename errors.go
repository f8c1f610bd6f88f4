package reflow

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRoot is returned when a nil content node or box tree is
	// passed where a root is required.
	ErrNilRoot = errors.New("reflow: nil root")

	// ErrRootHidden is returned by BuildBoxTree when the root node has
	// display: none. A hidden root generates no boxes at all, so there
	// is nothing to lay out.
	ErrRootHidden = errors.New("reflow: root node is display:none")

	// ErrNoFonts is returned when a tree contains text but the engine
	// was built without a font catalog.
	ErrNoFonts = errors.New("reflow: engine has no font catalog")
)

// InvalidConstraintError reports a layout input that is out of range,
// such as a non-positive viewport width or font size.
type InvalidConstraintError struct {
	// Constraint names the offending input ("viewport width", "font size").
	Constraint string

	// Value is the rejected value.
	Value float64
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("reflow: invalid %s %v", e.Constraint, e.Value)
}
