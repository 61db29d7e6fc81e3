package valid

import (
	"fmt"
	"strings"
)

// Error aggregates validation failures into a single error value.
// Messages preserves the order the failures were recorded in.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed: %d errors\n", len(e.Messages))
	for _, msg := range e.Messages {
		fmt.Fprintf(&b, "  - %s\n", msg)
	}
	return strings.TrimRight(b.String(), "\n")
}
