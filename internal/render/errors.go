package render

import "fmt"

// MalformedError reports content that breaks a renderer's contract: a
// field that must be present when its parent block is present.
type MalformedError struct {
	Section string
	Field   string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed %s content: missing required field %s", e.Section, e.Field)
}
