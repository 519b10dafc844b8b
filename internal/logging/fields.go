// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError     = "error"
	FieldPath      = "path"
	FieldComponent = "component"

	// Engine fields.
	FieldHandler  = "handler"
	FieldNode     = "node"
	FieldFrom     = "from"
	FieldTo       = "to"
	FieldKind     = "kind"
	FieldLine     = "line"
	FieldCursor   = "cursor"
	FieldDropped  = "dropped"
	FieldSpecs    = "specs"
	FieldDuration = "duration"

	// Widget fields.
	FieldWidget  = "widget"
	FieldBlockID = "block_id"
	FieldState   = "state"

	// CLI fields.
	FieldPosition = "position"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
