package preview

// Navigator receives navigation intents emitted by widgets (e.g. "zoom
// to block X"). The engine never resolves navigation itself.
type Navigator interface {
	NavigateToBlock(id string)
}

// TextEditor is the host surface's edit entry point. The checkbox widget
// uses it to rewrite exactly the single character inside the brackets of
// a task marker.
type TextEditor interface {
	ReplaceRange(from, to int, text string) error
}
