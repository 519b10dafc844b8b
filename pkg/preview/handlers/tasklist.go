package handlers

import (
	"regexp"

	"github.com/0010capacity/oxinot/pkg/document"
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/preview/widget"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// taskPattern recognizes a task list item against the node's line:
// bullet, bracketed state, then the task text.
var taskPattern = regexp.MustCompile(`^(\s*[*\-+]\s+)\[([ xX])\](\s+)(.*)$`)

// bulletPattern recognizes a plain list bullet for the generic item
// handler.
var bulletPattern = regexp.MustCompile(`^(\s*)([*\-+]|\d{1,9}[.)])(\s+)`)

// TaskListHandler renders `- [ ]` items with a checkbox widget at line
// start and the bracketed token hidden (dimmed in edit mode).
// Registered before the generic list item handler.
type TaskListHandler struct {
	preview.BaseHandler
	delegate preview.RenderDelegate
	editor   preview.TextEditor
}

// NewTaskListHandler creates the task list handler.
func NewTaskListHandler(delegate preview.RenderDelegate, editor preview.TextEditor) *TaskListHandler {
	return &TaskListHandler{
		BaseHandler: preview.NewBaseHandler("task-list"),
		delegate:    delegate,
		editor:      editor,
	}
}

// CanHandle claims list items whose first line is a task marker.
func (h *TaskListHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeListItem
}

// Handle emits the checkbox widget and marker decorations. A list item
// that is not a task continues dispatch to the generic item handler.
func (h *TaskListHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	line := ctx.Doc.LineAt(node.From)
	match := taskPattern.FindStringSubmatch(line.Text)
	if match == nil {
		return nil, false
	}

	bulletLen := len(match[1])
	markerFrom := line.From + bulletLen // at '['
	statePos := markerFrom + 1          // the char inside the brackets
	markerTo := markerFrom + 3          // past ']'
	checked := match[2] == "x" || match[2] == "X"

	editMode := ctx.EditMode(line.Number)

	box := widget.NewCheckbox(h.delegate, h.editor, statePos, checked)
	decs := []preview.Decoration{
		preview.WidgetAt(line.From, line.From, box),
		preview.Marker(markerFrom, markerTo, editMode, theme.ClassDim),
	}
	if checked {
		taskFrom := markerTo + len(match[3])
		if taskFrom < line.To {
			decs = append(decs, preview.Styled(taskFrom, line.To, theme.ClassTaskDone))
		}
	}
	return decs, true
}

// ListItemHandler styles the bullet of plain list items. It follows the
// task list handler in registration order; task items never reach it.
type ListItemHandler struct {
	preview.BaseHandler
}

// NewListItemHandler creates the generic list item handler.
func NewListItemHandler() *ListItemHandler {
	return &ListItemHandler{BaseHandler: preview.NewBaseHandler("list-item")}
}

// CanHandle claims list items.
func (h *ListItemHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeListItem
}

// Handle styles the bullet marker.
func (h *ListItemHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	return bulletDecorations(ctx.Doc.LineAt(node.From), ctx), true
}

// bulletDecorations styles the bullet token of a list line. The raw
// marker stays visible; live preview only restyles it.
func bulletDecorations(line document.LineInfo, ctx *preview.Context) []preview.Decoration {
	match := bulletPattern.FindStringSubmatch(line.Text)
	if match == nil {
		return nil
	}
	from := line.From + len(match[1])
	to := from + len(match[2])
	if ctx.EditMode(line.Number) {
		return []preview.Decoration{preview.Dimmed(from, to, theme.ClassDim)}
	}
	return []preview.Decoration{preview.Styled(from, to, "cm-list-bullet")}
}
