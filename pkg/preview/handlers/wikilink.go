package handlers

import (
	"strings"

	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/syntax"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// WikiLinkHandler renders [[target]] and [[target|alias]] spans.
//
// Path segments are hidden, not deleted: [[a/b/c]] displays only "c",
// and cursor entry restores the full raw form. Navigation always uses
// the full target, carried on the styled decoration's Data.
type WikiLinkHandler struct {
	preview.BaseHandler
}

// NewWikiLinkHandler creates the wiki-link handler.
func NewWikiLinkHandler() *WikiLinkHandler {
	return &WikiLinkHandler{BaseHandler: preview.NewBaseHandler("wiki-link")}
}

// CanHandle claims synthetic wiki-link nodes.
func (h *WikiLinkHandler) CanHandle(node *syntax.Node) bool {
	return node.TypeName == syntax.TypeWikiLink
}

// Handle emits bracket, prefix, and display decorations.
func (h *WikiLinkHandler) Handle(node *syntax.Node, ctx *preview.Context) ([]preview.Decoration, bool) {
	target := node.AttrString(syntax.AttrTarget)
	if target == "" {
		return nil, true
	}
	alias := node.AttrString(syntax.AttrAlias)

	editMode := ctx.EditModeAt(node.From)
	targetFrom := node.From + 2
	targetTo := targetFrom + len(target)

	decs := []preview.Decoration{
		preview.Marker(node.From, targetFrom, editMode, theme.ClassDim),
	}

	switch {
	case alias != "":
		// [[target|alias]]: the target and pipe hide; the alias styles.
		aliasFrom := targetTo + 1
		aliasTo := aliasFrom + len(alias)
		decs = append(decs, preview.Marker(targetFrom, aliasFrom, editMode, theme.ClassDim))
		body := preview.Styled(aliasFrom, aliasTo, theme.ClassWikiLink)
		body.Data = target
		decs = append(decs, body)

	default:
		// [[a/b/c]]: hide the "a/b/" prefix, style the basename.
		baseFrom := targetFrom
		if idx := strings.LastIndexByte(target, '/'); idx >= 0 {
			baseFrom = targetFrom + idx + 1
			decs = append(decs, preview.Marker(targetFrom, baseFrom, editMode, theme.ClassDim))
		}
		body := preview.Styled(baseFrom, targetTo, theme.ClassWikiLink)
		body.Data = target
		decs = append(decs, body)
	}

	decs = append(decs, preview.Marker(node.To-2, node.To, editMode, theme.ClassDim))
	return decs, true
}
