package syntax

// Attribute keys set by the Provider on tree nodes.
const (
	// AttrLevel is the heading level (int, 1-6).
	AttrLevel = "level"

	// AttrInfo is the fenced-code info string (string, may be empty).
	AttrInfo = "info"

	// AttrClosed reports whether a fenced code block has a closing
	// fence (bool).
	AttrClosed = "closed"

	// AttrCodeFrom / AttrCodeTo bound the code content between the
	// fences (int offsets).
	AttrCodeFrom = "codeFrom"
	AttrCodeTo   = "codeTo"

	// AttrTextFrom / AttrTextTo bound the inner text of a marker-
	// delimited inline construct (int offsets).
	AttrTextFrom = "textFrom"
	AttrTextTo   = "textTo"

	// AttrURL is a link destination (string).
	AttrURL = "url"

	// AttrOrdered marks an ordered list (bool).
	AttrOrdered = "ordered"
)

// Attribute keys set by the line scanner on synthetic nodes.
const (
	// AttrTarget is a wiki-link target path (string).
	AttrTarget = "target"

	// AttrAlias is a wiki-link display alias (string, may be empty).
	AttrAlias = "alias"

	// AttrBlockID is a block reference identifier (string).
	AttrBlockID = "blockID"

	// AttrCalloutType is the lowercase callout type token (string).
	AttrCalloutType = "calloutType"

	// AttrCalloutFold is the callout fold marker, "+", "-" or "" (string).
	AttrCalloutFold = "calloutFold"

	// AttrTitle is a callout title (string).
	AttrTitle = "title"

	// AttrColumns is a table row's cell count (int).
	AttrColumns = "columns"

	// AttrAlone marks a construct with nothing but whitespace sharing
	// its line (bool). Block embeds require it.
	AttrAlone = "alone"

	// AttrTitleFrom is the absolute offset where a callout's title
	// text begins (int).
	AttrTitleFrom = "titleFrom"

	// AttrLabel is a footnote label (string).
	AttrLabel = "label"
)
