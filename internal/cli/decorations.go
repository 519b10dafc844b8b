package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0010capacity/oxinot/internal/ui/pretty"
	"github.com/0010capacity/oxinot/pkg/preview"
)

func newDecorationsCommand(themePath, color *string) *cobra.Command {
	var cursor int
	var focus bool

	cmd := &cobra.Command{
		Use:   "decorations <file>",
		Short: "Dump the computed decoration set",
		Long: `Compute the decoration set for a markdown file and print one entry
per line: byte span, kind, style class, and carried metadata. Useful
for debugging handler output and dispatch order.`,
		Example: `  oxinot-preview decorations note.md
  oxinot-preview decorations note.md --cursor 12 --focus`,
		Args: noteArg(),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			colorEnabled := pretty.IsColorEnabled(*color, os.Stdout)
			p, err := newPipeline(*themePath, colorEnabled)
			if err != nil {
				return err
			}

			st := preview.State{CursorPos: cursor, EditorFocused: focus}
			if cursor < 0 {
				st.CursorPos = 0
				st.EditorFocused = false
			}

			set, err := p.engine.Rebuild(cmd.Context(), doc, st)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "%s: %d decorations\n", args[0], set.Len())
			fmt.Fprint(os.Stdout, p.surface.FormatDecorations(set))
			return nil
		},
	}

	cmd.Flags().IntVar(&cursor, "cursor", -1, "cursor byte offset (-1 for none)")
	cmd.Flags().BoolVar(&focus, "focus", false, "treat the editor as focused")

	return cmd
}
