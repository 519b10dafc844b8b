package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0010capacity/oxinot/internal/ui/pretty"
	"github.com/0010capacity/oxinot/pkg/preview"
)

type renderFlags struct {
	cursor int
	focus  bool
	from   int
	to     int
}

func newRenderCommand(themePath, color *string) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a markdown file as live preview",
		Long: `Render a markdown file the way a live-preview editor would show it:
hidden syntax markers, styled constructs, and widgets in place of
checkboxes, closed code fences, and block embeds.

With --cursor and --focus, the line containing the cursor offset shows
its raw markup at reduced emphasis instead.`,
		Example: `  oxinot-preview render note.md
  oxinot-preview render note.md --cursor 12 --focus
  oxinot-preview render note.md --from 0 --to 200`,
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

			st := preview.State{
				CursorPos:     flags.cursor,
				EditorFocused: flags.focus,
				Viewport:      preview.Range{From: flags.from, To: flags.to},
			}
			if flags.cursor < 0 {
				st.CursorPos = 0
				st.EditorFocused = false
			}

			set, err := p.engine.Rebuild(cmd.Context(), doc, st)
			if err != nil {
				return err
			}

			fmt.Fprint(os.Stdout, p.surface.Paint(doc, set))
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.cursor, "cursor", -1, "cursor byte offset (-1 for none)")
	cmd.Flags().BoolVar(&flags.focus, "focus", false, "treat the editor as focused")
	cmd.Flags().IntVar(&flags.from, "from", 0, "viewport start offset")
	cmd.Flags().IntVar(&flags.to, "to", 0, "viewport end offset (0 for document end)")

	return cmd
}
