package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0010capacity/oxinot/internal/logging"
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/preview/handlers"
	"github.com/0010capacity/oxinot/pkg/theme"
)

const formatJSON = "json"

// handlerInfo represents a handler in JSON output.
type handlerInfo struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
}

func newHandlersCommand(themePath *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "handlers",
		Short: "List registered construct handlers",
		Long: `List every construct handler in dispatch order. Order matters: the
first handler that claims a node wins, so task lists sit before plain
list items and block embeds before inline block refs.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			t := theme.Default()
			if *themePath != "" {
				loaded, err := theme.Load(*themePath)
				if err != nil {
					return err
				}
				t = loaded
			}

			reg := preview.NewRegistry()
			handlers.RegisterAll(reg, handlers.Deps{Theme: t})

			if format == formatJSON {
				return outputHandlersJSON(reg)
			}

			logger := logging.NewInteractive()
			logger.Info("registered handlers")
			for i, h := range reg.Handlers() {
				logger.Info(h.Name(), logging.FieldPosition, i+1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// outputHandlersJSON outputs handlers as a JSON array.
func outputHandlersJSON(reg *preview.Registry) error {
	infos := make([]handlerInfo, 0, reg.Len())
	for i, h := range reg.Handlers() {
		infos = append(infos, handlerInfo{Position: i + 1, Name: h.Name()})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding handlers: %w", err)
	}
	return nil
}
