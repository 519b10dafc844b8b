package cli

import (
	"fmt"
	"os"

	"github.com/0010capacity/oxinot/internal/ui/pretty"
	"github.com/0010capacity/oxinot/pkg/blockstore"
	"github.com/0010capacity/oxinot/pkg/document"
	"github.com/0010capacity/oxinot/pkg/preview"
	"github.com/0010capacity/oxinot/pkg/preview/handlers"
	"github.com/0010capacity/oxinot/pkg/preview/scan"
	gmsyntax "github.com/0010capacity/oxinot/pkg/syntax/goldmark"
	"github.com/0010capacity/oxinot/pkg/theme"
)

// pipeline bundles the pieces one render run needs.
type pipeline struct {
	engine  *preview.Engine
	surface *pretty.Surface
}

// newPipeline wires the engine against the terminal surface. The CLI
// has no workspace, so block fetches resolve against an empty store and
// widget interaction hooks stay nil.
func newPipeline(themePath string, colorEnabled bool) (*pipeline, error) {
	t := theme.Default()
	if themePath != "" {
		loaded, err := theme.Load(themePath)
		if err != nil {
			return nil, withExitCode(ExitThemeError, err)
		}
		t = loaded
	}

	styles := pretty.NewStyles(colorEnabled)
	delegate := pretty.NewDelegate()
	surface := pretty.NewSurface(styles, delegate)

	reg := preview.NewRegistry()
	handlers.RegisterAll(reg, handlers.Deps{
		Theme:    t,
		Delegate: delegate,
		Fetcher:  blockstore.NewMemoryStore(),
	})

	engine := preview.NewEngine(gmsyntax.NewProvider(), reg, scan.New())
	return &pipeline{engine: engine, surface: surface}, nil
}

// readDocument loads a file into an immutable snapshot.
func readDocument(path string) (*document.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, withExitCode(ExitIOError, fmt.Errorf("read %s: %w", path, err))
	}
	return document.New(data), nil
}
