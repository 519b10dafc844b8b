package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/0010capacity/oxinot/internal/ui/pretty"
)

// HelpStyles holds the Lipgloss styles used in command help output.
// oxinot-preview is a flat CLI: one root command, four subcommands,
// no aliases, so the palette stays small.
type HelpStyles struct {
	Command     lipgloss.Style // command path and usage lines
	Heading     lipgloss.Style // section headers (Usage, Flags, ...)
	Subcommand  lipgloss.Style // subcommand names in the command list
	Flag        lipgloss.Style // -f, --flag tokens
	Description lipgloss.Style // short descriptions
	Example     lipgloss.Style // the Examples block
	Dim         lipgloss.Style // flag value types, version string
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:     plain,
			Heading:     plain,
			Subcommand:  plain,
			Flag:        plain,
			Description: plain,
			Example:     plain,
			Dim:         plain,
		}
	}
	return &HelpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Description: lipgloss.NewStyle(),
		Example:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled help for the oxinot-preview commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a help formatter matching the color mode
// resolved against the given writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

// usageTemplate covers the sections this CLI actually produces: usage
// lines, examples, the subcommand list, and local plus inherited flags.
func (h *HelpFormatter) usageTemplate() string {
	return `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagUsages .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagUsages .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`
}

// helpTemplate prefixes the usage template with the command path,
// version, and long description.
func (h *HelpFormatter) helpTemplate() string {
	return `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailing }}

{{end}}` + h.usageTemplate()
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":     h.styles.Command.Render,
		"styleHeading":     h.styles.Heading.Render,
		"styleSubcommand":  h.styles.Subcommand.Render,
		"styleDescription": h.styles.Description.Render,
		"styleExample":     h.styles.Example.Render,
		"styleDim":         h.styles.Dim.Render,
		"styleFlagUsages":  h.styleFlagUsages,
		"rpad":             rpad,
		"trimTrailing":     trimTrailing,
	}
}

// styleFlagUsages restyles pflag's FlagUsages block line by line.
func (h *HelpFormatter) styleFlagUsages(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine colors the flag tokens and value type in one usage
// line, leaving pflag's layout intact. Lines that don't split into a
// flag part and a description pass through unchanged.
func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	flagPart, desc, ok := splitFlagLine(trimmed)
	if !ok {
		return line
	}

	var b strings.Builder
	b.WriteString(indent)
	for i, token := range strings.Fields(flagPart) {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case strings.HasPrefix(token, "-"):
			clean := strings.TrimSuffix(token, ",")
			b.WriteString(h.styles.Flag.Render(clean))
			if clean != token {
				b.WriteString(",")
			}
		default:
			// Value type hint: string, int, ...
			b.WriteString(h.styles.Dim.Render(token))
		}
	}
	b.WriteString("   ")
	b.WriteString(h.styles.Description.Render(desc))
	return b.String()
}

// splitFlagLine splits "-c, --cursor int   cursor byte offset" at the
// first run of two or more spaces.
func splitFlagLine(line string) (flagPart, desc string, ok bool) {
	spaceStart := -1
	for idx, char := range line {
		if char == ' ' {
			if spaceStart < 0 {
				spaceStart = idx
			}
			continue
		}
		if spaceStart >= 0 && idx-spaceStart >= 2 {
			return strings.TrimRight(line[:spaceStart], " "), line[idx:], true
		}
		spaceStart = -1
	}
	return "", "", false
}

// ApplyToCommand installs the styled help and usage renderers on a
// Cobra command tree.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(funcs).Parse(h.usageTemplate())
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(funcs).Parse(h.helpTemplate())
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// rpad pads a string on the right to the given width.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailing removes trailing whitespace from each line.
func trimTrailing(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
