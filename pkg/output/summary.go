package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vitestarter/vitestarter/pkg/logging"
	"github.com/vitestarter/vitestarter/pkg/types"
)

const (
	// SummaryTitle heads the end-of-run summary
	SummaryTitle = "✨ Setup complete! Features installed:"
	// SummaryFooter closes the end-of-run summary
	SummaryFooter = "🎉 Happy coding!"

	ruleWidth = 50
	wrapWidth = 80
)

// SummaryText renders the end-of-run summary as plain text
func SummaryText(sel types.Selection) string {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(&b, "\n%s\n%s\n", rule, SummaryTitle)
	for _, f := range sel {
		fmt.Fprintf(&b, "  - %s\n", f.Description)
	}
	b.WriteString(rule + "\n")

	for _, f := range sel {
		if len(f.Hints) == 0 && len(f.Notes) == 0 {
			continue
		}
		if f.SummaryTitle != "" {
			fmt.Fprintf(&b, "\n%s\n", f.SummaryTitle)
		}
		width := hintWidth(f.Hints)
		for _, h := range f.Hints {
			fmt.Fprintf(&b, "  %-*s - %s\n", width, h.Command, h.Description)
		}
		for _, note := range f.Notes {
			fmt.Fprintf(&b, "\n  Note: %s\n", note)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", SummaryFooter)
	return b.String()
}

// SummaryMarkdown renders the end-of-run summary as markdown
func SummaryMarkdown(sel types.Selection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", SummaryTitle)
	for _, f := range sel {
		fmt.Fprintf(&b, "- %s\n", f.Description)
	}

	for _, f := range sel {
		if len(f.Hints) == 0 && len(f.Notes) == 0 {
			continue
		}
		title := f.SummaryTitle
		if title == "" {
			title = f.Description
		}
		fmt.Fprintf(&b, "\n### %s\n\n", title)
		for _, h := range f.Hints {
			fmt.Fprintf(&b, "- `%s` %s\n", h.Command, h.Description)
		}
		for _, note := range f.Notes {
			fmt.Fprintf(&b, "\n> Note: %s\n", note)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", SummaryFooter)
	return b.String()
}

func hintWidth(hints []types.Hint) int {
	width := 0
	for _, h := range hints {
		if len(h.Command) > width {
			width = len(h.Command)
		}
	}
	return width
}

// Summary writes the end-of-run summary. Terminal output is rendered with
// glamour and falls back to plain text if rendering fails.
func (p *Printer) Summary(sel types.Selection) {
	if p.format == FormatTerminal {
		rendered, err := renderMarkdown(SummaryMarkdown(sel))
		if err == nil {
			fmt.Fprint(p.out, rendered)
			return
		}
		logger := logging.GetLogger("output")
		logger.Debug().Err(err).Msg("Falling back to plain summary")
	}
	fmt.Fprint(p.out, SummaryText(sel))
}

func renderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(md)
}
