package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/raysh454/compliscan/internal/model"
)

// TextOptions controls the terminal adapter.
type TextOptions struct {
	// Color enables ANSI colors for tiers and badges.
	Color bool
}

const (
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiMagenta = "\x1b[35m"
	ansiReset   = "\x1b[0m"
)

// WriteText renders v for a terminal.
func WriteText(w io.Writer, v *View, opts TextOptions) error {
	if v == nil || !v.Visible {
		return nil
	}

	var b strings.Builder
	paint := func(color, s string) string {
		if !opts.Color || color == "" {
			return s
		}
		return color + s + ansiReset
	}

	fmt.Fprintf(&b, "Score: %s\n", paint(tierColor(v.Score.Tier), fmt.Sprintf("%d/100 [%s]", v.Score.Value, strings.ToUpper(string(v.Score.Tier)))))
	fmt.Fprintf(&b, "Status: %s\n", v.Status)
	fmt.Fprintf(&b, "%s\n", v.PagesLabel)

	for i, c := range v.Cards {
		b.WriteString("\n")
		if c.Synthetic {
			fmt.Fprintf(&b, "%s %s\n", paint(ansiGreen, "✔"), c.Title)
			fmt.Fprintf(&b, "   %s\n", c.Description.Text)
			continue
		}

		mark, color := "!", ansiYellow
		if c.Success {
			mark, color = "✔", ansiGreen
		} else if c.Severity == model.SeverityHigh || c.Severity == model.SeverityCritical {
			color = ansiRed
		}
		fmt.Fprintf(&b, "%d. %s %s [%s]\n", i+1, paint(color, mark), c.Title, paint(color, c.Badge))
		fmt.Fprintf(&b, "   %s: %s\n", c.Description.Label, c.Description.Text)
		if c.Context != nil {
			fmt.Fprintf(&b, "   %s: %q\n", c.Context.Label, c.Context.Text)
		}
		if c.Location != nil {
			locColor := ansiMagenta
			if c.Success {
				locColor = ansiGreen
			}
			fmt.Fprintf(&b, "   %s: %s\n", c.Location.Label, paint(locColor, c.Location.Text))
		}
		if c.Suggestion != nil {
			fmt.Fprintf(&b, "   %s: %s\n", c.Suggestion.Label, c.Suggestion.Text)
		}
		if c.Link != nil {
			fmt.Fprintf(&b, "   Page: %s\n", c.Link.Href)
		}
		if c.Image != nil {
			fmt.Fprintf(&b, "   Screenshot: %s\n", c.Image.Src)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func tierColor(t Tier) string {
	switch t {
	case TierSuccess:
		return ansiGreen
	case TierWarning:
		return ansiYellow
	case TierDanger:
		return ansiRed
	}
	return ""
}
