package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

const (
	tierWidth   = 28
	priceWidth  = 14
	amountWidth = 14
)

// CLIFormatter renders an estimate as a terminal table
type CLIFormatter struct {
	heading *color.Color
	active  *color.Color
	dim     *color.Color
	total   *color.Color
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(noColor bool) *CLIFormatter {
	f := &CLIFormatter{
		heading: color.New(color.Bold, color.FgCyan),
		active:  color.New(color.FgGreen),
		dim:     color.New(color.Faint),
		total:   color.New(color.Bold, color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{f.heading, f.active, f.dim, f.total} {
			c.DisableColor()
		}
	}
	return f
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the estimate
func (f *CLIFormatter) Render(w io.Writer, estimate *Estimate) error {
	var b strings.Builder

	title := estimate.Catalog
	if title == "" {
		title = "estimate"
	}
	b.WriteString(f.heading.Sprintf("%s (%s)", title, estimate.Currency))
	b.WriteString("\n")

	for _, section := range estimate.Sections {
		b.WriteString("\n")
		f.renderSection(&b, section)
	}

	b.WriteString("\n")
	b.WriteString(f.total.Sprintf("%-*s%*s %s", tierWidth+2+priceWidth, "Total", amountWidth, money(estimate.Total), estimate.Currency))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *CLIFormatter) renderSection(b *strings.Builder, s SectionEstimate) {
	mode := "flat"
	if s.Progressive {
		mode = "progressive"
	}
	b.WriteString(f.heading.Sprintf("%s", s.Type))
	fmt.Fprintf(b, "  quantity %s  %s  batch %s\n", s.Quantity, mode, s.Secability)

	if s.Loading {
		b.WriteString(f.dim.Sprint("  pricing data loading"))
		b.WriteString("\n")
		return
	}

	b.WriteString(f.dim.Sprintf("  %-*s%*s%*s", tierWidth, "TIER", priceWidth, "UNIT PRICE", amountWidth, "AMOUNT"))
	b.WriteString("\n")
	for _, tier := range s.Tiers {
		marker := "  "
		if tier.Active {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-*s%*s%*s", marker, tierWidth, tierRange(tier), priceWidth, tier.UnitPrice, amountWidth, money(tier.Amount))
		if tier.Active {
			line = f.active.Sprint(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "  %-*s%*s\n", tierWidth+priceWidth, "subtotal", amountWidth, money(s.Total))
}

func tierRange(t TierLine) string {
	if t.Max == nil {
		return fmt.Sprintf("[%s, ∞)", t.Min)
	}
	return fmt.Sprintf("[%s, %s)", t.Min, t.Max)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
