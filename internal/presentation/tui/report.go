package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/preset"
	"github.com/aretw0/sprout/pkg/rules"
)

// InspectReport describes a preset for the inspect command.
type InspectReport struct {
	Preset preset.Preset
	Rules  *rules.Store
	// Mermaid is the rule graph, embedded as a fenced block when set.
	Mermaid string
}

// Markdown renders the report as markdown.
func (r InspectReport) Markdown() string {
	var sb strings.Builder
	p := r.Preset

	fmt.Fprintf(&sb, "# %s\n\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", p.Description)
	}

	sb.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Dimension | %dD |\n", p.Dimension)
	fmt.Fprintf(&sb, "| Axiom | `%s` |\n", p.Axiom)
	fmt.Fprintf(&sb, "| Generations | %d |\n", p.Generations)
	fmt.Fprintf(&sb, "| Distance | %s |\n", formatFloat(p.Distance))
	fmt.Fprintf(&sb, "| Jitter | %t |\n", p.Jitter)
	switch p.Dimension {
	case domain.Dimension2D:
		fmt.Fprintf(&sb, "| Turn | %s° |\n", formatFloat(degrees(p.Turn2D.Rotation)))
	case domain.Dimension3D:
		fmt.Fprintf(&sb, "| Turn | azimuth %s°, declination %s° |\n",
			formatFloat(degrees(p.Turn3D.Azimuth)), formatFloat(degrees(p.Turn3D.Declination)))
	}

	if r.Rules != nil {
		sb.WriteString("\n## Rules\n\n")
		sb.WriteString("| Symbol | Replacement | Probability |\n|---|---|---|\n")
		for _, sym := range r.Rules.Symbols() {
			for _, rule := range r.Rules.Rules(sym) {
				fmt.Fprintf(&sb, "| `%s` | `%s` | %s |\n", sym, rule.Replacement, formatFloat(rule.Probability))
			}
		}
	}

	if r.Mermaid != "" {
		fmt.Fprintf(&sb, "\n## Graph\n\n```mermaid\n%s```\n", r.Mermaid)
	}
	return sb.String()
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
