package graph

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/sprout/pkg/domain"
	"github.com/aretw0/sprout/pkg/rules"
)

// RuleSource is the read side of a rule store needed to draw its graph.
type RuleSource interface {
	Symbols() []domain.Symbol
	Rules(sym domain.Symbol) []rules.Rule
}

// GraphOverlay contains run state to highlight on the graph.
type GraphOverlay struct {
	Axiom domain.Sequence
}

// GenerateMermaid produces a Mermaid flowchart of which symbols each rule head produces.
// Turtle control symbols (+ - [ ]) are left out. Shapes:
// - Rule head: [Rectangle]
// - Draw symbol F: [/Parallelogram/]
// - Marker M: ((Circle))
// - Other terminals: (Rounded)
// Edges carry the trigger probability when it is not 1.
func GenerateMermaid(src RuleSource, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	heads := src.Symbols()
	isHead := make(map[domain.Symbol]bool, len(heads))
	for _, h := range heads {
		isHead[h] = true
	}

	declared := make(map[domain.Symbol]bool)
	declare := func(sym domain.Symbol) {
		if declared[sym] {
			return
		}
		declared[sym] = true
		opener, closer := "(", ")"
		switch {
		case isHead[sym]:
			opener, closer = "[", "]"
		case sym == domain.SymbolDraw:
			opener, closer = "[/", "/]"
		case sym == domain.SymbolMarker:
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(sym), opener, escapeLabel(sym.String()), closer))
	}

	for _, head := range heads {
		declare(head)
		for _, rule := range src.Rules(head) {
			arrow := "-->"
			if rule.Probability != domain.DefaultProbability {
				arrow = fmt.Sprintf("-- \"p=%s\" -->", strconv.FormatFloat(rule.Probability, 'g', 3, 64))
			}
			if len(rule.Replacement) == 0 {
				sb.WriteString(fmt.Sprintf("    %s %s empty_%s((\"∅\"))\n", sanitizeMermaidID(head), arrow, sanitizeMermaidID(head)))
				continue
			}
			seen := make(map[domain.Symbol]bool)
			for _, sym := range rule.Replacement {
				if isControl(sym) || seen[sym] {
					continue
				}
				seen[sym] = true
				declare(sym)
				sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(head), arrow, sanitizeMermaidID(sym)))
			}
		}
	}

	if overlay != nil && len(overlay.Axiom) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef axiom fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		styled := make(map[domain.Symbol]bool)
		for _, sym := range overlay.Axiom {
			if isControl(sym) || styled[sym] || !declared[sym] {
				continue
			}
			styled[sym] = true
			sb.WriteString(fmt.Sprintf("    class %s axiom;\n", sanitizeMermaidID(sym)))
		}
	}

	return sb.String()
}

func isControl(sym domain.Symbol) bool {
	switch sym {
	case domain.SymbolTurn, domain.SymbolTurnFlipped, domain.SymbolPush, domain.SymbolPop:
		return true
	}
	return false
}

// sanitizeMermaidID keeps ASCII letters and digits; anything else becomes its code point.
func sanitizeMermaidID(sym domain.Symbol) string {
	r := rune(sym)
	if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return "s_" + string(r)
	}
	return fmt.Sprintf("u_%x", r)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
