package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/sprout/internal/presentation/graph"
	"github.com/aretw0/sprout/internal/presentation/tui"
	"github.com/aretw0/sprout/pkg/preset"
)

// ListPresets prints the registered presets as a table.
func ListPresets(opts Options) error {
	reg := preset.Default()
	tw := tabwriter.NewWriter(opts.stdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIM\tAXIOM\tGENERATIONS\tDESCRIPTION")
	for _, name := range reg.Names() {
		p, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%dD\t%s\t%d\t%s\n", p.Name, p.Dimension, p.Axiom, p.Generations, p.Description)
	}
	return tw.Flush()
}

// Inspect prints a preset report. With graphOnly it prints just the Mermaid rule graph.
func Inspect(opts Options, presetName string, graphOnly bool) error {
	profile, err := LoadProfile(opts, presetName)
	if err != nil {
		return err
	}

	p, err := preset.Default().Get(profile.Preset)
	if err != nil {
		return err
	}
	p = profile.ApplyTo(p)

	store, err := p.Rules()
	if err != nil {
		return err
	}
	mermaid := graph.GenerateMermaid(store, &graph.GraphOverlay{Axiom: p.AxiomSequence()})
	if graphOnly {
		_, err := fmt.Fprint(opts.stdout(), mermaid)
		return err
	}

	report := tui.InspectReport{Preset: p, Rules: store, Mermaid: mermaid}
	rendered, err := tui.NewRenderer(opts.stdout())(report.Markdown())
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = fmt.Fprint(opts.stdout(), rendered)
	return err
}
