// Package export writes mapped geometry as a flat numeric contract.
// A 2D line is [x1, y1, x2, y2] and a 2D marker is [x, y]; 3D adds z to each point.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/sprout"
	"github.com/aretw0/sprout/pkg/domain"
)

// Document is the serialized form of a harvest.
type Document struct {
	RunID       string      `json:"run_id"`
	Preset      string      `json:"preset"`
	Seed        uint64      `json:"seed"`
	Dimension   int         `json:"dimension"`
	Generations int         `json:"generations"`
	FixedPoint  bool        `json:"fixed_point"`
	Symbols     int         `json:"symbols"`
	Lines       [][]float64 `json:"lines"`
	Markers     [][]float64 `json:"markers"`
	// Bounds is [minX, minY, maxX, maxY], set for non-empty 2D geometry.
	Bounds []float64 `json:"bounds,omitempty"`
}

// Flatten converts geometry into coordinate slices.
func Flatten[P domain.Point](g domain.Geometry[P]) (lines, markers [][]float64) {
	lines = make([][]float64, 0, len(g.Lines))
	for _, l := range g.Lines {
		lines = append(lines, append(l.Start.Coordinates(), l.End.Coordinates()...))
	}
	markers = make([][]float64, 0, len(g.Markers))
	for _, m := range g.Markers {
		markers = append(markers, m.Coordinates())
	}
	return lines, markers
}

// FromHarvest builds the document for a finished run.
func FromHarvest(h *sprout.Harvest) Document {
	doc := Document{
		RunID:       h.RunID,
		Preset:      h.Preset,
		Seed:        h.Seed,
		Dimension:   int(h.Dimension),
		Generations: len(h.Generations),
		FixedPoint:  h.FixedPoint,
		Symbols:     len(h.Final),
		Lines:       [][]float64{},
		Markers:     [][]float64{},
	}
	switch {
	case h.Geometry2D != nil:
		doc.Lines, doc.Markers = Flatten(*h.Geometry2D)
		if lo, hi, ok := domain.Bounds2D(*h.Geometry2D); ok {
			doc.Bounds = []float64{lo.X, lo.Y, hi.X, hi.Y}
		}
	case h.Geometry3D != nil:
		doc.Lines, doc.Markers = Flatten(*h.Geometry3D)
	}
	return doc
}

// WriteJSON encodes doc to w.
func WriteJSON(w io.Writer, doc Document, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode geometry: %w", err)
	}
	return nil
}

// WriteText writes one record per line: "L" followed by a line's coordinates
// or "M" followed by a marker's, space separated.
func WriteText(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	write := func(tag byte, coords []float64) {
		bw.WriteByte(tag)
		for _, c := range coords {
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	for _, l := range doc.Lines {
		write('L', l)
	}
	for _, m := range doc.Markers {
		write('M', m)
	}
	return bw.Flush()
}
