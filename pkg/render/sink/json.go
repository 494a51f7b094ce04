package sink

import (
	"encoding/json"

	"github.com/strandlab/braidviz/pkg/layout"
)

// jsonDiagram is the serialization shape for external renderers. Segments
// and crossings are split into separate arrays so consumers do not need a
// tagged-union decoder; both keep the layout's emission order.
type jsonDiagram struct {
	Strands   int            `json:"strands"`
	Bands     int            `json:"bands"`
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	Segments  []jsonSegment  `json:"segments"`
	Crossings []jsonCrossing `json:"crossings"`
}

type jsonSegment struct {
	Strand int          `json:"strand"`
	Band   int          `json:"band"`
	Slot   int          `json:"slot"`
	From   layout.Point `json:"from"`
	To     layout.Point `json:"to"`
}

type jsonCrossing struct {
	Band      int          `json:"band"`
	Index     int          `json:"index"`
	LeftSlot  int          `json:"left_slot"`
	Sign      int          `json:"sign"`
	Over      int          `json:"over"`
	Under     int          `json:"under"`
	OverFrom  layout.Point `json:"over_from"`
	OverTo    layout.Point `json:"over_to"`
	UnderFrom layout.Point `json:"under_from"`
	UnderTo   layout.Point `json:"under_to"`
}

// MarshalDiagram serializes the diagram's primitive sequence as indented
// JSON for consumption by external renderers.
func MarshalDiagram(d layout.Diagram) ([]byte, error) {
	out := jsonDiagram{
		Strands:   d.Strands,
		Bands:     d.Bands,
		Width:     d.Width,
		Height:    d.Height,
		Segments:  []jsonSegment{},
		Crossings: []jsonCrossing{},
	}

	for _, p := range d.Primitives {
		switch v := p.(type) {
		case layout.Segment:
			out.Segments = append(out.Segments, jsonSegment{
				Strand: v.Strand,
				Band:   v.Band,
				Slot:   v.Slot,
				From:   v.From,
				To:     v.To,
			})
		case layout.Crossing:
			overFrom, overTo := v.OverPath()
			underFrom, underTo := v.UnderPath()
			out.Crossings = append(out.Crossings, jsonCrossing{
				Band:      v.Band,
				Index:     v.Index,
				LeftSlot:  v.LeftSlot,
				Sign:      v.Sign,
				Over:      v.Over,
				Under:     v.Under,
				OverFrom:  overFrom,
				OverTo:    overTo,
				UnderFrom: underFrom,
				UnderTo:   underTo,
			})
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
