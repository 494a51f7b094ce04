package layout

// Point is a position in diagram coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Primitive is one drawable element of a diagram: either a [Segment] or a
// [Crossing]. The interface is sealed; renderers switch on the concrete
// type.
type Primitive interface {
	isPrimitive()
}

// Segment is a strand passing straight through one band.
type Segment struct {
	// Strand is the identity of the strand (its slot at row 0).
	Strand int
	// Band is the vertical band index the segment spans.
	Band int
	// Slot is the horizontal slot the strand occupies through the band.
	Slot int
	// From and To are the segment endpoints, From above To.
	From, To Point
}

func (Segment) isPrimitive() {}

// Crossing is two strands swapping adjacent slots within one band.
// The four corner points give both strand paths: the strand entering at
// TopLeft exits at BottomRight, the strand entering at TopRight exits at
// BottomLeft.
type Crossing struct {
	// Band is the vertical band index the crossing occupies.
	Band int
	// Index is the position of the generator in the word.
	Index int
	// LeftSlot is the smaller of the two slots swapped; the crossing
	// touches LeftSlot and LeftSlot+1.
	LeftSlot int
	// Sign is +1 when the left-entering strand passes in front, -1 when
	// it passes behind.
	Sign int
	// Over and Under are the strand identities by draw order.
	Over, Under int
	// Corner points of the crossing cell.
	TopLeft, TopRight, BottomLeft, BottomRight Point
}

func (Crossing) isPrimitive() {}

// OverPath returns the endpoints of the front strand's arc.
func (c Crossing) OverPath() (from, to Point) {
	if c.Sign > 0 {
		return c.TopLeft, c.BottomRight
	}
	return c.TopRight, c.BottomLeft
}

// UnderPath returns the endpoints of the back strand's arc, the one a
// renderer interrupts or occludes at the center.
func (c Crossing) UnderPath() (from, to Point) {
	if c.Sign > 0 {
		return c.TopRight, c.BottomLeft
	}
	return c.TopLeft, c.BottomRight
}

// Diagram is the complete output of [Build]: the ordered primitive
// sequence plus the canvas extent a renderer should size itself to.
// Diagrams are produced fresh per call and never shared.
type Diagram struct {
	// Strands is the braid's strand count.
	Strands int
	// Bands is the number of vertical bands, always at least 1.
	Bands int
	// Width and Height are the canvas extent in user units.
	Width, Height float64
	// Primitives in draw order: band by band, left to right.
	Primitives []Primitive
}

// Segments returns the straight segments in emission order.
func (d Diagram) Segments() []Segment {
	var out []Segment
	for _, p := range d.Primitives {
		if s, ok := p.(Segment); ok {
			out = append(out, s)
		}
	}
	return out
}

// Crossings returns the crossings in emission order.
func (d Diagram) Crossings() []Crossing {
	var out []Crossing
	for _, p := range d.Primitives {
		if c, ok := p.(Crossing); ok {
			out = append(out, c)
		}
	}
	return out
}
