package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/errors"
)

func mustWord(t *testing.T, strands int, gens ...int) *braid.Word {
	t.Helper()
	w, err := braid.New(strands, gens...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return w
}

func TestBuildEmptyWordTwoStrands(t *testing.T) {
	w := mustWord(t, 2)

	d, err := Build(w, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	segs := d.Segments()
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if len(d.Crossings()) != 0 {
		t.Errorf("got %d crossings, want 0", len(d.Crossings()))
	}
	if d.Bands != 1 {
		t.Errorf("Bands = %d, want 1", d.Bands)
	}

	// Both segments span the full height at their slot centers.
	for i, s := range segs {
		if s.From.Y != 0 || s.To.Y != d.Height {
			t.Errorf("segment %d spans y %v..%v, want 0..%v", i, s.From.Y, s.To.Y, d.Height)
		}
		wantX := (float64(i) + 0.5) * DefaultStrandSpacing
		if s.From.X != wantX || s.To.X != wantX {
			t.Errorf("segment %d at x %v, want %v", i, s.From.X, wantX)
		}
	}
}

func TestBuildSingleCrossing(t *testing.T) {
	w := mustWord(t, 3, 1)

	d, err := Build(w, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	crossings := d.Crossings()
	if len(crossings) != 1 {
		t.Fatalf("got %d crossings, want 1", len(crossings))
	}
	segs := d.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}

	c := crossings[0]
	if c.LeftSlot != 0 || c.Band != 0 {
		t.Errorf("crossing at slot %d band %d, want slot 0 band 0", c.LeftSlot, c.Band)
	}
	// Positive generator: strand 0 (left) crosses in front of strand 1.
	if c.Over != 0 || c.Under != 1 || c.Sign != 1 {
		t.Errorf("crossing over/under/sign = %d/%d/%d, want 0/1/1", c.Over, c.Under, c.Sign)
	}

	// Strand 2 continues straight in slot 2.
	if segs[0].Strand != 2 || segs[0].Slot != 2 {
		t.Errorf("segment strand/slot = %d/%d, want 2/2", segs[0].Strand, segs[0].Slot)
	}
}

func TestBuildNegativeGeneratorFlipsOver(t *testing.T) {
	w := mustWord(t, 2, -1)

	d, err := Build(w, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	c := d.Crossings()[0]
	if c.Sign != -1 || c.Over != 1 || c.Under != 0 {
		t.Errorf("over/under/sign = %d/%d/%d, want 1/0/-1", c.Over, c.Under, c.Sign)
	}

	// The over arc runs top-right to bottom-left for a negative crossing.
	from, to := c.OverPath()
	if from != c.TopRight || to != c.BottomLeft {
		t.Errorf("OverPath() = %v..%v, want %v..%v", from, to, c.TopRight, c.BottomLeft)
	}
	from, to = c.UnderPath()
	if from != c.TopLeft || to != c.BottomRight {
		t.Errorf("UnderPath() = %v..%v, want %v..%v", from, to, c.TopLeft, c.BottomRight)
	}
}

func TestBuildDeterministic(t *testing.T) {
	w := mustWord(t, 4, 1, -3, 2, 2, -1)
	cfg := DefaultConfig()

	first, err := Build(w, cfg)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	second, err := Build(w, cfg)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Build() is not deterministic for identical inputs")
	}
}

func TestBuildFrameExtent(t *testing.T) {
	w := mustWord(t, 4, 1, 2, 3)
	cfg := Config{StrandSpacing: 10, RowSpacing: 25}

	d, err := Build(w, cfg)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if d.Width != 40 {
		t.Errorf("Width = %v, want 40", d.Width)
	}
	if d.Height != 75 {
		t.Errorf("Height = %v, want 75", d.Height)
	}
	if d.Bands != 3 {
		t.Errorf("Bands = %d, want 3", d.Bands)
	}
}

func TestBuildStrandContinuity(t *testing.T) {
	// Every strand must leave band b at the same slot it enters band b+1,
	// whether through a segment or a crossing.
	w := mustWord(t, 5, 1, 3, -2, 4, -1, 2)

	d, err := Build(w, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// exit[b][strand] = x coordinate at the bottom of band b.
	exit := make([]map[int]float64, d.Bands)
	enter := make([]map[int]float64, d.Bands)
	for b := range exit {
		exit[b] = map[int]float64{}
		enter[b] = map[int]float64{}
	}
	for _, p := range d.Primitives {
		switch v := p.(type) {
		case Segment:
			enter[v.Band][v.Strand] = v.From.X
			exit[v.Band][v.Strand] = v.To.X
		case Crossing:
			a, b2 := v.Over, v.Under
			fromA, toA := v.OverPath()
			fromB, toB := v.UnderPath()
			enter[v.Band][a] = fromA.X
			exit[v.Band][a] = toA.X
			enter[v.Band][b2] = fromB.X
			exit[v.Band][b2] = toB.X
		}
	}

	for b := 0; b+1 < d.Bands; b++ {
		for strand, x := range exit[b] {
			if nx, ok := enter[b+1][strand]; !ok || nx != x {
				t.Errorf("strand %d exits band %d at x=%v but enters band %d at x=%v",
					strand, b, x, b+1, nx)
			}
		}
	}
}

func TestBuildCompactPacksDisjointCrossings(t *testing.T) {
	// s1 and s3 touch disjoint slot pairs, so compact mode shares a band;
	// the following s2 touches slot 1 and must open a new one.
	w := mustWord(t, 4, 1, 3, 2)

	d, err := Build(w, Config{StrandSpacing: 40, RowSpacing: 60, Compact: true})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if d.Bands != 2 {
		t.Fatalf("Bands = %d, want 2", d.Bands)
	}

	crossings := d.Crossings()
	if len(crossings) != 3 {
		t.Fatalf("got %d crossings, want 3", len(crossings))
	}
	wantBands := map[int]int{0: 0, 1: 0, 2: 1} // generator index -> band
	for _, c := range crossings {
		if c.Band != wantBands[c.Index] {
			t.Errorf("crossing %d in band %d, want %d", c.Index, c.Band, wantBands[c.Index])
		}
	}

	// Extended mode keeps one band per crossing.
	ext, err := Build(w, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if ext.Bands != 3 {
		t.Errorf("extended Bands = %d, want 3", ext.Bands)
	}
}

func TestBuildCompactRepeatedGenerator(t *testing.T) {
	// The same generator twice can never share a band.
	w := mustWord(t, 2, 1, 1, 1)

	d, err := Build(w, Config{StrandSpacing: 40, RowSpacing: 60, Compact: true})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if d.Bands != 3 {
		t.Errorf("Bands = %d, want 3", d.Bands)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", DefaultConfig(), true},
		{"zero strand spacing", Config{StrandSpacing: 0, RowSpacing: 10}, false},
		{"negative row spacing", Config{StrandSpacing: 10, RowSpacing: -1}, false},
		{"nan spacing", Config{StrandSpacing: math.NaN(), RowSpacing: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate() should fail")
				}
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("error code = %q, want INVALID_CONFIG", errors.GetCode(err))
				}
			}
		})
	}
}

func TestBuildRejectsBadConfig(t *testing.T) {
	w := mustWord(t, 3, 1)

	_, err := Build(w, Config{StrandSpacing: -5, RowSpacing: 10})
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Build() error = %v, want INVALID_CONFIG", err)
	}
}
