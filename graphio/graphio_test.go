package graphio_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/graphistan/pursuit/game"
	"github.com/graphistan/pursuit/graphio"
)

//----------------------------------------------------------------------------//
// ReadGraph Tests
//----------------------------------------------------------------------------//

// TestReadGraph_Basic parses a small graph and checks adjacency,
// symmetry and the implicit self-loops.
func TestReadGraph_Basic(t *testing.T) {
	in := "4 3\n0 1\n1 2\n2 3\n"
	g, err := graphio.ReadGraph(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if g.Order() != 4 {
		t.Fatalf("Order = %d; want 4", g.Order())
	}
	if !g.HasEdge(1, 0) || !g.HasEdge(2, 1) || !g.HasEdge(3, 2) {
		t.Error("symmetric entries missing")
	}
	for v := 0; v < 4; v++ {
		if !g.HasEdge(v, v) {
			t.Errorf("self-loop missing at %d", v)
		}
	}
}

// TestReadGraph_WhitespaceTolerant accepts arbitrary token separation.
func TestReadGraph_WhitespaceTolerant(t *testing.T) {
	in := "  3   2\n\n0\t1\n 1    2 "
	g, err := graphio.ReadGraph(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 2) {
		t.Error("edges not parsed")
	}
}

// TestReadGraph_Errors exercises the malformed-input sentinels.
func TestReadGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", graphio.ErrBadHeader},
		{"HeaderNotNumbers", "a b\n", graphio.ErrBadHeader},
		{"HeaderTruncated", "5", graphio.ErrBadHeader},
		{"ZeroVertices", "0 0\n", game.ErrNonPositiveOrder},
		{"MissingEdgeLine", "3 2\n0 1\n", graphio.ErrBadEdge},
		{"EdgeNotNumbers", "3 1\nx y\n", graphio.ErrBadEdge},
		{"EndpointOutOfRange", "3 1\n0 3\n", game.ErrVertexRange},
		{"NegativeEndpoint", "3 1\n-1 2\n", game.ErrVertexRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ReadGraph(strings.NewReader(tc.in))
			if !errors.Is(err, tc.err) {
				t.Errorf("ReadGraph(%q) error = %v; want %v", tc.in, err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// WriteGraph / WriteSolution Tests
//----------------------------------------------------------------------------//

// TestWriteGraph_Format checks the exact emitted format: header, each
// edge once with u < v, self-loops omitted.
func TestWriteGraph_Format(t *testing.T) {
	g, _ := game.NewGraph(3)
	_ = g.AddEdge(2, 0)
	_ = g.AddEdge(0, 1)

	var buf bytes.Buffer
	if err := graphio.WriteGraph(&buf, g); err != nil {
		t.Fatal(err)
	}
	want := "3 2\n0 1\n0 2\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteGraph = %q; want %q", got, want)
	}
}

// TestRoundTrip writes a graph and reads it back unchanged.
func TestRoundTrip(t *testing.T) {
	g, _ := game.NewGraph(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {1, 3}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := graphio.WriteGraph(&buf, g); err != nil {
		t.Fatal(err)
	}
	back, err := graphio.ReadGraph(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if back.Order() != g.Order() {
		t.Fatalf("Order = %d; want %d", back.Order(), g.Order())
	}
	for u := 0; u < g.Order(); u++ {
		if !reflect.DeepEqual(back.Neighbors(u), g.Neighbors(u)) {
			t.Errorf("Neighbors(%d) = %v; want %v", u, back.Neighbors(u), g.Neighbors(u))
		}
	}
}

// TestWriteSolution prints the safe-vertex count only.
func TestWriteSolution(t *testing.T) {
	var buf bytes.Buffer
	if err := graphio.WriteSolution(&buf, []int{2, 5, 7}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "3\n" {
		t.Errorf("WriteSolution = %q; want %q", got, "3\n")
	}
}
