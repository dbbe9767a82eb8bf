package traverse

import (
	"errors"
	"slices"
	"testing"
)

func coords(pairs ...int) []Coord {
	out := make([]Coord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Coord{X: pairs[i], Y: pairs[i+1]})
	}
	return out
}

func TestAscendingDescending(t *testing.T) {
	if got := slices.Collect(Ascending(2, 3)); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("Ascending(2,3) = %v", got)
	}
	if got := slices.Collect(Descending(2, 3)); !slices.Equal(got, []int{4, 3, 2}) {
		t.Errorf("Descending(2,3) = %v", got)
	}
	if got := slices.Collect(Ascending(5, 0)); len(got) != 0 {
		t.Errorf("Ascending(5,0) = %v", got)
	}
}

func TestNesting(t *testing.T) {
	r := Rect{Width: 4, Height: 2}

	tests := []struct {
		name  string
		order Order
		want  []Coord
	}{
		{
			"columns walked top to bottom",
			LeftToRight(TopToBottom(nil)),
			coords(0, 0, 0, 1, 1, 0, 1, 1, 2, 0, 2, 1, 3, 0, 3, 1),
		},
		{
			"rows walked left to right",
			TopToBottom(LeftToRight(nil)),
			coords(0, 0, 1, 0, 2, 0, 3, 0, 0, 1, 1, 1, 2, 1, 3, 1),
		},
		{
			"reversed rows from the bottom",
			BottomToTop(RightToLeft(nil)),
			coords(3, 1, 2, 1, 1, 1, 0, 1, 3, 0, 2, 0, 1, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collect(tt.order.Walk(r, Partial{}))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got  %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestSingleAxisDefaultsToOrigin(t *testing.T) {
	r := Rect{Origin: Coord{X: 2, Y: 5}, Width: 3, Height: 1}
	got := Collect(LeftToRight(nil).Walk(r, Partial{}))
	want := coords(2, 5, 3, 5, 4, 5)
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRegionOffset(t *testing.T) {
	r := Rect{Origin: Coord{X: 4, Y: 1}, Width: 2, Height: 2}
	got := Collect(TopToBottom(LeftToRight(nil)).Walk(r, Partial{}))
	want := coords(4, 1, 5, 1, 4, 2, 5, 2)
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEarlyStop(t *testing.T) {
	r := Rect{Width: 8, Height: 8}
	n := 0
	for range TopToBottom(LeftToRight(nil)).Walk(r, Partial{}) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("expected 5 iterations, got %d", n)
	}
}

func TestRestartByReinvoking(t *testing.T) {
	o := LeftToRight(TopToBottom(nil))
	r := Rect{Width: 3, Height: 3}
	a := Collect(o.Walk(r, Partial{}))
	b := Collect(o.Walk(r, Partial{}))
	if !slices.Equal(a, b) {
		t.Error("stateless order produced different walks")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		o, err := Lookup(name, nil)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		got := Collect(o.Walk(Rect{Width: 2, Height: 2}, Partial{}))
		if len(got) != 2 {
			t.Errorf("%s: expected 2 coordinates, got %d", name, len(got))
		}
	}

	if _, err := Lookup("diagonal", nil); !errors.Is(err, ErrUnknownOrder) {
		t.Errorf("expected ErrUnknownOrder, got %v", err)
	}
}
