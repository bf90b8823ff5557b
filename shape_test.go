package shape

import (
	"sync"
	"testing"
)

// square is a caller-defined figure; Area accepts any Shape.
type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

func TestArea_MatchesDirectCall(t *testing.T) {
	circle, err := NewCircle(2)
	if err != nil {
		t.Fatalf("NewCircle error = %v", err)
	}
	right, err := NewTriangle(3, 4, 5)
	if err != nil {
		t.Fatalf("NewTriangle error = %v", err)
	}
	equilateral, err := NewTriangle(6, 6, 6)
	if err != nil {
		t.Fatalf("NewTriangle error = %v", err)
	}

	tests := []struct {
		name string
		s    Shape
	}{
		{"circle", circle},
		{"right triangle", right},
		{"equilateral triangle", equilateral},
		{"custom square", square{side: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := Area(tt.s), tt.s.Area(); got != want {
				t.Errorf("Area(%v) = %v, want %v", tt.s, got, want)
			}
		})
	}
}

func TestArea_Heterogeneous(t *testing.T) {
	circle, _ := NewCircle(1)
	tri, _ := NewTriangle(3, 4, 5)

	var total float64
	for _, s := range []Shape{circle, tri, square{side: 2}} {
		total += Area(s)
	}

	if want := circle.Area() + 6 + 4; !approxEqual(total, want) {
		t.Errorf("total area = %v, want %v", total, want)
	}
}

func TestShapes_ConcurrentReaders(t *testing.T) {
	circle, _ := NewCircle(2)
	tri, _ := NewTriangle(3, 4, 5)
	wantCircle, wantTri := circle.Area(), tri.Area()

	var wg sync.WaitGroup
	const goroutines = 50

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Area(circle); got != wantCircle {
				t.Errorf("concurrent circle area = %v, want %v", got, wantCircle)
			}
			if got := Area(tri); got != wantTri {
				t.Errorf("concurrent triangle area = %v, want %v", got, wantTri)
			}
			if !tri.IsRight() {
				t.Error("concurrent IsRight() = false, want true")
			}
			if _, err := NewTriangle(1, 1, 5); err == nil {
				t.Error("concurrent NewTriangle(1, 1, 5) succeeded, want error")
			}
		}()
	}

	wg.Wait()
}
