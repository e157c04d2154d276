package tooling

import (
	"reflect"
	"testing"
)

func testTable() *Table {
	return &Table{
		path: "test.xml",
		tools: map[int]Tool{
			3: {SpindleID: 3, Diameter: 5.0},
			1: {SpindleID: 1, Diameter: 10.0},
			2: {SpindleID: 2, Diameter: 10.0},
			4: {SpindleID: 4, Diameter: 6.35},
		},
	}
}

func TestLookup(t *testing.T) {
	table := testTable()

	tool, ok := table.Lookup(2)
	if !ok || tool.Diameter != 10.0 {
		t.Errorf("Lookup(2) = (%v, %v), want 10mm tool", tool, ok)
	}
	if _, ok := table.Lookup(99); ok {
		t.Error("Lookup(99) should be absent")
	}
}

func TestLookupByDiameter(t *testing.T) {
	table := testTable()

	tests := []struct {
		name     string
		diameter float64
		tol      float64
		want     int // match count
	}{
		{"exact", 10.0, 0, 2},
		{"within default tolerance", 6.3, 0, 1},
		{"outside default tolerance", 6.0, 0, 0},
		{"wide tolerance", 6.0, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.LookupByDiameter(tt.diameter, tt.tol)
			if len(got) != tt.want {
				t.Errorf("LookupByDiameter(%g, %g) returned %d tools, want %d", tt.diameter, tt.tol, len(got), tt.want)
			}
		})
	}
}

func TestDiameterGroups(t *testing.T) {
	got := testTable().DiameterGroups()

	want := map[float64][]int{
		5.0:  {3},
		6.35: {4},
		10.0: {1, 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DiameterGroups() = %v, want %v", got, want)
	}
}

func TestAllSorted(t *testing.T) {
	tools := testTable().All()
	for i := 1; i < len(tools); i++ {
		if tools[i-1].SpindleID >= tools[i].SpindleID {
			t.Fatalf("All() not sorted by spindle id: %v", tools)
		}
	}
}
