package circuit

import "testing"

func TestRowColumnRoundTrip(t *testing.T) {
	s, negE, pk, expected := honestWitness(t)
	rows, _, err := BuildTrace(s, negE, pk, expected)
	if err != nil {
		t.Fatalf("BuildTrace failed on an honest witness: %v", err)
	}

	for _, want := range []Row{rows[0], rows[1], rows[255]} {
		cols := want.ToColumns()
		got := RowFromColumns(cols)
		if !got.Acc.X.Equal(want.Acc.X) || !got.P.Y.Equal(want.P.Y) || !got.AddOut.X.Equal(want.AddOut.X) {
			t.Fatalf("round trip through ToColumns/RowFromColumns lost data")
		}
		if !got.SBit.Equal(want.SBit) || !got.EBit.Equal(want.EBit) || !got.AccIsInfinity.Equal(want.AccIsInfinity) {
			t.Fatalf("round trip lost a flag column")
		}
	}
}

func TestColumnWidthMatchesLayout(t *testing.T) {
	var r Row
	cols := r.ToColumns()
	if len(cols) != Width {
		t.Fatalf("ToColumns produced %d columns, want %d", len(cols), Width)
	}
	if Width != 195 {
		t.Fatalf("Width = %d, want 195", Width)
	}
}
