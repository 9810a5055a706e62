package extfield

import "testing"

func TestBatchInverseMatchesIndividualInverse(t *testing.T) {
	in := []Element{
		FromBaseUint32(1),
		FromBaseUint32(2),
		FromBaseUint32(5),
		CurveB(),
		CurveA().Add(One()),
	}
	got := BatchInverse(in)
	if len(got) != len(in) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(in))
	}
	for i, e := range in {
		want := e.Inverse()
		if !got[i].Equal(want) {
			t.Fatalf("index %d: BatchInverse mismatch", i)
		}
		if !e.Mul(got[i]).Equal(One()) {
			t.Fatalf("index %d: e * e^-1 != 1", i)
		}
	}
}

func TestBatchInverseSingleElement(t *testing.T) {
	in := []Element{FromBaseUint32(7)}
	got := BatchInverse(in)
	if !got[0].Equal(in[0].Inverse()) {
		t.Fatalf("single-element BatchInverse mismatch")
	}
}
