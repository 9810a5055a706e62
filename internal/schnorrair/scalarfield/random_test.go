package scalarfield

import (
	"testing"

	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/rng"
)

func TestRandomIsCanonicalAndVaries(t *testing.T) {
	r := rng.NewSmallRng(99)
	seen := map[[4]uint64]bool{}
	for i := 0; i < 32; i++ {
		e := Random(r)
		if !isCanonical(e.limbs) {
			t.Fatalf("Random produced a non-canonical representative")
		}
		seen[e.limbs] = true
	}
	if len(seen) < 30 {
		t.Errorf("Random produced only %d distinct values out of 32 draws", len(seen))
	}
}
