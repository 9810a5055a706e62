package circuit

import (
	"testing"

	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/curve"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/extfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/rng"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/scalarfield"
)

// evalTrace applies every constraint to every row it is defined on
// (transition constraints skip the final row, which has no successor)
// and returns every nonzero residual coefficient it finds.
func evalTrace(rows []Row, prep []Point, pk, r Point) []string {
	air := SchnorrAir{}
	constraints := air.Eval()
	n := len(rows)

	var failures []string
	for i := 0; i < n; i++ {
		v := View{
			Cur:     rows[i],
			PrepCur: prep[i],
			PK:      pk,
			R:       r,
			IsFirst: i == 0,
			IsLast:  i == n-1,
		}
		if i+1 < n {
			v.Next = rows[i+1]
			v.PrepNext = prep[i+1]
		}
		for _, c := range constraints {
			if c.Kind == Transition && v.IsLast {
				continue
			}
			for _, residual := range c.Eval(v) {
				if !residual.IsZero() {
					failures = append(failures, c.Name)
				}
			}
		}
	}
	return failures
}

func honestWitness(t *testing.T) (scalarfield.Element, scalarfield.Element, curve.Affine, curve.Affine) {
	t.Helper()
	r := rng.NewSmallRng(1)
	sk := scalarfield.Random(r)
	pk := curve.MulGenerator(sk)

	nonce := scalarfield.Random(r)
	e := scalarfield.Random(r)
	s := nonce.Add(e.Mul(sk))
	negE := e.Neg()
	expected := curve.DoubleScalarMulBasepoint(s, negE, pk)
	return s, negE, pk, expected
}

func TestHonestTraceSatisfiesAllConstraints(t *testing.T) {
	s, negE, pk, expected := honestWitness(t)
	rows, prep, err := BuildTrace(s, negE, pk, expected)
	if err != nil {
		t.Fatalf("BuildTrace failed on an honest witness: %v", err)
	}

	failures := evalTrace(rows, prep, Point{X: pk.X, Y: pk.Y}, Point{X: expected.X, Y: expected.Y})
	if len(failures) != 0 {
		t.Fatalf("honest trace violated constraints: %v", failures)
	}
}

func TestTamperedTraceViolatesAConstraint(t *testing.T) {
	s, negE, pk, expected := honestWitness(t)
	rows, prep, err := BuildTrace(s, negE, pk, expected)
	if err != nil {
		t.Fatalf("BuildTrace failed on an honest witness: %v", err)
	}

	rows[10].Acc.X = rows[10].Acc.X.Add(extfield.One())

	failures := evalTrace(rows, prep, Point{X: pk.X, Y: pk.Y}, Point{X: expected.X, Y: expected.Y})
	if len(failures) == 0 {
		t.Fatalf("tampering with a trace cell did not trip any constraint")
	}
}

func TestBuildTraceRejectsWrongExpectedResult(t *testing.T) {
	s, negE, pk, expected := honestWitness(t)
	wrong := expected.Add(curve.Generator())
	if _, _, err := BuildTrace(s, negE, pk, wrong); err == nil {
		t.Fatalf("BuildTrace accepted a witness whose accumulator does not match the claimed result")
	}
}

func TestPreprocessedRowIsGeneratorPower(t *testing.T) {
	prep := PreprocessedTrace(8)
	g := curve.Generator()
	for i, row := range prep {
		want := pointFromAffine(g)
		if !row.X.Equal(want.X) || !row.Y.Equal(want.Y) {
			t.Fatalf("preprocessed row %d does not equal 2^%d * G", i, i)
		}
		g = g.Double()
	}
}

func TestConfigValidation(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if err := DefaultConfig().WithHeight(3).Validate(); err == nil {
		t.Fatalf("non-power-of-two height should fail validation")
	}
	if err := DefaultConfig().WithHeight(4).Validate(); err == nil {
		t.Fatalf("height smaller than the scalar bit width should fail validation")
	}
}
