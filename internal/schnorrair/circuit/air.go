// Package circuit implements the single-block interleaved double-and-add
// AIR that proves s*G + (-e)*pk = R without revealing s. The column
// layout, constraint groups, and trace-generation algorithm are grounded
// on the chord-and-tangent gadgets used throughout the retrieved curve
// and circuit sources, adapted to the AIRConstraints registration idiom
// the teacher's constraint builder uses.
package circuit

import (
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/extfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/smallfield"
)

// ConstraintKind distinguishes where in the trace a constraint applies,
// mirroring the teacher's AddInitialConstraint / AddTransitionConstraint
// / AddTerminalConstraint split.
type ConstraintKind int

const (
	Boundary ConstraintKind = iota
	EveryRow
	Transition
	Terminal
)

// View exposes everything a constraint evaluator may read: the current
// (and, for transition constraints, next) main-trace row, the matching
// preprocessed row(s), and the public inputs.
type View struct {
	Cur, Next       Row
	PrepCur         Point
	PrepNext        Point
	PK, R           Point
	IsFirst, IsLast bool
}

// Constraint is one named residual evaluator. A satisfied trace makes
// every returned coefficient zero on every row the Kind applies to.
type Constraint struct {
	Name string
	Kind ConstraintKind
	Eval func(v View) []smallfield.Element
}

// SchnorrAir is the AIR for the single-block scalar-multiplication
// circuit described by the Sign/Verify relation s*G + (-e)*pk = R.
type SchnorrAir struct{}

func (SchnorrAir) Width() int            { return Width }
func (SchnorrAir) NumPublicValues() int  { return NumPublicValues }
func (SchnorrAir) PreprocessedWidth() int { return PreprocessedWidth }

func one() smallfield.Element  { return smallfield.KoalaBear.One() }
func zero() smallfield.Element { return smallfield.KoalaBear.Zero() }

func sub1(e smallfield.Element) smallfield.Element { return one().Sub(e) }

// pointResidual returns the 16 coefficient-wise residuals of claimed - want.
func pointResidual(claimed, want Point) []smallfield.Element {
	out := make([]smallfield.Element, 0, 16)
	cx, wx := claimed.X.ToCoeffs(), want.X.ToCoeffs()
	cy, wy := claimed.Y.ToCoeffs(), want.Y.ToCoeffs()
	for i := 0; i < extfield.Degree; i++ {
		out = append(out, cx[i].Sub(wx[i]))
	}
	for i := 0; i < extfield.Degree; i++ {
		out = append(out, cy[i].Sub(wy[i]))
	}
	return out
}

func extResidual(claimed, want extfield.Element) []smallfield.Element {
	cc, wc := claimed.ToCoeffs(), want.ToCoeffs()
	out := make([]smallfield.Element, extfield.Degree)
	for i := range out {
		out[i] = cc[i].Sub(wc[i])
	}
	return out
}

func guardExt(guard smallfield.Element, e extfield.Element) extfield.Element {
	return e.MulBase(guard)
}

// onCurveResidual returns the residual of p's curve equation, zero when p
// satisfies y^2 = x^3 + a*x + b.
func onCurveResidual(p Point) []smallfield.Element {
	lhs := p.Y.Mul(p.Y)
	rhs := p.X.Mul(p.X).Mul(p.X).Add(extfield.CurveA().Mul(p.X)).Add(extfield.CurveB())
	return extResidual(lhs, rhs)
}

// guardedOnCurveResidual is onCurveResidual scaled by guard, so the check
// only bites on rows where guard is 1.
func guardedOnCurveResidual(guard smallfield.Element, p Point) []smallfield.Element {
	lhs := guardExt(guard, p.Y.Mul(p.Y))
	rhs := guardExt(guard, p.X.Mul(p.X).Mul(p.X).Add(extfield.CurveA().Mul(p.X)).Add(extfield.CurveB()))
	return extResidual(lhs, rhs)
}

// doublingGadget computes the tangent-doubling intermediates for p,
// mirroring enforce_double_constraints. If the denominator is zero, inv
// and slope are zero instead of panicking, so a guarded-off or invalid
// row yields residuals rather than aborting evaluation.
func doublingGadget(p Point) (p2 Point, num, den, inv, slope extfield.Element) {
	three := extfield.FromBaseUint32(3)
	num = p.X.Mul(p.X).Mul(three).Add(extfield.CurveA())
	den = p.Y.Add(p.Y)
	inv, _ = den.TryInverse()
	slope = num.Mul(inv)
	x3 := slope.Mul(slope).Sub(p.X).Sub(p.X)
	y3 := slope.Mul(p.X.Sub(x3)).Sub(p.Y)
	p2 = Point{X: x3, Y: y3}
	return
}

// chordGadget computes the chord-addition intermediates for p+q,
// mirroring enforce_add_constraints. If p.X == q.X, inv and slope are
// zero instead of panicking, so a guarded-off row (such as an infinite
// accumulator with a zero addend) still evaluates to zero residuals.
func chordGadget(p, q Point) (sum Point, num, den, inv, slope extfield.Element) {
	num = q.Y.Sub(p.Y)
	den = q.X.Sub(p.X)
	inv, _ = den.TryInverse()
	slope = num.Mul(inv)
	x3 := slope.Mul(slope).Sub(p.X).Sub(q.X)
	y3 := slope.Mul(p.X.Sub(x3)).Sub(p.Y)
	sum = Point{X: x3, Y: y3}
	return
}

// doublingGadgetChecked is doublingGadget, but reports ok=false instead of
// panicking when the tangent denominator is zero (p.Y == 0).
func doublingGadgetChecked(p Point) (p2 Point, num, den, inv, slope extfield.Element, ok bool) {
	three := extfield.FromBaseUint32(3)
	num = p.X.Mul(p.X).Mul(three).Add(extfield.CurveA())
	den = p.Y.Add(p.Y)
	inv, ok = den.TryInverse()
	if !ok {
		return Point{}, num, den, extfield.Zero(), extfield.Zero(), false
	}
	slope = num.Mul(inv)
	x3 := slope.Mul(slope).Sub(p.X).Sub(p.X)
	y3 := slope.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point{X: x3, Y: y3}, num, den, inv, slope, true
}

// chordGadgetChecked is chordGadget, but reports ok=false instead of
// panicking when p.X == q.X (the chord is vertical or the points coincide).
func chordGadgetChecked(p, q Point) (sum Point, num, den, inv, slope extfield.Element, ok bool) {
	num = q.Y.Sub(p.Y)
	den = q.X.Sub(p.X)
	inv, ok = den.TryInverse()
	if !ok {
		return Point{}, num, den, extfield.Zero(), extfield.Zero(), false
	}
	slope = num.Mul(inv)
	x3 := slope.Mul(slope).Sub(p.X).Sub(q.X)
	y3 := slope.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point{X: x3, Y: y3}, num, den, inv, slope, true
}

// Eval returns the full constraint set: boundary conditions, the
// every-row boolean and arithmetic gadgets (groups A-F), and the
// transition relations tying row i to row i+1.
func (SchnorrAir) Eval() []Constraint {
	var cs []Constraint

	cs = append(cs,
		Constraint{"first-row P is pk", Boundary, func(v View) []smallfield.Element {
			if !v.IsFirst {
				return nil
			}
			return pointResidual(v.Cur.P, v.PK)
		}},
		Constraint{"first-row acc is infinity", Boundary, func(v View) []smallfield.Element {
			if !v.IsFirst {
				return nil
			}
			out := pointResidual(v.Cur.Acc, zeroPoint())
			out = append(out, v.Cur.AccIsInfinity.Sub(one()))
			return out
		}},
		Constraint{"last-row acc is R", Terminal, func(v View) []smallfield.Element {
			if !v.IsLast {
				return nil
			}
			out := pointResidual(v.Cur.Acc, v.R)
			out = append(out, v.Cur.AccIsInfinity.Sub(zero()))
			return out
		}},
	)

	boolCheck := func(e smallfield.Element) smallfield.Element { return e.Mul(sub1(e)) }
	cs = append(cs, Constraint{"bits and flag are boolean", EveryRow, func(v View) []smallfield.Element {
		return []smallfield.Element{
			boolCheck(v.Cur.SBit),
			boolCheck(v.Cur.EBit),
			boolCheck(v.Cur.AccIsInfinity),
		}
	}})

	// Group A: public-key doubling, unconditional.
	cs = append(cs, Constraint{"public-key doubling", EveryRow, func(v View) []smallfield.Element {
		p2, num, den, inv, slope := doublingGadget(v.Cur.P)
		var out []smallfield.Element
		out = append(out, extResidual(v.Cur.P2Num, num)...)
		out = append(out, extResidual(v.Cur.P2Den, den)...)
		out = append(out, extResidual(v.Cur.P2Den.Mul(v.Cur.P2Inv), extfield.One())...)
		out = append(out, extResidual(v.Cur.P2Slp, slope)...)
		out = append(out, pointResidual(v.Cur.P2, p2)...)
		_ = inv
		return out
	}})

	// Group B: P + G_i, unconditional (assumes P.X != G_i.X).
	cs = append(cs, Constraint{"pubkey-plus-generator sum", EveryRow, func(v View) []smallfield.Element {
		sum, num, den, inv, slope := chordGadget(v.Cur.P, v.PrepCur)
		var out []smallfield.Element
		out = append(out, extResidual(v.Cur.SumNum, num)...)
		out = append(out, extResidual(v.Cur.SumDen, den)...)
		out = append(out, extResidual(v.Cur.SumDen.Mul(v.Cur.SumInv), extfield.One())...)
		out = append(out, extResidual(v.Cur.SumSlp, slope)...)
		out = append(out, pointResidual(v.Cur.Sum, sum)...)
		_ = inv
		return out
	}})

	// Group C: addend selection among {O, G_i, P, sum} by (s_bit, e_bit).
	cs = append(cs, Constraint{"addend selection", EveryRow, func(v View) []smallfield.Element {
		s, e := v.Cur.SBit, v.Cur.EBit
		wG := s.Mul(sub1(e))
		wP := sub1(s).Mul(e)
		wSum := s.Mul(e)
		wantX := v.PrepCur.X.MulBase(wG).Add(v.Cur.P.X.MulBase(wP)).Add(v.Cur.Sum.X.MulBase(wSum))
		wantY := v.PrepCur.Y.MulBase(wG).Add(v.Cur.P.Y.MulBase(wP)).Add(v.Cur.Sum.Y.MulBase(wSum))
		return pointResidual(v.Cur.Addend, Point{X: wantX, Y: wantY})
	}})

	addSel := func(v View) smallfield.Element {
		return one().Sub(sub1(v.Cur.SBit).Mul(sub1(v.Cur.EBit)))
	}

	// Group D: accumulator update when both acc and addend are finite.
	cs = append(cs, Constraint{"accumulator chord update", EveryRow, func(v View) []smallfield.Element {
		guard := sub1(v.Cur.AccIsInfinity).Mul(addSel(v))
		sum, num, den, inv, slope := chordGadget(v.Cur.Acc, v.Cur.Addend)
		var out []smallfield.Element
		out = append(out, extResidual(guardExt(guard, v.Cur.AONum), guardExt(guard, num))...)
		out = append(out, extResidual(guardExt(guard, v.Cur.AODen), guardExt(guard, den))...)
		out = append(out, extResidual(guardExt(guard, v.Cur.AODen.Mul(v.Cur.AOInv)), guardExt(guard, extfield.One()))...)
		out = append(out, extResidual(guardExt(guard, v.Cur.AOSlp), guardExt(guard, slope))...)
		out = append(out, extResidual(guardExt(guard, v.Cur.AddOut.X), guardExt(guard, sum.X))...)
		out = append(out, extResidual(guardExt(guard, v.Cur.AddOut.Y), guardExt(guard, sum.Y))...)
		_ = inv
		return out
	}})

	// Group E: accumulator update when acc is the point at infinity.
	cs = append(cs, Constraint{"accumulator infinity update", EveryRow, func(v View) []smallfield.Element {
		guard := v.Cur.AccIsInfinity.Mul(addSel(v))
		var out []smallfield.Element
		out = append(out, extResidual(guardExt(guard, v.Cur.AddOut.X), guardExt(guard, v.Cur.Addend.X))...)
		out = append(out, extResidual(guardExt(guard, v.Cur.AddOut.Y), guardExt(guard, v.Cur.Addend.Y))...)
		return out
	}})

	// Group A: the running public-key power, and its doubling, must stay
	// on curve, unconditionally every row.
	cs = append(cs, Constraint{"P stays on curve", EveryRow, func(v View) []smallfield.Element {
		return onCurveResidual(v.Cur.P)
	}})
	cs = append(cs, Constraint{"P2 stays on curve", EveryRow, func(v View) []smallfield.Element {
		return onCurveResidual(v.Cur.P2)
	}})

	// Group B: the pubkey-plus-generator sum, and the preprocessed
	// generator it is built from, must stay on curve, unconditionally.
	cs = append(cs, Constraint{"pubkey-plus-generator sum stays on curve", EveryRow, func(v View) []smallfield.Element {
		return onCurveResidual(v.Cur.Sum)
	}})
	cs = append(cs, Constraint{"preprocessed generator stays on curve", EveryRow, func(v View) []smallfield.Element {
		return onCurveResidual(v.PrepCur)
	}})

	// Group C: the selected addend must stay on curve whenever the add
	// selector is active; when inactive the selection constraint forces
	// it to the zero point, which would otherwise fail the check.
	cs = append(cs, Constraint{"addend stays on curve when selected", EveryRow, func(v View) []smallfield.Element {
		return guardedOnCurveResidual(addSel(v), v.Cur.Addend)
	}})

	// Group F: the running accumulator must stay on curve whenever it is
	// not the point at infinity.
	cs = append(cs, Constraint{"accumulator stays on curve when finite", EveryRow, func(v View) []smallfield.Element {
		return guardedOnCurveResidual(sub1(v.Cur.AccIsInfinity), v.Cur.Acc)
	}})

	cs = append(cs,
		Constraint{"P transitions to its double", Transition, func(v View) []smallfield.Element {
			return pointResidual(v.Next.P, v.Cur.P2)
		}},
		Constraint{"accumulator transitions per add selector", Transition, func(v View) []smallfield.Element {
			sel := addSel(v)
			wantX := v.Cur.AddOut.X.MulBase(sel).Add(v.Cur.Acc.X.MulBase(sub1(sel)))
			wantY := v.Cur.AddOut.Y.MulBase(sel).Add(v.Cur.Acc.Y.MulBase(sub1(sel)))
			return pointResidual(v.Next.Acc, Point{X: wantX, Y: wantY})
		}},
		Constraint{"infinity flag transitions per add selector", Transition, func(v View) []smallfield.Element {
			sel := addSel(v)
			want := sub1(sel).Mul(v.Cur.AccIsInfinity)
			return []smallfield.Element{v.Next.AccIsInfinity.Sub(want)}
		}},
	)

	return cs
}
