package circuit

import (
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/extfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/smallfield"
)

// Width is the total column count of the main trace: 24 extension-field
// blocks of L=8 small-field coefficients, plus 3 boolean flag columns.
const Width = 24*extfield.Degree + 3

// NumPublicValues is the count of public input values: 16 for pk, 16 for R.
const NumPublicValues = 4 * extfield.Degree

// PreprocessedWidth is the width of the generator-power preprocessed
// matrix: (2^i * G).x and (2^i * G).y.
const PreprocessedWidth = 2 * extfield.Degree

// Row holds one row of the main trace in structured form. ToColumns and
// RowFromColumns convert to and from the flat small-field column layout
// §4.5.3 specifies, so the structured form is purely an ergonomic layer
// over the same 195 scalar cells an external STARK runtime would see.
type Row struct {
	Acc    Point
	P      Point
	P2     Point
	P2Num  extfield.Element
	P2Den  extfield.Element
	P2Inv  extfield.Element
	P2Slp  extfield.Element
	Sum    Point
	SumNum extfield.Element
	SumDen extfield.Element
	SumInv extfield.Element
	SumSlp extfield.Element
	Addend Point
	AddOut Point
	AONum  extfield.Element
	AODen  extfield.Element
	AOInv  extfield.Element
	AOSlp  extfield.Element

	SBit           smallfield.Element
	EBit           smallfield.Element
	AccIsInfinity  smallfield.Element
}

// Point is a pair of extension-field coordinates as stored in the trace;
// it carries no infinity flag of its own (infinity is tracked only for
// the accumulator, via Row.AccIsInfinity).
type Point struct {
	X, Y extfield.Element
}

func zeroPoint() Point {
	return Point{X: extfield.Zero(), Y: extfield.Zero()}
}

// ToColumns flattens the row into the 195 small-field trace cells, in the
// block order §4.5.3 lists: acc, P, P2+intermediates, sum+intermediates,
// addend, add_out+intermediates, flags.
func (r Row) ToColumns() [Width]smallfield.Element {
	var out [Width]smallfield.Element
	cursor := 0
	writeCoeffs := func(e extfield.Element) {
		c := e.ToCoeffs()
		copy(out[cursor:cursor+extfield.Degree], c[:])
		cursor += extfield.Degree
	}

	writeCoeffs(r.Acc.X)
	writeCoeffs(r.Acc.Y)
	writeCoeffs(r.P.X)
	writeCoeffs(r.P.Y)
	writeCoeffs(r.P2.X)
	writeCoeffs(r.P2.Y)
	writeCoeffs(r.P2Num)
	writeCoeffs(r.P2Den)
	writeCoeffs(r.P2Inv)
	writeCoeffs(r.P2Slp)
	writeCoeffs(r.Sum.X)
	writeCoeffs(r.Sum.Y)
	writeCoeffs(r.SumNum)
	writeCoeffs(r.SumDen)
	writeCoeffs(r.SumInv)
	writeCoeffs(r.SumSlp)
	writeCoeffs(r.Addend.X)
	writeCoeffs(r.Addend.Y)
	writeCoeffs(r.AddOut.X)
	writeCoeffs(r.AddOut.Y)
	writeCoeffs(r.AONum)
	writeCoeffs(r.AODen)
	writeCoeffs(r.AOInv)
	writeCoeffs(r.AOSlp)

	out[cursor] = r.SBit
	out[cursor+1] = r.EBit
	out[cursor+2] = r.AccIsInfinity
	return out
}

// RowFromColumns is the inverse of ToColumns.
func RowFromColumns(cols [Width]smallfield.Element) Row {
	cursor := 0
	readCoeffs := func() extfield.Element {
		var c [extfield.Degree]smallfield.Element
		copy(c[:], cols[cursor:cursor+extfield.Degree])
		cursor += extfield.Degree
		return extfield.FromCoeffs(c)
	}

	var r Row
	r.Acc.X = readCoeffs()
	r.Acc.Y = readCoeffs()
	r.P.X = readCoeffs()
	r.P.Y = readCoeffs()
	r.P2.X = readCoeffs()
	r.P2.Y = readCoeffs()
	r.P2Num = readCoeffs()
	r.P2Den = readCoeffs()
	r.P2Inv = readCoeffs()
	r.P2Slp = readCoeffs()
	r.Sum.X = readCoeffs()
	r.Sum.Y = readCoeffs()
	r.SumNum = readCoeffs()
	r.SumDen = readCoeffs()
	r.SumInv = readCoeffs()
	r.SumSlp = readCoeffs()
	r.Addend.X = readCoeffs()
	r.Addend.Y = readCoeffs()
	r.AddOut.X = readCoeffs()
	r.AddOut.Y = readCoeffs()
	r.AONum = readCoeffs()
	r.AODen = readCoeffs()
	r.AOInv = readCoeffs()
	r.AOSlp = readCoeffs()

	r.SBit = cols[cursor]
	r.EBit = cols[cursor+1]
	r.AccIsInfinity = cols[cursor+2]
	return r
}
