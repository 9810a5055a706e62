package smallfield

// KoalaBearModulus is the base-field prime p = 127*2^24 + 1, used for the
// curve's degree-8 extension field coefficients.
const KoalaBearModulus uint32 = 2130706433

// BabyBearModulus is the challenge-field prime p2 = 15*2^27 + 1, used to
// encode messages and digests for the Poseidon2 challenge hash.
const BabyBearModulus uint32 = 2013265921

var (
	// KoalaBear is the singleton field instance for the curve base field.
	KoalaBear = mustNew(KoalaBearModulus)
	// BabyBear is the singleton field instance for the challenge field.
	BabyBear = mustNew(BabyBearModulus)
)

func mustNew(modulus uint32) *Field {
	f, err := New(modulus)
	if err != nil {
		panic(err)
	}
	return f
}
