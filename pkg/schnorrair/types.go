package schnorrair

// Wire sizes for the three serialized types. Serialization itself is out
// of scope here (no wire format is implemented), but the sizes are kept
// as named constants since callers comparing against other
// implementations of this scheme expect them: a signing key is a 32-byte
// scalar, a verifying key a 40-byte compressed curve point, and a
// signature their concatenation.
const (
	SKSize  = 32
	PKSize  = 40
	SigSize = PKSize + SKSize
)
