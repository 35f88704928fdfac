package insts

// Decoder splits Z80 opcode bytes into fields and puts them back together.
type Decoder struct{}

// NewDecoder creates a new Z80 opcode field decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode splits an opcode byte into its fields. Every byte is valid.
func (d *Decoder) Decode(op Opcode) FieldSet {
	return FieldSet{
		X: uint8(op >> 6),
		Y: uint8(op>>3) & YMask,
		Z: uint8(op) & ZMask,
		P: uint8(op>>4) & PMask,
		Q: uint8(op>>3) & QMask,
	}
}

// Encode masks the fields to their widths and rebuilds the opcode.
//
// The pivot selects which side of the y/p/q link wins. When the pivot is
// FieldP or FieldQ, Y is derived from P and Q. Otherwise Y is taken as given
// and P and Q are derived from it. X and Z are masked and kept either way.
// Out-of-range values are truncated, never rejected.
func (d *Decoder) Encode(f FieldSet, pivot Field) (FieldSet, Opcode) {
	out := FieldSet{
		X: f.X & XMask,
		Z: f.Z & ZMask,
	}

	switch pivot {
	case FieldP, FieldQ:
		out.P = f.P & PMask
		out.Q = f.Q & QMask
		out.Y = out.P<<1 | out.Q
	default:
		out.Y = f.Y & YMask
		out.P = out.Y >> 1
		out.Q = out.Y & QMask
	}

	return out, out.Opcode()
}

var defaultDecoder = NewDecoder()

// Decode splits op with the default decoder.
func Decode(op Opcode) FieldSet {
	return defaultDecoder.Decode(op)
}

// Encode rebuilds an opcode with the default decoder.
func Encode(f FieldSet, pivot Field) (FieldSet, Opcode) {
	return defaultDecoder.Encode(f, pivot)
}
