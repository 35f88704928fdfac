// Package insts provides Z80 opcode field decoding and encoding.
//
// An unprefixed Z80 opcode byte is split into the fields used by the
// standard Z80 decoding tables:
//   - x: bits [7:6]
//   - y: bits [5:3]
//   - z: bits [2:0]
//   - p: bits [5:4] (top two bits of y)
//   - q: bit 3 (bottom bit of y)
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	f := decoder.Decode(0x3E) // LD A,n
//	fmt.Printf("x=%d y=%d z=%d p=%d q=%d\n", f.X, f.Y, f.Z, f.P, f.Q)
//
// Form models the six text fields of an interactive decoder. Applying an
// edit to one field recomputes the others, or leaves the form untouched and
// returns a *ParseError when the text cannot be parsed.
package insts

// Opcode is an unprefixed Z80 opcode byte.
type Opcode uint8

// Field widths, in bits.
const (
	XBits = 2
	YBits = 3
	ZBits = 3
	PBits = 2
	QBits = 1
)

// Field masks.
const (
	XMask = 1<<XBits - 1 // 0x3
	YMask = 1<<YBits - 1 // 0x7
	ZMask = 1<<ZBits - 1 // 0x7
	PMask = 1<<PBits - 1 // 0x3
	QMask = 1<<QBits - 1 // 0x1
)

// FieldSet holds the decoded fields of an opcode.
// A FieldSet returned by Decode or Encode always satisfies Y == P<<1 | Q.
type FieldSet struct {
	X uint8 // bits [7:6]
	Y uint8 // bits [5:3]
	Z uint8 // bits [2:0]
	P uint8 // bits [5:4]
	Q uint8 // bit 3
}

// Opcode reassembles the opcode byte from X, Y and Z.
func (f FieldSet) Opcode() Opcode {
	return Opcode((f.X&XMask)<<6 | (f.Y&YMask)<<3 | f.Z&ZMask)
}

// Consistent reports whether the fields are in range and Y agrees with P and Q.
func (f FieldSet) Consistent() bool {
	return f.X <= XMask && f.Y <= YMask && f.Z <= ZMask &&
		f.P <= PMask && f.Q <= QMask &&
		f.Y == f.P<<1|f.Q
}

// Field identifies one of the six fields of a Form. The field that was
// edited is the pivot of a recomputation.
type Field uint8

// Form fields.
const (
	FieldOpcode Field = iota
	FieldX
	FieldY
	FieldZ
	FieldP
	FieldQ
)

var fieldNames = [...]string{
	FieldOpcode: "opcode",
	FieldX:      "x",
	FieldY:      "y",
	FieldZ:      "z",
	FieldP:      "p",
	FieldQ:      "q",
}

// Fields lists every form field in display order.
var Fields = []Field{FieldOpcode, FieldX, FieldY, FieldZ, FieldP, FieldQ}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}
