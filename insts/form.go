package insts

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// ParseOpcode parses opcode text of the form "0x" followed by hex digits.
// Up to 32 bits of hex are accepted and the value is masked to 8 bits.
func ParseOpcode(text string) (Opcode, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 || (s[:2] != "0x" && s[:2] != "0X") {
		return 0, &ParseError{Field: FieldOpcode, Text: text, Err: ErrMissingPrefix}
	}

	v, err := strconv.ParseUint(strings.TrimSpace(s[2:]), 16, 32)
	if err != nil {
		return 0, &ParseError{
			Field: FieldOpcode,
			Text:  text,
			Err:   xerrors.Errorf("invalid hex value: %w", err),
		}
	}

	return Opcode(v & 0xFF), nil
}

// FormatOpcode renders op as "0x" plus uppercase hex without leading zeros.
func FormatOpcode(op Opcode) string {
	return "0x" + strings.ToUpper(strconv.FormatUint(uint64(op), 16))
}

// ParseValue parses the decimal text of a field. Values wider than 8 bits
// keep their low 8 bits; callers mask to the field width afterwards.
func ParseValue(field Field, text string) (uint8, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &ParseError{
			Field: field,
			Text:  text,
			Err:   xerrors.Errorf("invalid decimal value: %w", err),
		}
	}

	return uint8(v), nil
}

// ParseField maps a field name to its tag. Names are case-insensitive and
// "op" is accepted for the opcode.
func ParseField(name string) (Field, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "op" {
		return FieldOpcode, nil
	}

	for _, f := range Fields {
		if fieldNames[f] == n {
			return f, nil
		}
	}

	return 0, xerrors.Errorf("%q: %w", name, ErrUnknownField)
}

// Form holds the text of the six fields of an interactive decoder.
type Form struct {
	Opcode string
	X      string
	Y      string
	Z      string
	P      string
	Q      string
}

// NewForm returns the form showing op and its fields.
func NewForm(op Opcode) Form {
	f := Decode(op)

	return Form{
		Opcode: FormatOpcode(op),
		X:      decimal(f.X),
		Y:      decimal(f.Y),
		Z:      decimal(f.Z),
		P:      decimal(f.P),
		Q:      decimal(f.Q),
	}
}

// Text returns the text of one field.
func (f Form) Text(field Field) string {
	switch field {
	case FieldOpcode:
		return f.Opcode
	case FieldX:
		return f.X
	case FieldY:
		return f.Y
	case FieldZ:
		return f.Z
	case FieldP:
		return f.P
	case FieldQ:
		return f.Q
	}
	return ""
}

// With returns a copy of the form with one field's text replaced.
func (f Form) With(field Field, text string) Form {
	switch field {
	case FieldOpcode:
		f.Opcode = text
	case FieldX:
		f.X = text
	case FieldY:
		f.Y = text
	case FieldZ:
		f.Z = text
	case FieldP:
		f.P = text
	case FieldQ:
		f.Q = text
	}
	return f
}

// Apply sets the text of the edited field and recomputes the others.
//
// Editing the opcode rewrites all five fields. Editing p or q rewrites y and
// the opcode. Editing x, y or z rewrites p, q and the opcode. The edited
// field keeps the text as typed.
//
// If any text needed for the recomputation does not parse, Apply returns the
// receiver unchanged along with a *ParseError.
func (f Form) Apply(field Field, text string) (Form, error) {
	if field > FieldQ {
		return f, xerrors.Errorf("field %d: %w", field, ErrUnknownField)
	}

	next := f.With(field, text)

	if field == FieldOpcode {
		op, err := ParseOpcode(text)
		if err != nil {
			return f, err
		}

		fs := Decode(op)
		next.X = decimal(fs.X)
		next.Y = decimal(fs.Y)
		next.Z = decimal(fs.Z)
		next.P = decimal(fs.P)
		next.Q = decimal(fs.Q)

		return next, nil
	}

	in, err := next.parse(field)
	if err != nil {
		return f, err
	}

	fs, op := Encode(in, field)
	if field == FieldP || field == FieldQ {
		next.Y = decimal(fs.Y)
	} else {
		next.P = decimal(fs.P)
		next.Q = decimal(fs.Q)
	}
	next.Opcode = FormatOpcode(op)

	return next, nil
}

// Resolve parses x, y and z and returns the fields and opcode they encode.
func (f Form) Resolve() (FieldSet, Opcode, error) {
	in, err := f.parse(FieldY)
	if err != nil {
		return FieldSet{}, 0, err
	}

	fs, op := Encode(in, FieldY)
	return fs, op, nil
}

// parse reads the texts Encode needs for the given pivot.
func (f Form) parse(pivot Field) (FieldSet, error) {
	var (
		in  FieldSet
		err error
	)

	if in.X, err = ParseValue(FieldX, f.X); err != nil {
		return in, err
	}
	if in.Z, err = ParseValue(FieldZ, f.Z); err != nil {
		return in, err
	}

	if pivot == FieldP || pivot == FieldQ {
		if in.P, err = ParseValue(FieldP, f.P); err != nil {
			return in, err
		}
		if in.Q, err = ParseValue(FieldQ, f.Q); err != nil {
			return in, err
		}
		return in, nil
	}

	in.Y, err = ParseValue(FieldY, f.Y)
	return in, err
}

func decimal(v uint8) string {
	return strconv.Itoa(int(v))
}
