package console

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sarchlab/z80field/config"
	"github.com/sarchlab/z80field/insts"
)

const helpText = `commands:
  0x3E            decode an opcode
  <field>=<value> edit a field (op, x, y, z, p, q)
  <field> <value> same as above
  show            print the current fields
  help            print this summary
  quit, exit      leave
`

// Renderer prints forms in the configured format.
type Renderer struct {
	out    io.Writer
	config *config.DisplayConfig

	label *color.Color
	value *color.Color
	fail  *color.Color
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, cfg *config.DisplayConfig) *Renderer {
	r := &Renderer{
		out:    out,
		config: cfg,
		label:  color.New(color.FgCyan),
		value:  color.New(color.FgYellow, color.Bold),
		fail:   color.New(color.FgRed, color.Bold),
	}

	if !cfg.Color {
		r.label.DisableColor()
		r.value.DisableColor()
		r.fail.DisableColor()
	}

	return r
}

type jsonForm struct {
	Opcode string `json:"opcode"`
	X      uint8  `json:"x"`
	Y      uint8  `json:"y"`
	Z      uint8  `json:"z"`
	P      uint8  `json:"p"`
	Q      uint8  `json:"q"`
}

// Render prints the fields and opcode a form resolves to.
func (r *Renderer) Render(form insts.Form) error {
	fs, op, err := form.Resolve()
	if err != nil {
		return err
	}

	if r.config.Format == config.FormatJSON {
		return json.NewEncoder(r.out).Encode(jsonForm{
			Opcode: insts.FormatOpcode(op),
			X:      fs.X,
			Y:      fs.Y,
			Z:      fs.Z,
			P:      fs.P,
			Q:      fs.Q,
		})
	}

	r.label.Fprint(r.out, "opcode ")
	r.value.Fprintln(r.out, insts.FormatOpcode(op))

	r.label.Fprint(r.out, "x y z  ")
	r.value.Fprintf(r.out, "%d %d %d\n", fs.X, fs.Y, fs.Z)

	r.label.Fprint(r.out, "p q    ")
	r.value.Fprintf(r.out, "%d %d\n", fs.P, fs.Q)

	if r.config.ShowBinary {
		r.label.Fprint(r.out, "bits   ")
		_, err = fmt.Fprintf(r.out, "%02b %03b %03b  (%02b %02b %01b %03b)\n",
			fs.X, fs.Y, fs.Z, fs.X, fs.P, fs.Q, fs.Z)
		return err
	}

	return nil
}

// Error prints an error message.
func (r *Renderer) Error(err error) {
	r.fail.Fprintln(r.out, "error: "+err.Error())
}

// Help prints the command summary.
func (r *Renderer) Help() error {
	_, err := io.WriteString(r.out, helpText)
	return err
}
