// Package console provides the text front end of the opcode field decoder.
//
// A Session owns one insts.Form and applies commands to it:
//
//	0x3E          edit the opcode
//	p=0, p 0      edit a field (op, opcode, x, y, z, p, q)
//	show          print the form
//	help          print the command summary
//	quit, exit    leave
package console

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/z80field/insts"
)

// ErrUnknownCommand is returned for a line that is not a command.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one edit: the field that changed and its new text.
type Command struct {
	Field insts.Field
	Text  string
}

// ParseCommand parses an edit command. Lines starting with 0x edit the
// opcode; otherwise the line must be "<field>=<value>" or "<field> <value>".
func ParseCommand(line string) (Command, error) {
	s := strings.TrimSpace(line)

	if strings.HasPrefix(strings.ToLower(s), "0x") {
		return Command{Field: insts.FieldOpcode, Text: s}, nil
	}

	var name, text string
	if i := strings.IndexByte(s, '='); i >= 0 {
		name, text = s[:i], s[i+1:]
	} else {
		words := strings.Fields(s)
		if len(words) != 2 {
			return Command{}, ErrUnknownCommand
		}
		name, text = words[0], words[1]
	}

	field, err := insts.ParseField(name)
	if err != nil {
		return Command{}, err
	}

	return Command{Field: field, Text: strings.TrimSpace(text)}, nil
}

// Session applies commands to a form and prints the result.
type Session struct {
	form     insts.Form
	renderer *Renderer
	log      logrus.FieldLogger
}

// NewSession creates a session starting from form.
func NewSession(form insts.Form, renderer *Renderer, log logrus.FieldLogger) *Session {
	return &Session{
		form:     form,
		renderer: renderer,
		log:      log,
	}
}

// Form returns the current form.
func (s *Session) Form() insts.Form {
	return s.form
}

// Execute runs one command line. It reports whether the session should end.
// A failed edit leaves the form unchanged and returns the error.
func (s *Session) Execute(line string) (bool, error) {
	word := strings.ToLower(strings.TrimSpace(line))

	switch word {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		return false, s.renderer.Help()
	case "show":
		return false, s.renderer.Render(s.form)
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		s.log.WithField("line", line).Debug("command rejected")
		return false, err
	}

	next, err := s.form.Apply(cmd.Field, cmd.Text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"field": cmd.Field.String(),
			"text":  cmd.Text,
		}).WithError(err).Debug("edit rejected")
		return false, err
	}

	s.form = next
	s.log.WithFields(logrus.Fields{
		"field":  cmd.Field.String(),
		"text":   cmd.Text,
		"opcode": next.Opcode,
	}).Debug("edit applied")

	return false, s.renderer.Render(s.form)
}
