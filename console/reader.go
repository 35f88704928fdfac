package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

var completions = []string{
	"0x", "exit", "help", "op=", "opcode=", "p=", "q=", "quit", "show", "x=", "y=", "z=",
}

// Complete returns the commands and field prefixes starting with line.
func Complete(line string) []string {
	prefix := strings.ToLower(strings.TrimLeft(line, " "))

	var out []string
	for _, c := range completions {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}

	return out
}

// Run reads commands from the terminal until quit, Ctrl-C or end of input.
// Failed commands are printed and do not end the loop. No input history is
// kept.
func Run(s *Session, prompt string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(Complete)

	if err := s.renderer.Render(s.form); err != nil {
		return err
	}

	for {
		text, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("error reading line: %w", err)
		}

		quit, err := s.Execute(text)
		if err != nil {
			s.renderer.Error(err)
		}
		if quit {
			return nil
		}
	}
}
