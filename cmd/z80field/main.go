// Package main provides the z80field command.
// z80field splits Z80 opcodes into their x/y/z/p/q fields and rebuilds
// opcodes from edited fields.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/z80field/config"
	"github.com/sarchlab/z80field/console"
)

var (
	configPath  = flag.String("config", "", "Path to display configuration JSON file")
	interactive = flag.Bool("i", false, "Start an interactive session after running the arguments")
	verbose     = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: z80field [options] [command ...]\n")
		fmt.Fprintf(os.Stderr, "\nCommands: 0x3E, x=1, y 5, p=0, ...\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading display config: %v\n", err)
		os.Exit(1)
	}

	form, err := cfg.InitialForm()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in display config: %v\n", err)
		os.Exit(1)
	}

	renderer := console.NewRenderer(os.Stdout, cfg)
	session := console.NewSession(form, renderer, log)

	quit, err := runCommands(session, flag.Args())
	if err != nil {
		renderer.Error(err)
		os.Exit(1)
	}

	if !quit && (flag.NArg() == 0 || *interactive) {
		log.WithField("initial_opcode", cfg.InitialOpcode).Debug("starting interactive session")

		if err := console.Run(session, cfg.Prompt); err != nil {
			log.WithError(err).Error("interactive session failed")
			os.Exit(1)
		}
	}
}

// loadConfig returns the default config, or the validated file at path.
func loadConfig(path string) (*config.DisplayConfig, error) {
	cfg := config.DefaultDisplayConfig()
	if path != "" {
		var err error
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runCommands applies each argument to the session in order and stops at
// the first failure or quit command.
func runCommands(session *console.Session, args []string) (bool, error) {
	for _, arg := range args {
		quit, err := session.Execute(arg)
		if err != nil {
			return false, fmt.Errorf("%s: %w", arg, err)
		}
		if quit {
			return true, nil
		}
	}
	return false, nil
}
