// Package main provides the entry point for z80field.
// z80field decodes Z80 opcode bytes into their x/y/z/p/q fields.
//
// For the full CLI, use: go run ./cmd/z80field
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("z80field - Z80 opcode field decoder")
	fmt.Println("")
	fmt.Println("Usage: z80field [options] [command ...]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to display configuration JSON file")
	fmt.Println("  -i         Start an interactive session after the commands")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/z80field' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/z80field' instead.")
	}
}
