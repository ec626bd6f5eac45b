// Command nes opens an interactive window over an iNES ROM, running the
// emulator in real time with keyboard input and portaudio output.
package main

import (
	"fmt"
	"os"

	"github.com/nes-core/fc-emu/nes"
	"github.com/nes-core/fc-emu/ui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nes <rom-path>")
		os.Exit(2)
	}

	console, err := nes.NewConsole(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "nes: %v\n", err)
		os.Exit(1)
	}

	ui.OpenWindow(console)
}
