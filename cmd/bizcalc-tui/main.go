package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxlab/bizcalc/internal/config"
	"github.com/taxlab/bizcalc/internal/tui"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: bizcalc-tui <input-file>")
		os.Exit(1)
	}

	parser := config.NewInputParser()
	doc, err := parser.LoadFromFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if doc.Investment == nil {
		fmt.Fprintln(os.Stderr, "Error: input file has no investment section")
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(doc.Investment), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
