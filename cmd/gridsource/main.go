package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/gridsource/internal/config"
	"github.com/jask/gridsource/internal/demo"
)

func main() {
	fs := pflag.NewFlagSet("gridsource", pflag.ExitOnError)
	config.Flags(fs)
	_ = fs.Parse(os.Args[1:])

	if initOnly, _ := fs.GetBool("init"); initOnly {
		path, _ := fs.GetString("config")
		if path == "" {
			p, err := config.Path()
			if err != nil {
				log.Fatalf("config path: %v", err)
			}
			path = p
		}
		if err := config.WriteDefault(path); err != nil {
			log.Fatalf("init: %v", err)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// the TUI owns stdout; logs go to a file or nowhere
	if os.Getenv("GRIDSOURCE_DEBUG") != "" {
		f, err := tea.LogToFile("gridsource-debug.log", "debug")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(demo.New(cfg), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
