package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"binspect/internal/config"
	"binspect/internal/logx"
	"binspect/internal/ui"
)

func main() {
	var configPath string
	var debug bool
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// A TUI owns the terminal, so logs go to a file.
	closeLog, err := logx.Setup(cfg.Log.File, debug || cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	model := ui.NewModel(cfg)
	if flag.NArg() > 0 {
		if err := model.OpenPath(flag.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	logx.Infof("starting binspect")
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
