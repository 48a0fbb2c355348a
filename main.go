package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"sketchpad/internal/config"
	"sketchpad/internal/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	log.Println("Starting sketchpad")
	ui.RunApp(cfg)
}
