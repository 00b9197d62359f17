package main

import (
	"context"
	"fmt"
	"os"

	"github.com/radarml/cfar_rnn_launcher/launch"

	"github.com/akamensky/argparse"

	"github.com/rs/zerolog"
)

func main() {
	parser := argparse.NewParser("cfarlaunch", "launch CFAR RNN training")

	profile := parser.String("f", "profile", &argparse.Options{Help: "Overlay a YAML launch profile on the built-in configuration."})

	dryrun := parser.Flag("n", "dry-run", &argparse.Options{Help: "Print the trainer command line without launching."})

	python := parser.String("p", "python", &argparse.Options{Help: "Python interpreter to launch the trainer with."})

	trainer := parser.String("t", "trainer", &argparse.Options{Help: "Trainer script path."})

	progress := parser.Flag("b", "progress", &argparse.Options{Help: "Show a step progress bar driven by trainer output."})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		panic("Error parsing arguments")
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := launch.DefaultConfig()

	if *profile != "" {
		var err error
		cfg, err = launch.LoadProfile(*profile)
		if err != nil {
			log.Fatal().Err(err).Msg("loading profile")
		}
	}

	if *python != "" {
		cfg.Python = *python
	}

	if *trainer != "" {
		cfg.Trainer = *trainer
	}

	if *dryrun {
		for _, arg := range cfg.CommandLine() {
			fmt.Println(arg)
		}
		return
	}

	inv := launch.NewInvoker(log)
	inv.Progress = *progress

	exit, err := inv.Run(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("launching trainer")
	}

	os.Exit(exit)
}
