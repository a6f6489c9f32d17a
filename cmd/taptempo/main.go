package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tapbeat/taptempo/internal/audio"
	"github.com/tapbeat/taptempo/internal/config"
	"github.com/tapbeat/taptempo/internal/logging"
	"github.com/tapbeat/taptempo/internal/model"
	"github.com/tapbeat/taptempo/internal/session"
	"github.com/tapbeat/taptempo/internal/tui"
)

func main() {
	// Command line flags
	var (
		outputDirFlag      = flag.String("output-directory", "", "Write tagged copies into this directory")
		inplaceFlag        = flag.Bool("inplace", false, "Tag the input files themselves")
		filterExistingFlag = flag.Bool("filter-existing", false, "Skip inputs that already carry a BPM tag")
		confirmFlag        = flag.Bool("confirm", false, "Ask for confirmation before each tag write")
		playerFlag         = flag.String("player", "", "Playback backend: mpv or speaker (overrides config)")
		mpvPathFlag        = flag.String("mpv-path", "", "mpv executable for the mpv backend (overrides config)")
		configFlag         = flag.String("config", "", "Path to config file")
		logFileFlag        = flag.String("log-file", "", "Append logs to this file (overrides config)")
	)

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("taptempo - tap along to tag audio files with their tempo")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  taptempo [options] <file>...")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *playerFlag != "" {
		settings.Player = *playerFlag
	}
	if *mpvPathFlag != "" {
		settings.MPVPath = *mpvPathFlag
	}
	if *logFileFlag != "" {
		settings.LogFile = *logFileFlag
	}
	if *confirmFlag {
		settings.RequireConfirm = true
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Exactly one output mode must be chosen.
	if *outputDirFlag != "" && *inplaceFlag {
		fmt.Fprintln(os.Stderr, "Error: cannot use both --output-directory and --inplace")
		os.Exit(1)
	}
	if *outputDirFlag == "" && !*inplaceFlag {
		fmt.Fprintln(os.Stderr, "Error: must use either --output-directory or --inplace")
		os.Exit(1)
	}

	closeLog, err := logging.Setup(settings.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	inputs := flag.Args()
	if *filterExistingFlag {
		inputs, err = audio.FilterMissingBPM(context.Background(), inputs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Nothing left to tag is a clean exit, not an error.
	if len(inputs) == 0 {
		return
	}

	tracks, err := audio.LoadTracks(inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var writer audio.Writer
	if *outputDirFlag != "" {
		writer, err = audio.NewDirectoryWriter(*outputDirFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		writer = audio.InPlaceWriter{}
	}

	var player audio.Player
	switch settings.Player {
	case config.PlayerSpeaker:
		player = audio.NewSpeakerPlayer()
	default:
		player = audio.NewMPVPlayer(settings.MPVPath)
	}

	controller := session.NewController(
		model.NewPlaylist(tracks),
		player,
		writer,
		session.Config{RequireConfirm: settings.RequireConfirm},
	)

	if err := tui.Run(controller); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
