package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/go-kit/log/level"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/agiangrant/alshim/cmd/alshim/commands"
	"github.com/agiangrant/alshim/internal/ffi"
)

const version = "0.1.0"

var cfg struct {
	configFile string
	lib        string
	logLevel   string
	init       struct {
		force bool
	}
	tone struct {
		frequency float64
		duration  time.Duration
	}
}

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Locate and exercise the OpenAL runtime library.").UsageWriter(os.Stdout)
	app.Version(version)
	app.HelpFlag.Short('h')
	app.Flag("config", "Path to the configuration file (default "+commands.DefaultConfigFile+").").StringVar(&cfg.configFile)
	app.Flag("lib", "OpenAL library to try before the platform defaults.").StringVar(&cfg.lib)
	app.Flag("log.level", "Log level: debug, info, warn or error.").StringVar(&cfg.logLevel)

	app.Command("probe", "Report whether OpenAL can be loaded.")
	app.Command("symbols", "List the required OpenAL symbols and whether they resolve.")
	toneCmd := app.Command("tone", "Play a test tone on the default device.")
	toneCmd.Flag("frequency", "Tone frequency in Hz.").Float64Var(&cfg.tone.frequency)
	toneCmd.Flag("duration", "Tone length.").DurationVar(&cfg.tone.duration)
	initCmd := app.Command("init", "Write a default configuration file.")
	initCmd.Flag("force", "Overwrite an existing file.").BoolVar(&cfg.init.force)
	app.Command("version", "Print version information.")

	parsed := kingpin.MustParse(app.Parse(os.Args[1:]))
	if err := run(parsed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(parsed string) error {
	switch parsed {
	case "init":
		return commands.Init(os.Stdout, cfg.configFile, cfg.init.force)
	case "version":
		fmt.Printf("alshim version %s\n", version)
		return nil
	}

	conf, err := commands.LoadConfig(cfg.configFile)
	if err != nil {
		return err
	}
	if cfg.lib != "" {
		conf.Library.Path = cfg.lib
	}
	if cfg.logLevel != "" {
		conf.Log.Level = cfg.logLevel
	}
	if cfg.tone.frequency > 0 {
		conf.Tone.Frequency = cfg.tone.frequency
	}
	if cfg.tone.duration > 0 {
		conf.Tone.Duration.Duration = cfg.tone.duration
	}

	logger, err := commands.NewLogger(os.Stderr, conf.Log)
	if err != nil {
		return err
	}
	al := ffi.NewLoader(append(conf.LoaderOptions(), ffi.WithLogger(logger))...)
	defer func() {
		if err := al.Close(); err != nil {
			level.Warn(logger).Log("msg", "closing openal", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch parsed {
	case "probe":
		return commands.Probe(os.Stdout, al)
	case "symbols":
		return commands.Symbols(os.Stdout, al)
	case "tone":
		return commands.Tone(ctx, logger, al, conf.Tone)
	}
	return fmt.Errorf("unknown command %q", parsed)
}
