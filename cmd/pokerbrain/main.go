package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags every subcommand shares. They also read from the
// environment (and a .env file via godotenv) so hosted agents can be
// configured without flags.
type Globals struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging" env:"POKERBRAIN_DEBUG"`
	Seed    *int64           `help:"Deterministic RNG seed (optional)" env:"POKERBRAIN_SEED"`
	LogFile string           `help:"Also write logs to this rotating file" env:"POKERBRAIN_LOG_FILE"`
}

// Logger builds the process logger: stderr, plus the rotating file sink
// when configured.
func (g *Globals) Logger() *log.Logger {
	level := log.InfoLevel
	if g.Debug {
		level = log.DebugLevel
	}

	var w io.Writer = os.Stderr
	if g.LogFile != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   g.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			Compress:   true,
		})
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

type CLI struct {
	Globals

	Decide  DecideCmd  `cmd:"" help:"Decide one action from a decision request"`
	Odds    OddsCmd    `cmd:"" help:"Estimate hand equity by Monte Carlo simulation"`
	Preflop PreflopCmd `cmd:"" help:"Look up the preflop equity table"`
	Memory  MemoryCmd  `cmd:"" help:"Inspect or reset an agent's adaptive memory"`
}

func main() {
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerbrain"),
		kong.Description("Adaptive decision engine for poker-playing agents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
