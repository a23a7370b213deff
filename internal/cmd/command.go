package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/scott-cotton/cli"
)

type rootConfig struct {
	*cli.Command
	Config  string `cli:"name=config desc='config file relative to the working directory (fbnative.yaml)'"`
	Dir     string `cli:"name=dir desc='working directory (the current directory)'"`
	Check   bool   `cli:"name=check desc='fail if the generated files are out of date instead of writing them'"`
	Watch   bool   `cli:"name=watch desc='regenerate whenever the config or a schema changes'"`
	Verbose bool   `cli:"name=v desc='log debug messages'"`
}

// Root returns the fbnative command.
func Root() *cli.Command {
	cfg := &rootConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Command, "fbnative").
		WithSynopsis("fbnative [-config file] [-dir dir] [-check] [-watch] [-v]").
		WithDescription("fbnative generates native Go records and their flatbuffers conversions from schemas.").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *rootConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}

	if cfg.Check && cfg.Watch {
		return fmt.Errorf("%w: -check and -watch can't be combined", cli.ErrUsage)
	}

	dir := cfg.Dir
	if len(dir) == 0 {
		if dir, err = os.Getwd(); err != nil {
			return err
		}
	}

	s := Settings{
		WorkingDir: dir,
		ConfigFile: cfg.Config,
		Check:      cfg.Check,
		Verbose:    cfg.Verbose,
		Logger:     zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
		Out:        cc.Out,
	}

	if cfg.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return Watch(ctx, s)
	}

	return Run(s)
}
