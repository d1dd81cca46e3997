package main

import (
	"flag"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/grafana/exprtype/pkg/exprtype"
	"github.com/grafana/exprtype/pkg/overload"
	util_log "github.com/grafana/exprtype/pkg/util/log"
)

type globalOptions struct {
	ConfigFile      string `name:"config.file" help:"YAML file with the tie break policy and function overloads" type:"existingfile"`
	ConfigExpandEnv bool   `name:"config.expand-env" help:"Expand environment variable references in the config file"`
	LogLevel        string `name:"log.level" help:"Only log messages at or above this level" default:"warn" enum:"debug,info,warn,error"`
	LogFormat       string `name:"log.format" help:"Log output format" default:"logfmt" enum:"logfmt,json"`
	TieBreak        string `name:"tie-break" help:"Overrides tie_break from the config file (error or first_registered)"`

	out io.Writer `kong:"-"`
}

type app struct {
	globalOptions

	Distance distanceCmd `cmd:"" help:"Print the widening distance from one type to another"`
	Max      maxCmd      `cmd:"" help:"Print the narrowest type both types widen to"`
	Binary   binaryCmd   `cmd:"" help:"Type check a binary operation over two typed operands"`
	Table    tableCmd    `cmd:"" help:"Print the widening table"`
	Validate validateCmd `cmd:"" help:"Check the widening table against the lattice invariants"`
	Resolve  resolveCmd  `cmd:"" help:"Resolve a function call against the configured overloads"`
}

func main() {
	cli := app{}
	cli.out = os.Stdout

	ctx := kong.Parse(&cli,
		kong.Name("exprtype-cli"),
		kong.Description("Inspect implicit type widening and overload resolution"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.globalOptions)
	ctx.FatalIfErrorf(err)
}

// initLogger sets up the global logger from the log flags.
func (g *globalOptions) initLogger() error {
	lvl, err := util_log.ParseLevel(g.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	util_log.InitLogger(g.LogFormat, lvl)
	return nil
}

// loadConfig applies flag defaults, then the config file, then --tie-break.
func (g *globalOptions) loadConfig() (overload.Config, error) {
	cfg := overload.Config{}
	cfg.RegisterFlagsAndApplyDefaults("", flag.NewFlagSet("", flag.ContinueOnError))

	if g.ConfigFile != "" {
		f, err := os.Open(g.ConfigFile)
		if err != nil {
			return cfg, errors.Wrap(err, "failed to open config file")
		}
		defer f.Close()

		if err := overload.LoadConfig(&cfg, f, g.ConfigExpandEnv); err != nil {
			return cfg, errors.Wrapf(err, "failed to load %s", g.ConfigFile)
		}
		level.Debug(util_log.Logger).Log("msg", "loaded config", "file", g.ConfigFile, "functions", len(cfg.Functions))
	}

	if g.TieBreak != "" {
		cfg.TieBreak = g.TieBreak
	}

	return cfg, cfg.Validate()
}

func (g *globalOptions) registry() (*overload.Registry, error) {
	if err := g.initLogger(); err != nil {
		return nil, err
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	return overload.NewRegistry(cfg, util_log.Logger)
}

func parseTypes(names []string) ([]exprtype.Type, error) {
	types := make([]exprtype.Type, 0, len(names))
	for _, n := range names {
		t, err := exprtype.ParseType(n)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
