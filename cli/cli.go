package cli

import (
	"context"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/mend/cli/cmd"
	"github.com/ardnew/mend/cli/report"
	"github.com/ardnew/mend/grammar"
	"github.com/ardnew/mend/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config.yaml"

// stdout receives command output.
var stdout io.Writer = os.Stdout

// CLI is the top-level command-line interface for mend.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Check    cmd.Check    `cmd:"" default:"withargs" help:"Check sources against a grammar"`
	Eval     cmd.Eval     `cmd:""                    help:"Evaluate an arithmetic expression"`
	Repl     cmd.Repl     `cmd:""                    help:"Check input interactively"`
	Fix      cmd.Fix      `cmd:""                    help:"Suggest a fix for one expectation"`
	Distance cmd.Distance `cmd:""                    help:"Print the edit distance between two strings"`
	Grammars cmd.Grammars `cmd:""                    help:"List grammars"`
	Init     cmd.Init     `cmd:""                    help:"Initialize configuration file"`
}

func (*CLI) vars() kong.Vars {
	return kong.Vars{
		"version":        pkg.Version,
		"grammarDefault": grammar.Default,
		"grammarNames":   strings.Join(grammar.Names(), ", "),
		"reportFormats":  strings.Join(slices.Collect(report.Formats()), ","),
	}
}

// Run executes the mend CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := pkg.MkdirAll()
	if err != nil {
		return err
	}

	configFilePath := pkg.ConfigPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.vars()).
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that errors during parsing are logged
	// with the requested configuration regardless of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.BindTo(stdout, (*io.Writer)(nil)),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(load, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(&cli)
}
