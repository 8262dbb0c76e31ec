/*
parsec is a console utility running sample grammars.
Usage is

	parsec [--config <file>] [-v...] [--trim <side>] [--allow-trailing] <command> [args]

Commands are:

	calc [<statement> ...]   compute statements, read them from stdin if none given;
	bf [<file> ...]          print brainfuck programs without comments, read stdin if no files given.

--config <file> names TOML or YAML settings file; flags override file settings.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/internal/config"
)

var log = commonlog.GetLogger("parsec.cmd")

type app struct {
	configPath    string
	verbosity     int
	trim          string
	allowTrailing bool
	config        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "parsec",
		Short:         "Runs sample parsers built with parsec combinators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML or YAML config file")
	flags.CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	flags.StringVar(&a.trim, "trim", "", "trim white space from input: start, end, both, or none")
	flags.BoolVar(&a.allowTrailing, "allow-trailing", false, "allow unparsed input after a statement")

	root.AddCommand(newCalcCmd(a), newBfCmd(a))
	return root
}

func (a *app) configure(cmd *cobra.Command) error {
	c := config.Default()
	if a.configPath != "" {
		var e error
		c, e = config.Load(a.configPath)
		if e != nil {
			return e
		}
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		c.Verbosity = a.verbosity
	}
	if flags.Changed("trim") {
		c.Trim = a.trim
		if c.Trim == "none" {
			c.Trim = ""
		}
	}
	if flags.Changed("allow-trailing") {
		c.AllowTrailingInput = a.allowTrailing
	}
	if e := c.Validate(); e != nil {
		return e
	}

	commonlog.Configure(c.Verbosity, nil)
	log.Debugf("config: %+v", *c)
	a.config = c
	return nil
}

func (a *app) options() []parsec.Option {
	return a.config.Options()
}

func main() {
	if e := newRootCmd().Execute(); e != nil {
		fmt.Fprintln(os.Stderr, "error:", e)
		os.Exit(1)
	}
}
