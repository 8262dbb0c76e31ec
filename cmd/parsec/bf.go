package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/examples/bf/lib"
)

func newBfCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bf [file ...]",
		Short: "Prints brainfuck programs without comments",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				data, e := io.ReadAll(cmd.InOrStdin())
				if e != nil {
					return e
				}
				return showProgram(out, string(data), a.options())
			}

			for _, name := range args {
				data, e := os.ReadFile(name)
				if e != nil {
					return e
				}
				opts := append(a.options(), parsec.WithName(name))
				if e = showProgram(out, string(data), opts); e != nil {
					return e
				}
			}
			return nil
		},
	}
}

func showProgram(out io.Writer, text string, opts []parsec.Option) error {
	tokens, e := lib.Parse(text, opts...)
	if e != nil {
		return e
	}

	log.Debug("program parsed", "tokens", len(tokens))
	_, e = fmt.Fprintln(out, lib.Show(tokens))
	return e
}
