package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/parsec/examples/calc/lib"
)

func newCalcCmd(a *app) *cobra.Command {
	var precision int
	cmd := &cobra.Command{
		Use:   "calc [statement ...]",
		Short: "Line calculator",
		Long: `Computes statements given as arguments, one per argument,
or reads them from stdin line by line until an empty line.
Type help in interactive mode for statement syntax.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := lib.New(a.options()...)
			calc.Precision = a.config.Precision
			if cmd.Flags().Changed("precision") {
				calc.Precision = precision
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return calc.Repl(cmd.InOrStdin(), out, false)
			}

			for _, statement := range args {
				x, e := calc.Compute(statement)
				if e != nil {
					log.Info("statement failed", "statement", statement, "error", e.Error())
					return e
				}
				fmt.Fprintln(out, calc.Format(x))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", lib.DefaultPrecision, "significant digits in results")
	return cmd
}
