package main

import (
	"github.com/bradleyjkemp/memviz"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
)

func newAsmCmd() *cobra.Command {
	var dump bool
	var graph bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "asm file",
		Short: "Assemble a program and print it",
		Long: `Asm assembles a program without running it, reports any lines that do not
assemble, and prints the program in canonical form.

With --dump the assembled program is pretty-printed; with --graph it is
written as a graphviz digraph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			prog, diags, err := assembleFile(args[0], cmd.InOrStdin(), cmd.ErrOrStderr(), verbose)
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			switch {
			case graph:
				memviz.Map(out, prog)
			case dump:
				printer := pp.New()
				printer.SetOutput(out)
				printer.SetColoringEnabled(false)
				printer.Println(prog)
			default:
				_, err = out.Write([]byte(prog.String()))
				if err != nil {
					return
				}
			}

			if len(diags) != 0 {
				err = ErrDiagnostics
			}

			return
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&dump, "dump", false, "pretty-print the assembled program")
	flags.BoolVar(&graph, "graph", false, "write the assembled program as a graphviz digraph")
	flags.BoolVar(&verbose, "verbose", false, "log assembler activity")

	return cmd
}
