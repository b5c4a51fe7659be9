package main

import (
	"github.com/spf13/cobra"
)

// options holds the §6.1 flag surface.
type options struct {
	factorPath   string
	orderPath    string
	evidencePath string
	dotPath      string
	compile      bool
	prob         bool
	vbe          bool
	logSpace     bool
	verify       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "aomdd",
		Short:        "Compile a UAI factor network into an AND/OR multi-valued decision diagram",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.factorPath, "f", "f", "", "factor file in UAI format (required)")
	flags.StringVarP(&opts.orderPath, "o", "o", "", "elimination ordering file (required)")
	flags.StringVarP(&opts.evidencePath, "e", "e", "", "evidence file")
	flags.StringVarP(&opts.dotPath, "t", "t", "", "write the pseudo-tree to this Graphviz DOT file")
	flags.BoolVarP(&opts.compile, "c", "c", false, "compile the full AOMDD and print its debug dump")
	flags.BoolVarP(&opts.prob, "p", "p", false, "compute P(e)")
	flags.BoolVar(&opts.vbe, "vbe", false, "use dense bucket elimination instead of diagram-based")
	flags.BoolVar(&opts.logSpace, "log", false, "operate in log space")
	flags.BoolVar(&opts.verify, "verify", false, "cross-check the diagram against the raw tables over up to 2048 assignments")

	cobra.CheckErr(cmd.MarkFlagRequired("f"))
	cobra.CheckErr(cmd.MarkFlagRequired("o"))

	return cmd
}
