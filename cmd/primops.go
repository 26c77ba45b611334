package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/loon-lang/loon/internal/log"
	"github.com/loon-lang/loon/lambda"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// PrimopsCmd dumps the primitive-operation table: one row per operation tag
// with its canonical name and display mnemonic. The output is meant to be
// diffed between compiler versions; canonical names must never change for an
// existing tag, so a diff on the first column is a compatibility report.
var PrimopsCmd = &cobra.Command{
	Use:          "primops",
	Short:        "Dump the lambda IR primitive-operation table",
	RunE:         runPrimops,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var (
	primopsOutPath   *string
	primopsCanonical *bool
	primopsLogLevel  *int
)

func init() {
	primopsOutPath = PrimopsCmd.Flags().StringP("out", "o", "", "output path (defaults to stdout)")
	primopsCanonical = PrimopsCmd.Flags().Bool("canonical", false, "print canonical names only")
	primopsLogLevel = PrimopsCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runPrimops(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*primopsLogLevel))

	var out io.Writer = os.Stdout
	if *primopsOutPath != "" {
		f, err := os.Create(*primopsOutPath)
		if err != nil {
			return errors.Wrap(err, "could not create output file")
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
	}

	prims := lambda.AllPrimitives()
	log.DefaultLogger.Debug("dumping primitive table", "section", "cmd", "count", len(prims))

	if *primopsCanonical {
		for _, p := range prims {
			if _, err := fmt.Fprintln(out, lambda.PrimitiveName(p)); err != nil {
				return errors.Wrap(err, "could not write primitive table")
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, p := range prims {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", lambda.PrimitiveName(p), lambda.PrimitiveString(p)); err != nil {
			return errors.Wrap(err, "could not write primitive table")
		}
	}
	return errors.Wrap(tw.Flush(), "could not flush primitive table")
}
