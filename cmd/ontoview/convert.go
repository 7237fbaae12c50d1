package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontoview/export"
	"github.com/c360studio/ontoview/source"
	"github.com/c360studio/ontoview/source/parser"
)

func (a *app) convertCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-serialize an RDF document as N-Triples (N-Quads for named graphs)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := source.ReadDocument(args[0])
			if err != nil {
				return err
			}

			s, format, err := parser.DefaultRegistry.ParseFile(cmd.Context(), doc.Filename, doc.Content)
			if err != nil {
				return err
			}

			w := export.NewNTriplesWriter()
			w.WriteStore(s)

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			if _, err := io.WriteString(out, w.String()); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			a.logger.Info("Converted document", "file", doc.Filename, "format", format, "triples", w.Count())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	return cmd
}
