package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/c360studio/semstreams/vocabulary"
	"github.com/spf13/cobra"

	"github.com/c360studio/ontoview/table"
	vocab "github.com/c360studio/ontoview/vocabulary/ontology"
)

func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the metadata fields and the predicates each is read from",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tTYPE\tPREDICATES\tDESCRIPTION")
			for _, f := range vocab.Fields {
				meta := vocabulary.GetPredicateMetadata(f.Name)
				if meta == nil {
					return fmt.Errorf("field %s is not registered", f.Name)
				}
				predicates := f.Predicates
				if len(predicates) == 0 {
					predicates = []string{"(ontology subject)"}
				}
				shortened := make([]string, len(predicates))
				for i, p := range predicates {
					shortened[i] = table.Shorten(p)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, meta.DataType, strings.Join(shortened, ", "), meta.Description)
			}
			return tw.Flush()
		},
	}
}
