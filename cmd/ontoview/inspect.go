package main

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/ontoview/table"
)

func (a *app) inspectCmd() *cobra.Command {
	var (
		query         string
		sortColumn    int
		sortDirection string
		limit         int
	)

	cmd := &cobra.Command{
		Use:   "inspect <files|dirs|globs...>",
		Short: "Print ontology metadata and element tables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sort-column") {
				sortColumn = a.cfg.View.SortColumn
			}
			if !cmd.Flags().Changed("sort-direction") {
				sortDirection = a.cfg.View.SortDirection
			}
			dir := table.ParseDirection(sortDirection)

			paths, err := resolveInputs(args, a.cfg.Watch.Extensions)
			if err != nil {
				return err
			}
			docs, err := readDocuments(paths)
			if err != nil {
				return err
			}

			results, runErr := a.runner(nil).Run(cmd.Context(), docs)

			p := newPrinter(cmd.OutOrStdout())
			for _, res := range results {
				var rows []table.Row
				if res.OK() {
					rows = table.FilterAndSort(res.Table, query, sortColumn, dir)
				}
				p.printResult(res, rows, limit)
			}
			return batchError(results, runErr)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show rows with a cell containing this text (case-insensitive)")
	cmd.Flags().IntVar(&sortColumn, "sort-column", table.NoColumn, "Column index to sort by (-1 keeps table order)")
	cmd.Flags().StringVar(&sortDirection, "sort-direction", string(table.DirectionAsc), "Sort direction (asc, desc)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum rows to print per document (0 = all)")

	return cmd
}
