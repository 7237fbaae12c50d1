package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontoview/export"
	"github.com/c360studio/ontoview/pipeline"
)

// reportFromConfig is the --report value used when the flag has no argument.
const reportFromConfig = "config"

func (a *app) exportCmd() *cobra.Command {
	var (
		outDir string
		report string
	)

	cmd := &cobra.Command{
		Use:   "export <files|dirs|globs...>",
		Short: "Write one element CSV per document, plus an optional metadata report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = a.cfg.Output.Dir
			}

			var reportFormat export.ReportFormat
			if report != "" {
				if report == reportFromConfig {
					report = a.cfg.Output.ReportFormat
				}
				f, err := export.ParseReportFormat(report)
				if err != nil {
					return err
				}
				reportFormat = f
			}

			paths, err := resolveInputs(args, a.cfg.Watch.Extensions)
			if err != nil {
				return err
			}
			docs, err := readDocuments(paths)
			if err != nil {
				return err
			}

			results, runErr := a.runner(nil).Run(cmd.Context(), docs)

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			p := newPrinter(cmd.OutOrStdout())
			reports := make([]export.Report, 0, len(results))
			used := make(map[string]int)
			for _, res := range results {
				r := export.NewReport(res.Filename, res.Format, res.Metadata, res.Table, res.TripleCount)
				r.DocumentID = res.DocumentID

				if res.OK() {
					name := uniqueName(used, export.FileName(res.Metadata, ".csv"))
					path := filepath.Join(outDir, name)
					if err := writeCSVFile(path, res); err != nil {
						return err
					}
					r.CSVFile = name
					a.logger.Info("Wrote CSV", "file", res.Filename, "path", path, "rows", len(res.Table.Rows))
				} else {
					r.Error = res.Err.Error()
				}

				p.printSummary(res)
				reports = append(reports, r)
			}

			if reportFormat != "" {
				path := filepath.Join(outDir, "report"+reportFormat.Extension())
				if err := writeReportFile(path, reports, reportFormat); err != nil {
					return err
				}
				a.logger.Info("Wrote report", "path", path, "documents", len(reports))
			}

			return batchError(results, runErr)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config output.dir)")
	cmd.Flags().StringVar(&report, "report", "", "Also write a metadata report (json, yaml)")
	cmd.Flags().Lookup("report").NoOptDefVal = reportFromConfig

	return cmd
}

// uniqueName appends -2, -3, ... before the extension when name was
// already handed out in this run. used counts the suffixes tried per name.
func uniqueName(used map[string]int, name string) string {
	if used[name] == 0 {
		used[name] = 1
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for {
		used[name]++
		candidate := fmt.Sprintf("%s-%d%s", stem, used[name], ext)
		if used[candidate] == 0 {
			used[candidate] = 1
			return candidate
		}
	}
}

func writeCSVFile(path string, res pipeline.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := export.WriteCSV(f, res.Table, res.Table.Rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeReportFile(path string, reports []export.Report, format export.ReportFormat) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return export.WriteReport(f, reports, format)
}
