package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"agency-server/internal/creatorimport/processor"
	"agency-server/internal/store"

	"github.com/spf13/cobra"
)

type importOutput struct {
	Command    string            `json:"command"`
	DurationMS int64             `json:"duration_ms"`
	Result     processor.Summary `json:"result"`
}

func newImportCmd(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a creator roster or a monthly performance export",
	}
	cmd.AddCommand(newImportKindCmd(open, store.ImportKindCreators, "Import a creator roster workbook"))
	cmd.AddCommand(newImportKindCmd(open, store.ImportKindPerformance, "Import one month of performance metrics"))
	return cmd
}

func newImportKindCmd(open openFunc, kind store.ImportKind, short string) *cobra.Command {
	var (
		file      string
		period    string
		createdBy string
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == store.ImportKindPerformance && period == "" {
				return fmt.Errorf("--period is required for performance imports")
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			service, closer, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()

			params := processor.FileParams{
				FileName: filepath.Base(file),
				Reader:   f,
				Period:   period,
			}
			if createdBy != "" {
				params.CreatedBy = &createdBy
			}
			if !quiet {
				errOut := cmd.ErrOrStderr()
				params.Progress = func(done, total int) {
					if done == total || done%100 == 0 {
						fmt.Fprintf(errOut, "\r%d/%d rows", done, total)
					}
					if done == total {
						fmt.Fprintln(errOut)
					}
				}
			}

			start := time.Now()
			summary, err := service.ImportFile(cmd.Context(), kind, params)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), importOutput{
				Command:    "import " + string(kind),
				DurationMS: time.Since(start).Milliseconds(),
				Result:     summary,
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the .xlsx workbook (required)")
	cmd.Flags().StringVar(&createdBy, "created-by", os.Getenv("USER"), "Operator recorded in the import audit log")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Do not print row progress")
	if kind == store.ImportKindPerformance {
		cmd.Flags().StringVar(&period, "period", "", "Reporting month, YYYY-MM (required)")
	}
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
