package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"company-brochure/internal/infra/render"
	brochureUC "company-brochure/internal/usecase/brochure"
)

func newGenerateCmd(build pipelineFactory, global *globalOptions) *cobra.Command {
	var (
		company string
		format  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "generate <url>",
		Short: "Generate a brochure for the company at <url>",
		Long: `Generate scrapes <url>, selects the relevant links and writes a brochure.

Markdown and JSON go to stdout unless --output is given. PDF is always written
to a file, named after the URL when --output is empty.

Examples:
  brochure generate https://www.acme.test
  brochure generate https://www.acme.test --company "Acme Rockets" --format json
  brochure generate https://www.acme.test --format pdf --output ./out/acme.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter, err := render.New(format)
			if err != nil {
				return err
			}

			svc, cleanup, err := build(*global)
			if err != nil {
				return err
			}
			defer cleanup()

			run, err := svc.Run(cmd.Context(), brochureUC.Request{BaseURL: args[0], CompanyName: company})
			if err != nil {
				return err
			}

			data, err := exporter.Export(run)
			if err != nil {
				return fmt.Errorf("export brochure: %w", err)
			}

			if output == "" && exporter.Extension() == ".pdf" {
				output = render.Filename(run.BaseURL, exporter.Extension())
			}

			if output == "" {
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
				if len(data) > 0 && data[len(data)-1] != '\n' {
					fmt.Fprintln(cmd.OutOrStdout())
				}
			} else {
				if err := writeFile(output, data); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "✓ Written: %s\n", output)
			}

			if run.Degraded() {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: some pipeline stages failed; the brochure may be incomplete")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company name (derived from the URL host when empty)")
	cmd.Flags().StringVar(&format, "format", render.FormatMarkdown, "Output format: markdown, json or pdf")
	cmd.Flags().StringVar(&output, "output", "", "Output file (default: stdout; PDF defaults to a file named after the URL)")
	return cmd
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
