package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/prefview/internal/formatter"
	"github.com/desertthunder/prefview/internal/shared"
	"github.com/urfave/cli/v3"
)

// Export writes the selected profile as text, Markdown, CSV or JSON.
//
// Without --output the export goes to stdout; CSV then prints only the profile table.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	output := cmd.String("output")

	export, err := r.resolveInput(ctx, cmd)
	if err != nil {
		return err
	}

	r.logger.Info("exporting profile", "name", export.Name, "format", format, "output", output)

	switch format {
	case "text", "txt":
		if output == "" {
			data, err := formatter.ExportToText(export, r.config.Display.Gap)
			if err != nil {
				return err
			}
			return r.writePlain("%s", data)
		}
		path, err := formatter.WriteTextExport(export, output, r.config.Display.Gap)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", path)

	case "markdown", "md":
		if output == "" {
			data, err := formatter.ExportToMarkdown(export)
			if err != nil {
				return err
			}
			return r.writePlain("%s", data)
		}
		result, err := formatter.WriteMarkdownExport(export, output)
		if err != nil {
			return err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "✓ Exported to %s\n", result.Directory)
		for _, f := range result.Files {
			fmt.Fprintf(&b, "  %s\n", f)
		}
		return r.writePlain("%s", b.String())

	case "csv":
		if output == "" {
			data, err := formatter.ExportToCSV(export)
			if err != nil {
				return err
			}
			return r.writePlain("%s", data)
		}
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "✓ Exported to %s\n", result.ProfileFile)
		if result.MarginsFile != "" {
			fmt.Fprintf(&b, "  %s\n", result.MarginsFile)
		}
		fmt.Fprintf(&b, "  %s\n", result.MetadataFile)
		return r.writePlain("%s", b.String())

	case "json":
		data, err := formatter.ToMetadataJSON(export)
		if err != nil {
			return err
		}
		if output == "" {
			return r.writePlain("%s\n", data)
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		return r.writePlain("✓ Exported to %s\n", output)

	default:
		return fmt.Errorf("%w: %q (want text, markdown, csv or json)", shared.ErrUnknownFormat, format)
	}
}
