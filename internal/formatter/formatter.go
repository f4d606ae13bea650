// package formatter provides functions to export profile data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/prefview/internal/models"
	"github.com/desertthunder/prefview/internal/shared"
	"github.com/desertthunder/prefview/internal/ui"
)

// Export is a named profile ready to be written out.
type Export struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Args        models.DisplayArgs `json:"args"`
}

// ExportToCSV converts the profile to CSV with columns: Voters, Rank 1 .. Rank N.
//
// Each record is one ranking column of the profile, listing candidate names best first.
func ExportToCSV(export *Export) ([]byte, error) {
	a := export.Args
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Voters"}
	for i := 1; i <= a.NumCands; i++ {
		headers = append(headers, "Rank "+strconv.Itoa(i))
	}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for col, ranking := range a.Prof {
		record := []string{strconv.Itoa(a.RankSizes[col])}
		for _, cand := range ranking {
			record = append(record, a.Name(cand))
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// MarginsToCSV writes the margin matrix with candidate names as the header row and column.
func MarginsToCSV(export *Export) ([]byte, error) {
	a := export.Args
	if !a.HasMargins() {
		return nil, fmt.Errorf("%w: profile %q has no margin matrix", shared.ErrInvalidInput, export.Name)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(append([]string{""}, a.CandNames[:a.NumCands]...)); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for r, row := range a.MarginMatrix {
		record := []string{a.Name(r)}
		for _, m := range row {
			record = append(record, strconv.Itoa(m))
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts the profile and its margins, when present, to Markdown tables.
//
// Pinned candidates are marked the way the widget marks them: c1 in bold and c2 in italics.
func ExportToMarkdown(export *Export) ([]byte, error) {
	a := export.Args
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", export.Name))

	if export.Description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", export.Description))
	}

	buf.WriteString(fmt.Sprintf("**Candidates**: %d\n", a.NumCands))
	buf.WriteString(fmt.Sprintf("**Voters**: %d\n\n", a.NumVoters()))

	buf.WriteString("## Profile\n\n")
	header := make([]string, len(a.RankSizes))
	for i, size := range a.RankSizes {
		header[i] = strconv.Itoa(size)
	}
	writeMarkdownRow(&buf, header)
	writeMarkdownRule(&buf, len(header))

	for row := 0; row < a.NumCands; row++ {
		cells := make([]string, len(a.Prof))
		for col := range a.Prof {
			cells[col] = markdownName(a, a.Prof[col][row])
		}
		writeMarkdownRow(&buf, cells)
	}

	if a.HasMargins() {
		buf.WriteString("\n## Margins\n\n")
		writeMarkdownRow(&buf, append([]string{""}, a.CandNames[:a.NumCands]...))
		writeMarkdownRule(&buf, a.NumCands+1)
		for r, mrow := range a.MarginMatrix {
			cells := []string{markdownName(a, r)}
			for _, m := range mrow {
				cells = append(cells, strconv.Itoa(m))
			}
			writeMarkdownRow(&buf, cells)
		}
	}

	return buf.Bytes(), nil
}

func writeMarkdownRow(buf *bytes.Buffer, cells []string) {
	buf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func writeMarkdownRule(buf *bytes.Buffer, n int) {
	buf.WriteString("|" + strings.Repeat(" --- |", n) + "\n")
}

func markdownName(a models.DisplayArgs, c int) string {
	name := strings.ReplaceAll(a.Name(c), "|", `\|`)
	switch c {
	case a.C1:
		return "**" + name + "**"
	case a.C2:
		return "_" + name + "_"
	default:
		return name
	}
}

// ExportToText renders the static widget as plain text with a short legend.
func ExportToText(export *Export, gap int) ([]byte, error) {
	a := export.Args
	palette := ui.NewPalette(lipgloss.NewRenderer(io.Discard), shared.DefaultConfig().Theme)
	w, err := ui.NewWidget(a, ui.Options{Gap: gap, Palette: palette})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Profile: %s\n", export.Name))
	if export.Description != "" {
		buf.WriteString(fmt.Sprintf("Description: %s\n", export.Description))
	}
	buf.WriteString(fmt.Sprintf("Voters: %d\n", a.NumVoters()))
	if a.C1 != models.NoCandidate {
		buf.WriteString(fmt.Sprintf("c1: %s\n", a.Name(a.C1)))
	}
	if a.C2 != models.NoCandidate {
		buf.WriteString(fmt.Sprintf("c2: %s\n", a.Name(a.C2)))
	}
	buf.WriteString("\n")
	buf.WriteString(w.View())
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of the export, including the argument record
func ToMetadataJSON(export *Export) ([]byte, error) {
	return shared.MarshalJSON(export, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	ProfileFile  string
	MarginsFile  string
	MetadataFile string
}

// WriteCSVExport exports a profile to CSV format with accompanying metadata JSON file.
//
// Defaults to a slug of the profile name as the base filename & creates {base}_profile.csv,
// {base}_margins.csv (only with a margin matrix) and {base}_metadata.json
func WriteCSVExport(export *Export, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = Slug(export.Name)
	}

	csvData, err := ExportToCSV(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	result := &CSVExportResult{ProfileFile: baseFilepath + "_profile.csv"}
	if err := os.WriteFile(result.ProfileFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	if export.Args.HasMargins() {
		marginData, err := MarginsToCSV(export)
		if err != nil {
			return nil, fmt.Errorf("failed to generate margins CSV: %w", err)
		}
		result.MarginsFile = baseFilepath + "_margins.csv"
		if err := os.WriteFile(result.MarginsFile, marginData, 0644); err != nil {
			return nil, fmt.Errorf("failed to write margins file: %w", err)
		}
	}

	metadataJSON, err := ToMetadataJSON(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	result.MetadataFile = baseFilepath + "_metadata.json"
	if err := os.WriteFile(result.MetadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return result, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory string
	Files     []string
}

// WriteMarkdownExport exports a profile to Markdown format in a dedicated directory.
//
// Directory name defaults to a slug of the profile name.
// Creates a directory structure: {dir}/README.md and {dir}/args.json
func WriteMarkdownExport(export *Export, outputDir string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = Slug(export.Name)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{Directory: outputDir, Files: []string{}}

	mdData, err := ExportToMarkdown(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}
	result.Files = append(result.Files, mdFile)

	argsData, err := shared.MarshalJSON(export.Args, true)
	if err != nil {
		return nil, fmt.Errorf("failed to encode args: %w", err)
	}

	argsFile := filepath.Join(outputDir, "args.json")
	if err := os.WriteFile(argsFile, argsData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write args file: %w", err)
	}
	result.Files = append(result.Files, argsFile)

	return result, nil
}

// WriteTextExport exports a profile to plain text format.
//
// Defaults to {slug}_profile.txt as the filename.
func WriteTextExport(export *Export, path string, gap int) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s_profile.txt", Slug(export.Name))
	}

	textData, err := ExportToText(export, gap)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(path, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return path, nil
}

// Slug lowercases name and replaces every run of non-alphanumeric runes with a single dash.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "profile"
	}
	return s
}
