package formatter

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/prefview/internal/shared"
	th "github.com/desertthunder/prefview/internal/testing"
)

func cycleExport(margins bool) *Export {
	args := th.CycleArgs()
	args.C1, args.C2 = 1, 2
	if margins {
		args.MarginMatrix = th.CycleMargins()
	}
	return &Export{Name: "Condorcet Cycle", Description: "a beats b beats c beats a", Args: args}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(cycleExport(false))
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		want := []string{
			"Voters,Rank 1,Rank 2,Rank 3",
			"1,a,b,c",
			"1,b,c,a",
			"1,c,a,b",
		}
		if len(lines) != len(want) {
			t.Fatalf("expected %d lines, got %d: %s", len(want), len(lines), data)
		}
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
			}
		}
	})

	t.Run("MarginsToCSV", func(t *testing.T) {
		data, err := MarginsToCSV(cycleExport(true))
		if err != nil {
			t.Fatalf("MarginsToCSV failed: %v", err)
		}
		output := string(data)
		if !strings.HasPrefix(output, ",a,b,c\n") {
			t.Errorf("margins CSV missing header, got: %s", output)
		}
		if !strings.Contains(output, "a,0,1,-1") {
			t.Errorf("margins CSV missing first row, got: %s", output)
		}

		t.Run("without margins", func(t *testing.T) {
			if _, err := MarginsToCSV(cycleExport(false)); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		t.Run("without margins", func(t *testing.T) {
			data, err := ExportToMarkdown(cycleExport(false))
			if err != nil {
				t.Fatalf("ExportToMarkdown failed: %v", err)
			}
			output := string(data)

			for _, want := range []string{
				"# Condorcet Cycle",
				"**Description**: a beats b beats c beats a",
				"**Candidates**: 3",
				"**Voters**: 3",
				"| 1 | 1 | 1 |",
				"| a | **b** | _c_ |",
			} {
				if !strings.Contains(output, want) {
					t.Errorf("Markdown missing %q, got:\n%s", want, output)
				}
			}
			if strings.Contains(output, "## Margins") {
				t.Error("Markdown should not contain a margins section")
			}
		})

		t.Run("with margins", func(t *testing.T) {
			data, err := ExportToMarkdown(cycleExport(true))
			if err != nil {
				t.Fatalf("ExportToMarkdown failed: %v", err)
			}
			output := string(data)
			for _, want := range []string{"## Margins", "|  | a | b | c |", "| a | 0 | 1 | -1 |", "| **b** | -1 | 0 | 1 |"} {
				if !strings.Contains(output, want) {
					t.Errorf("Markdown missing %q, got:\n%s", want, output)
				}
			}
		})
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(cycleExport(true), 4)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}
		output := string(data)

		for _, want := range []string{"Profile: Condorcet Cycle", "Voters: 3", "c1: b", "c2: c", "│"} {
			if !strings.Contains(output, want) {
				t.Errorf("text export missing %q, got:\n%s", want, output)
			}
		}
		if strings.Contains(output, "\x1b[") {
			t.Error("text export should not contain ANSI escapes")
		}

		t.Run("invalid args", func(t *testing.T) {
			export := cycleExport(false)
			export.Args.NumCands = 0
			if _, err := ExportToText(export, 4); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	})

	t.Run("ToMetadataJSON", func(t *testing.T) {
		data, err := ToMetadataJSON(cycleExport(false))
		if err != nil {
			t.Fatalf("ToMetadataJSON failed: %v", err)
		}

		var decoded struct {
			Name string `json:"name"`
			Args struct {
				C1       *int     `json:"c1"`
				CandName []string `json:"cand_names"`
			} `json:"args"`
		}
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("metadata is not valid JSON: %v", err)
		}
		if decoded.Name != "Condorcet Cycle" || len(decoded.Args.CandName) != 3 {
			t.Errorf("unexpected metadata: %s", data)
		}
		if decoded.Args.C1 == nil || *decoded.Args.C1 != 1 {
			t.Errorf("expected c1 = 1, got %s", data)
		}
	})
}

func TestSlug(t *testing.T) {
	tc := []struct{ in, want string }{
		{"Condorcet Cycle", "condorcet-cycle"},
		{"  Illustrative Example #1 ", "illustrative-example-1"},
		{"a--b", "a-b"},
		{"***", "profile"},
	}
	for _, tt := range tc {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slug(tt.in); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriters(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		t.Run("WithDefaultPath", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			result, err := WriteCSVExport(cycleExport(true), "")
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}

			if result.ProfileFile != "condorcet-cycle_profile.csv" {
				t.Errorf("unexpected profile file %q", result.ProfileFile)
			}
			th.AssertFileExists(t, result.ProfileFile)
			th.AssertFileExists(t, result.MarginsFile)
			th.AssertFileExists(t, result.MetadataFile)

			if !strings.Contains(th.MustReadFile(t, result.MetadataFile), `"name": "Condorcet Cycle"`) {
				t.Error("metadata file missing profile name")
			}
		})

		t.Run("WithoutMargins", func(t *testing.T) {
			base := filepath.Join(t.TempDir(), "cycle")
			result, err := WriteCSVExport(cycleExport(false), base)
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}
			if result.MarginsFile != "" {
				t.Errorf("expected no margins file, got %q", result.MarginsFile)
			}
			th.AssertFileExists(t, base+"_profile.csv")
		})
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		result, err := WriteMarkdownExport(cycleExport(true), dir)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		th.AssertDirExists(t, result.Directory)
		if len(result.Files) != 2 {
			t.Fatalf("expected README.md and args.json, got %v", result.Files)
		}
		content := th.MustReadFile(t, filepath.Join(dir, "README.md"))
		if !strings.Contains(content, "## Margins") {
			t.Error("README.md missing margins section")
		}
		if !strings.Contains(th.MustReadFile(t, filepath.Join(dir, "args.json")), `"margin_matrix"`) {
			t.Error("args.json missing margin matrix")
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cycle.txt")
		got, err := WriteTextExport(cycleExport(false), path, 8)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
		if !strings.Contains(th.MustReadFile(t, path), "Profile: Condorcet Cycle") {
			t.Error("text file missing header")
		}
	})

	t.Run("WriteToMissingDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "cycle.txt")
		if _, err := WriteTextExport(cycleExport(false), path, 8); err == nil {
			t.Error("expected error writing into a missing directory")
		}
	})
}
