package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerhard-ee/schemascan/pkg/report"
)

func sampleReport() *report.Report {
	rep := &report.Report{}
	rep.Append(report.Row{Table: "USERS", Column: "ID", Type: "NUMBER", Nullable: "NO", Samples: "1, 2"})
	rep.Append(report.Row{Table: "USERS", Column: "EMAIL", Type: "VARCHAR", Nullable: "YES", Samples: "a@x.com"})
	return rep
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ToCSV(sampleReport(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, utf8BOM), "output must start with a UTF-8 BOM")

	body := string(bytes.TrimPrefix(data, utf8BOM))
	lines := []string{
		"table,column,type,nullable,samples",
		`USERS,ID,NUMBER,NO,"1, 2"`,
		"USERS,EMAIL,VARCHAR,YES,a@x.com",
		"",
	}
	assert.Equal(t, lines, splitLines(body))
}

func TestToCSVIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	rep := sampleReport()

	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.csv")
	require.NoError(t, ToCSV(rep, first))
	require.NoError(t, ToCSV(rep, second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same report must serialize to identical bytes")
}

func TestToCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than the new file"), 0644))

	rep := &report.Report{}
	rep.Append(report.Row{Table: "T", Column: "C", Type: "INT", Nullable: "NO", Samples: ""})
	require.NoError(t, ToCSV(rep, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestToCSVEmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ToCSV(&report.Report{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(bytes.TrimPrefix(data, utf8BOM))
	assert.Equal(t, "table,column,type,nullable,samples\n", body)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
