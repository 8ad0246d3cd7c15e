package ux

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatterUnknown(t *testing.T) {
	_, err := NewFormatter("xml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(map[string]int{"total_employees": 3}))

	var out map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 3, out["total_employees"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("yaml", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(map[string]string{"name": "Acme"}))
	assert.Contains(t, buf.String(), "name: Acme")
}

func TestTableFormatterAlignment(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &FormatterOptions{Writer: &buf, NoColor: true})
	require.NoError(t, err)

	table := Table{
		Headers: []string{"USERNAME", "ROLE"},
		Rows: [][]string{
			{"demoadmin", "admin"},
			{"a", "hr"},
		},
	}
	require.NoError(t, f.Format(table))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "USERNAME   ROLE", strings.TrimRight(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[1], "demoadmin  admin"))
	assert.True(t, strings.HasPrefix(lines[2], "a          hr"))
}

func TestTableFormatterRejectsArbitraryStructs(t *testing.T) {
	f, err := NewFormatter("text", &FormatterOptions{Writer: &bytes.Buffer{}, NoColor: true})
	require.NoError(t, err)
	assert.Error(t, f.Format(struct{ X int }{1}))
}

func TestNotifierRecorder(t *testing.T) {
	var rec Recorder
	rec.Success("logged in")
	rec.Error("login failed")
	rec.Info("logged out")

	assert.Equal(t, []string{"logged in"}, rec.Successes)
	assert.Equal(t, []string{"login failed"}, rec.Errors)
	assert.Equal(t, []string{"logged out"}, rec.Infos)
}

func TestConsoleNotifierNoColor(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf, true)
	n.Success("saved")
	n.Error("broken")
	n.Info("note")

	out := buf.String()
	assert.Contains(t, out, "✓ saved")
	assert.Contains(t, out, "✗ broken")
	assert.Contains(t, out, "• note")
}
