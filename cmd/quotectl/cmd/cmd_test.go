package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/germatek-api/cmd/quotectl/cmd"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PRICING_SOURCE", "builtin")
	root := cmd.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEstimate_Texto(t *testing.T) {
	out, err := run(t, "estimate", "--product", "garage", "--width", "3", "--height", "2.2")
	require.NoError(t, err)
	assert.Contains(t, out, "Automatic Garage Door")
	assert.Contains(t, out, "Area:     6.60 m2")
	assert.Contains(t, out, "Range:    MUR 138,690 - 169,510")
}

func TestEstimate_JSON(t *testing.T) {
	out, err := run(t, "estimate", "-p", "wpc_doors", "-W", "0.9", "-H", "2.1", "-q", "3", "--json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, float64(43200), got["low"])
	assert.Equal(t, float64(52800), got["high"])
}

func TestEstimate_MinimoAplicado(t *testing.T) {
	out, err := run(t, "estimate", "-p", "unknown", "-W", "1", "-H", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "minimum job value applied")
}

func TestEstimate_Invalido(t *testing.T) {
	_, err := run(t, "estimate", "-p", "garage", "-W", "0", "-H", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}

func TestRulesList(t *testing.T) {
	out, err := run(t, "rules", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7, "encabezado + 6 reglas")
	assert.True(t, strings.HasPrefix(lines[1], "garage"))
	assert.Contains(t, out, "area_scaled")
}

func TestRulesSQL(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "rules.csv")
	require.NoError(t, os.WriteFile(input, []byte("key,label,mode,base,per_area\ninox,Inox,area_scaled,15000,22000\n"), 0o600))
	output := filepath.Join(dir, "seed.sql")

	_, err := run(t, "rules", "sql", "--input", input, "--output", output)
	require.NoError(t, err)
	sql, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(sql), "VALUES ('inox', 'Inox', 'area_scaled', 15000.00, 22000.00, TRUE, NOW())")
}

func TestRulesSQL_ClaveRepetida(t *testing.T) {
	input := filepath.Join(t.TempDir(), "rules.csv")
	doc := "key,label,mode,base,per_area\ninox,Inox,area_scaled,1,1\ninox,Inox 2,fixed,2,\n"
	require.NoError(t, os.WriteFile(input, []byte(doc), 0o600))

	_, err := run(t, "rules", "sql", "--input", input)
	assert.Error(t, err)
}
