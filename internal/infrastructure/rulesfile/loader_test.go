package rulesfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/germatek-api/internal/domain/entity"
	"github.com/jhoicas/germatek-api/internal/infrastructure/rulesfile"
)

const sample = `
rules:
  - key: garage
    label: Automatic Garage Door
    mode: area_scaled
    base: 65000
    per_area: 13500.50
  - key: wpc_doors
    label: WPC Flush Door (per door)
    mode: fixed
    base: "16000"
`

func TestDecode_Reglas(t *testing.T) {
	rules, err := rulesfile.Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "garage", rules[0].Key)
	assert.Equal(t, entity.ModeAreaScaled, rules[0].Mode.Name())
	assert.Equal(t, "13500.5", rules[0].PerAreaUnit().String())

	assert.Equal(t, entity.ModeFixed, rules[1].Mode.Name())
	assert.Equal(t, "16000", rules[1].Base().String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	rules, err := rulesfile.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, rules, 2)

	_, err = rulesfile.LoadFile(filepath.Join(t.TempDir(), "no-existe.yaml"))
	assert.Error(t, err)
}

func TestDecode_Errores(t *testing.T) {
	cases := map[string]string{
		"sin reglas":        "rules: []\n",
		"campo desconocido": "rules:\n  - key: x\n    precio: 1\n",
		"monto inválido":    "rules:\n  - key: x\n    base: mucho\n",
		"modo inválido":     "rules:\n  - key: x\n    mode: hourly\n",
		"key vacía":         "rules:\n  - label: x\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rulesfile.Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}
