// quotectl herramientas de línea de comandos del cotizador: estimar sin servidor,
// listar el catálogo y preparar/importar reglas de precios en PostgreSQL.
package main

import (
	"os"

	"github.com/jhoicas/germatek-api/cmd/quotectl/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
