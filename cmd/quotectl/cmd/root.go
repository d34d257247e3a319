// Package cmd comandos de quotectl.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/germatek-api/internal/domain/quote"
	"github.com/jhoicas/germatek-api/internal/infrastructure/catalog"
	"github.com/jhoicas/germatek-api/pkg/config"
	"github.com/jhoicas/germatek-api/pkg/logger"
)

// options estado compartido por los subcomandos; se llena en PersistentPreRunE.
type options struct {
	source    string
	rulesFile string
	verbose   bool

	cfg *config.Config
	log *logger.Logger
}

// NewRootCommand arma el árbol de comandos.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Germatek quote estimator tools",
		Long: `quotectl runs the same estimator as the API, without a server.

Examples:
  quotectl estimate --product garage --width 3 --height 2.2
  quotectl rules list --source file --rules-file rules.yaml
  quotectl rules sql --input rules.csv --charset iso-8859-1 --output seed.sql
  quotectl rules import --input rules.csv`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init()
		},
	}

	root.PersistentFlags().StringVar(&opts.source, "source", "", "catalog source: builtin, file, postgres (default PRICING_SOURCE)")
	root.PersistentFlags().StringVar(&opts.rulesFile, "rules-file", "", "YAML rules file for --source file (default PRICING_RULES_FILE)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(newEstimateCommand(opts))
	root.AddCommand(newRulesCommand(opts))
	return root
}

func (o *options) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.source != "" {
		cfg.Pricing.Source = o.source
	}
	if o.rulesFile != "" {
		cfg.Pricing.RulesFile = o.rulesFile
	}
	o.cfg = cfg

	o.log = logger.Nop()
	if o.verbose {
		o.log = logger.New(logger.Config{Env: "development", Level: "debug", Output: os.Stderr})
	}
	return nil
}

// loadCatalog construye el catálogo desde la fuente configurada.
func (o *options) loadCatalog(ctx context.Context) (*quote.Catalog, error) {
	o.log.Debug().Str("source", o.cfg.Pricing.Source).Msg("cargando catálogo")
	cat, err := catalog.Source{Pricing: o.cfg.Pricing, DB: o.cfg.DB}.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}
	return cat, nil
}

func (o *options) policy() quote.Policy {
	return quote.Policy{
		MinJob:   o.cfg.Pricing.MinJob,
		Band:     o.cfg.Pricing.Band,
		Currency: o.cfg.Pricing.Currency,
	}
}
