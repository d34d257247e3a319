package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/germatek-api/internal/domain/entity"
	"github.com/jhoicas/germatek-api/internal/domain/quote"
	"github.com/jhoicas/germatek-api/internal/domain/repository"
	"github.com/jhoicas/germatek-api/internal/infrastructure/postgres"
	"github.com/jhoicas/germatek-api/internal/infrastructure/rulesfile"
)

func newRulesCommand(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and manage the pricing catalog",
	}
	c.AddCommand(newRulesListCommand(opts))
	c.AddCommand(newRulesSQLCommand(opts))
	c.AddCommand(newRulesImportCommand(opts))
	return c
}

func newRulesListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the rules of the configured catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tLABEL\tMODE\tBASE\tPER AREA")
			for _, r := range cat.Rules() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					r.Key, r.Label, r.Mode.Name(), r.Base().String(), r.PerAreaUnit().String())
			}
			return tw.Flush()
		},
	}
}

// csvFlags entrada común de sql e import.
type csvFlags struct {
	input   string
	charset string
}

func (f *csvFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.input, "input", "i", "", "CSV file with key,label,mode,base,per_area")
	c.Flags().StringVar(&f.charset, "charset", "utf-8", "CSV encoding: utf-8, iso-8859-1, windows-1252")
	_ = c.MarkFlagRequired("input")
}

// load lee el CSV y lo valida como catálogo (claves repetidas, montos negativos).
func (f *csvFlags) load() ([]entity.ProductRule, error) {
	rules, err := rulesfile.LoadCSV(f.input, f.charset)
	if err != nil {
		return nil, err
	}
	if _, err := quote.NewCatalog(rules...); err != nil {
		return nil, err
	}
	return rules, nil
}

func newRulesSQLCommand(opts *options) *cobra.Command {
	var (
		in     csvFlags
		output string
	)
	c := &cobra.Command{
		Use:   "sql",
		Short: "Generate a SQL seed for product_rules from a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := in.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("crear %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}
			if err := rulesfile.WriteSQL(out, rules); err != nil {
				return err
			}
			opts.log.Debug().Int("rules", len(rules)).Str("output", output).Msg("seed SQL generado")
			if output != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Generado %s: %d reglas\n", output, len(rules))
			}
			return nil
		},
	}
	in.register(c)
	c.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return c
}

func newRulesImportCommand(opts *options) *cobra.Command {
	var in csvFlags
	c := &cobra.Command{
		Use:   "import",
		Short: "Upsert the rules of a CSV file into PostgreSQL (single transaction)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := in.load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, opts.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			err = postgres.NewTxRunner(pool).Run(ctx, func(repo repository.ProductRuleRepository) error {
				for _, r := range rules {
					if err := repo.Upsert(ctx, r); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			opts.log.Info().Int("rules", len(rules)).Msg("reglas importadas")
			fmt.Fprintf(cmd.OutOrStdout(), "Importadas %d reglas\n", len(rules))
			return nil
		},
	}
	in.register(c)
	return c
}
