package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/germatek-api/internal/application/dto"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
	"github.com/jhoicas/germatek-api/internal/domain/quote"
)

func newEstimateCommand(opts *options) *cobra.Command {
	var (
		product, width, height, qty string
		asJSON                      bool
	)
	c := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a price range for a product and its dimensions",
		Long: `Estimate a price range. Dimensions are in metres and accept the same
formats as the API (decimal or exponent notation).

Examples:
  quotectl estimate --product garage --width 3 --height 2.2
  quotectl estimate --product wpc_doors --width 0.9 --height 2.1 --qty 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			est, err := quote.NewEstimator(cat, opts.policy())
			if err != nil {
				return err
			}
			req, err := dto.QuoteRequest{
				Product: product,
				WidthM:  dto.NewNumericInput(width),
				HeightM: dto.NewNumericInput(height),
				Qty:     dto.NewNumericInput(qty),
			}.ToEntity()
			if err != nil {
				return err
			}
			result, err := est.Estimate(req)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dto.NewEstimateResponse(result))
			}
			return printEstimate(cmd.OutOrStdout(), result)
		},
	}
	c.Flags().StringVarP(&product, "product", "p", "", "product key (see rules list)")
	c.Flags().StringVarP(&width, "width", "W", "", "width in metres")
	c.Flags().StringVarP(&height, "height", "H", "", "height in metres")
	c.Flags().StringVarP(&qty, "qty", "q", "1", "quantity")
	c.Flags().BoolVar(&asJSON, "json", false, "print the estimate object as JSON")
	_ = c.MarkFlagRequired("product")
	return c
}

func printEstimate(w io.Writer, e *entity.QuoteEstimate) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w,
		"Product:  %s\nArea:     %s m2\nQty:      %s\nUnit:     %s %d\nRange:    %s %d - %d\n",
		e.ProductLabel, e.Area.StringFixed(2), e.Qty.String(),
		e.Currency, e.UnitEstimate.IntPart(),
		e.Currency, e.Low.IntPart(), e.High.IntPart(),
	)
	if err != nil {
		return err
	}
	if e.MinJobApplied {
		_, err = fmt.Fprintln(w, "(minimum job value applied)")
	}
	return err
}
