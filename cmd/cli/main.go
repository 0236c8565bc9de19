package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/plan-advisor/pkg/models/api"
	"github.com/fin-tools/plan-advisor/pkg/render"
	"github.com/fin-tools/plan-advisor/pkg/services/advisor"
	"github.com/fin-tools/plan-advisor/pkg/services/planner"
	"github.com/fin-tools/plan-advisor/pkg/view"
)

// Headless submission: same controller and renderer as the web gateway,
// rendered through the terminal view.
func main() {
	var (
		endpoint  string
		amount    string
		years     string
		invType   string
		risk      string
		increment string
		currency  string
		verbose   bool
	)

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Run one investment plan calculation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
			if !verbose {
				logger = logger.Level(zerolog.ErrorLevel)
			}
			ctx := logger.WithContext(cmd.Context())

			controller := planner.NewController(
				advisor.NewClient(endpoint),
				render.NewRenderer(currency),
			)

			terminal := view.NewTerminal(os.Stdout)
			controller.Submit(ctx, terminal, api.PlanForm{
				Amount:           amount,
				TimePeriod:       years,
				InvestmentType:   invType,
				RiskTolerance:    risk,
				MonthlyIncrement: increment,
			})
			if terminal.Failed() {
				return fmt.Errorf("calculation failed")
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:5000/api/calculate", "Calculation service URL")
	rootCmd.Flags().StringVar(&amount, "amount", "", "Investment amount")
	rootCmd.Flags().StringVar(&years, "years", "", "Time period in years")
	rootCmd.Flags().StringVar(&invType, "type", string(api.InvestmentFixed), "Investment type (fixed|floating)")
	rootCmd.Flags().StringVar(&risk, "risk", string(api.RiskModerate), "Risk tolerance (conservative|moderate|aggressive)")
	rootCmd.Flags().StringVar(&increment, "increment", "", "Monthly increment (floating only)")
	rootCmd.Flags().StringVar(&currency, "currency", render.DefaultCurrency, "Currency glyph for the summary")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log request diagnostics")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
