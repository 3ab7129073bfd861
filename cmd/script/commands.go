package main

import (
	"encoding/json"
	"fmt"
	"io"

	"launchpad/api"
	"launchpad/internal/domain"
	"launchpad/internal/service"

	"github.com/spf13/cobra"
)

func newRootCmd(handler *api.ApiHandler) *cobra.Command {
	root := &cobra.Command{
		Use:           "launchpad",
		Short:         "Operator commands for the launchpad backend",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newCheckBalanceCmd(handler),
		newListServicesCmd(handler),
		newSeedCmd(handler),
		newPortfolioCmd(handler),
	)
	return root
}

func printJson(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newCheckBalanceCmd(handler *api.ApiHandler) *cobra.Command {
	return &cobra.Command{
		Use:   "check-balance",
		Short: "Print the broker ledger balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := handler.BrokerRepository.GetBalance(cmd.Context())
			if err != nil {
				return err
			}
			return printJson(cmd.OutOrStdout(), balance)
		},
	}
}

func newListServicesCmd(handler *api.ApiHandler) *cobra.Command {
	return &cobra.Command{
		Use:   "list-services",
		Short: "List compute services known to the broker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := handler.BrokerRepository.ListServices(cmd.Context())
			if err != nil {
				return err
			}
			return printJson(cmd.OutOrStdout(), services)
		},
	}
}

func newSeedCmd(handler *api.ApiHandler) *cobra.Command {
	var (
		name          string
		opportunityID string
		amount        float64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo investor with one investment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			investor, err := handler.InvestorRepository.Add(ctx, domain.Investor{
				Name:                name,
				Description:         "Demo investor",
				RiskTolerance:       domain.RiskLevel_Medium,
				InvestmentFocus:     []string{"AI", "Healthcare"},
				MinInvestmentAmount: 1000,
				MaxInvestmentAmount: 100000,
			})
			if err != nil {
				return fmt.Errorf("failed to add investor: %w", err)
			}

			investment, err := handler.InvestmentService.Invest(ctx, service.InvestInput{
				InvestorID:    investor.ID,
				OpportunityID: opportunityID,
				Amount:        &amount,
			})
			if err != nil {
				return fmt.Errorf("failed to add investment: %w", err)
			}

			return printJson(cmd.OutOrStdout(), map[string]any{
				"investor":   investor,
				"investment": investment,
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "Demo Investor", "investor name")
	cmd.Flags().StringVar(&opportunityID, "opportunity", "1", "catalog opportunity id")
	cmd.Flags().Float64Var(&amount, "amount", 5000, "amount to invest")
	return cmd
}

func newPortfolioCmd(handler *api.ApiHandler) *cobra.Command {
	var asCsv bool
	cmd := &cobra.Command{
		Use:   "portfolio <investor-id>",
		Short: "Print an investor's portfolio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asCsv {
				out, err := handler.PortfolioService.ExportCsv(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			details, err := handler.PortfolioService.GetPortfolioDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJson(cmd.OutOrStdout(), details)
		},
	}
	cmd.Flags().BoolVar(&asCsv, "csv", false, "print csv instead of json")
	return cmd
}
