package main

import (
	"context"
	"time"

	"github.com/QuangTung97/loyalty/app"
	"github.com/QuangTung97/loyalty/service/earning"
	"github.com/QuangTung97/loyalty/service/transaction"
	"github.com/spf13/cobra"
)

type importLine struct {
	DocumentNumber string `json:"documentNumber"`
	TransactionID  string `json:"transactionId,omitempty"`
	Error          string `json:"error,omitempty"`
}

func registerTransactionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register-transactions <file.yml>",
		Short: "register the transactions of a file, customers are assigned and points awarded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := transaction.LoadImportFile(args[0])
			if err != nil {
				return err
			}

			return runWithApp("register-transactions", func(ctx context.Context, a *app.App) error {
				results := transaction.Import(ctx, a.Transactions, file)

				lines := make([]importLine, 0, len(results))
				for _, r := range results {
					line := importLine{DocumentNumber: r.DocumentNumber, TransactionID: r.TransactionID}
					if r.Err != nil {
						line.Error = r.Err.Error()
					}
					lines = append(lines, line)
				}
				return printJSON(lines)
			})
		},
	}
}

func customEventCommand() *cobra.Command {
	var input earning.ReportInput

	cmd := &cobra.Command{
		Use:   "custom-event",
		Short: "report a custom event of a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp("custom-event", func(ctx context.Context, a *app.App) error {
				points, err := a.CustomEvents.Report(ctx, input)
				if err != nil {
					return err
				}
				return printJSON(map[string]interface{}{"points": points})
			})
		},
	}
	cmd.Flags().StringVar(&input.EventName, "event", "", "name of the custom event")
	cmd.Flags().StringVar(&input.CustomerID, "customer", "", "customer id")
	cmd.Flags().StringVar(&input.PosID, "pos", "", "point of sale id")
	return cmd
}

type balanceOutput struct {
	Account   accountView    `json:"account"`
	Transfers []transferView `json:"transfers,omitempty"`
}

func balanceCommand() *cobra.Command {
	var customerID string
	var history bool

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "show the points account of a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp("balance", func(ctx context.Context, a *app.App) error {
				account, err := a.Ledger.Balance(ctx, customerID)
				if err != nil {
					return err
				}
				output := balanceOutput{Account: newAccountView(account)}
				if history {
					transfers, err := a.Ledger.History(ctx, customerID)
					if err != nil {
						return err
					}
					output.Transfers = newTransferViews(transfers)
				}
				return printJSON(output)
			})
		},
	}
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	cmd.Flags().BoolVar(&history, "history", false, "list the transfers as well")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func expirePointsCommand() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "expire-points",
		Short: "expire the points transfers whose expiry date has passed",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				var err error
				now, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return err
				}
			}

			return runWithApp("expire-points", func(ctx context.Context, a *app.App) error {
				count, err := a.Ledger.ExpireTransfers(ctx, now)
				if err != nil {
					return err
				}
				return printJSON(map[string]int{"expired": count})
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "reference time in RFC3339, default now")
	return cmd
}
