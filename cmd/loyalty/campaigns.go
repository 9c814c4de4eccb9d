package main

import (
	"context"

	"github.com/QuangTung97/loyalty/app"
	"github.com/QuangTung97/loyalty/service/campaign"
	"github.com/spf13/cobra"
)

func buyCampaignCommand() *cobra.Command {
	var campaignID string
	var customerID string

	cmd := &cobra.Command{
		Use:   "buy-campaign",
		Short: "spend points of a customer on a campaign reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp("buy-campaign", func(ctx context.Context, a *app.App) error {
				result, err := a.Campaigns.Buy(ctx, campaignID, customerID)
				if err != nil {
					return err
				}
				return printJSON(map[string]string{
					"purchaseId": result.PurchaseID,
					"coupon":     result.Coupon,
				})
			})
		},
	}
	cmd.Flags().StringVar(&campaignID, "campaign", "", "campaign id")
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	_ = cmd.MarkFlagRequired("campaign")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func availableCampaignsCommand() *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "available-campaigns",
		Short: "list the campaigns a customer can buy now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp("available-campaigns", func(ctx context.Context, a *app.App) error {
				campaigns, err := a.Campaigns.AvailableCampaigns(ctx, customerID)
				if err != nil {
					return err
				}
				return printJSON(newCampaignViews(campaigns))
			})
		},
	}
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func simulateCashbackCommand() *cobra.Command {
	var customerID string
	var points string

	cmd := &cobra.Command{
		Use:   "simulate-cashback",
		Short: "compute the best cashback of a customer for an amount of points",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimal("points", points)
			if err != nil {
				return err
			}
			return runWithApp("simulate-cashback", func(ctx context.Context, a *app.App) error {
				cashback, err := a.Campaigns.SimulateCashback(ctx, customerID, amount)
				if err != nil {
					return err
				}
				return printJSON(cashback)
			})
		},
	}
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	cmd.Flags().StringVar(&points, "points", "", "amount of points to convert")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("points")
	return cmd
}

func redeemCashbackCommand() *cobra.Command {
	var customerID string
	var points, pointValue, reward string

	cmd := &cobra.Command{
		Use:   "redeem-cashback",
		Short: "redeem a simulated cashback, the values must match the simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := campaign.RedeemInput{CustomerID: customerID}

			var err error
			if input.PointsAmount, err = parseDecimal("points", points); err != nil {
				return err
			}
			if input.PointValue, err = parseDecimal("pointValue", pointValue); err != nil {
				return err
			}
			if input.RewardAmount, err = parseDecimal("rewardAmount", reward); err != nil {
				return err
			}

			return runWithApp("redeem-cashback", func(ctx context.Context, a *app.App) error {
				cashback, err := a.Campaigns.RedeemCashback(ctx, input)
				if err != nil {
					return err
				}
				return printJSON(cashback)
			})
		},
	}
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	cmd.Flags().StringVar(&points, "points", "", "amount of points to convert")
	cmd.Flags().StringVar(&pointValue, "point-value", "", "point value returned by the simulation")
	cmd.Flags().StringVar(&reward, "reward", "", "reward amount returned by the simulation")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("points")
	_ = cmd.MarkFlagRequired("point-value")
	_ = cmd.MarkFlagRequired("reward")
	return cmd
}

func couponUsageCommand() *cobra.Command {
	var input campaign.CouponUsageInput

	cmd := &cobra.Command{
		Use:   "coupon-usage",
		Short: "mark a bought coupon as used or unused",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp("coupon-usage", func(ctx context.Context, a *app.App) error {
				if err := a.Campaigns.ChangeCouponUsage(ctx, input); err != nil {
					return err
				}
				return printJSON(map[string]bool{"used": input.Used})
			})
		},
	}
	cmd.Flags().StringVar(&input.CampaignID, "campaign", "", "campaign id")
	cmd.Flags().StringVar(&input.CustomerID, "customer", "", "customer id")
	cmd.Flags().StringVar(&input.Coupon, "coupon", "", "coupon code")
	cmd.Flags().BoolVar(&input.Used, "used", true, "new usage state")
	return cmd
}
