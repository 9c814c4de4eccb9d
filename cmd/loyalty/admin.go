package main

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/QuangTung97/loyalty/app"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/fixture"
	"github.com/QuangTung97/loyalty/service/photo"
	"github.com/spf13/cobra"
)

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixtures.yml>",
		Short: "insert the customers, earning rules and campaigns of a fixture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			return runWithApp("seed", func(ctx context.Context, a *app.App) error {
				result, err := a.Seeder().Seed(ctx, file)
				if err != nil {
					return err
				}
				return printJSON(map[string]int{
					"customers":    result.Customers,
					"earningRules": result.EarningRules,
					"campaigns":    result.Campaigns,
				})
			})
		},
	}
}

func parseBool(name string, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, apperr.Validation(name, "must be true or false")
	}
	return b, nil
}

// photoOwner adapts the admin of an entity holding one photo
type photoOwner struct {
	kind  photo.Kind
	get   func(ctx context.Context, id string) (model.NullPhoto, error)
	setTo func(ctx context.Context, id string, photo model.NullPhoto) error
}

func earningRuleOwner(a *app.App) photoOwner {
	return photoOwner{
		kind: photo.KindEarningRule,
		get: func(ctx context.Context, id string) (model.NullPhoto, error) {
			rule, err := a.EarningAdmin.Get(ctx, id)
			return rule.Photo, err
		},
		setTo: a.EarningAdmin.SetPhoto,
	}
}

func campaignOwner(a *app.App) photoOwner {
	return photoOwner{
		kind: photo.KindCampaign,
		get: func(ctx context.Context, id string) (model.NullPhoto, error) {
			c, err := a.CampaignAdmin.Get(ctx, id)
			return c.Photo, err
		},
		setTo: a.CampaignAdmin.SetPhoto,
	}
}

func photoCommands(group string, owner func(a *app.App) photoOwner) []*cobra.Command {
	upload := &cobra.Command{
		Use:   "photo <id> <file>",
		Short: "upload a png, jpeg or gif photo, replacing the current one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, path := args[0], args[1]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			return runWithApp(group+"-photo", func(ctx context.Context, a *app.App) error {
				o := owner(a)
				previous, err := o.get(ctx, id)
				if err != nil {
					return err
				}
				set := func(ctx context.Context, p model.NullPhoto) error {
					return o.setTo(ctx, id, p)
				}
				p, err := a.Photos.Replace(ctx, o.kind, previous,
					filepath.Base(path), mime.TypeByExtension(filepath.Ext(path)), f, set)
				if err != nil {
					return err
				}
				return printJSON(p)
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove-photo <id>",
		Short: "remove the current photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return runWithApp(group+"-remove-photo", func(ctx context.Context, a *app.App) error {
				o := owner(a)
				previous, err := o.get(ctx, id)
				if err != nil {
					return err
				}
				return a.Photos.Detach(ctx, previous, func(ctx context.Context, p model.NullPhoto) error {
					return o.setTo(ctx, id, p)
				})
			})
		},
	}
	return []*cobra.Command{upload, remove}
}

type earningRuleView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

func earningRuleCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "earning-rule",
		Short: "manage earning rules",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "list every earning rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp("earning-rule-list", func(ctx context.Context, a *app.App) error {
				rules, err := a.EarningAdmin.List(ctx)
				if err != nil {
					return err
				}
				views := make([]earningRuleView, 0, len(rules))
				for _, r := range rules {
					views = append(views, earningRuleView{
						ID:     r.ID,
						Name:   r.Name,
						Type:   r.Variant.RuleType().String(),
						Active: r.Active,
					})
				}
				return printJSON(views)
			})
		},
	}

	setActive := &cobra.Command{
		Use:   "set-active <id> <true|false>",
		Short: "activate or deactivate an earning rule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := parseBool("active", args[1])
			if err != nil {
				return err
			}
			return runWithApp("earning-rule-set-active", func(ctx context.Context, a *app.App) error {
				return a.EarningAdmin.SetActive(ctx, args[0], active)
			})
		},
	}

	root.AddCommand(list, setActive)
	root.AddCommand(photoCommands("earning-rule", earningRuleOwner)...)
	return root
}

func campaignCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "campaign",
		Short: "manage campaigns",
	}

	setActive := &cobra.Command{
		Use:   "set-active <id> <true|false>",
		Short: "activate or deactivate a campaign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := parseBool("active", args[1])
			if err != nil {
				return err
			}
			return runWithApp("campaign-set-active", func(ctx context.Context, a *app.App) error {
				return a.CampaignAdmin.SetActive(ctx, args[0], active)
			})
		},
	}

	coupons := &cobra.Command{
		Use:   "coupons <id>",
		Short: "list the coupon codes of a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp("campaign-coupons", func(ctx context.Context, a *app.App) error {
				codes, err := a.CampaignAdmin.Coupons(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(codes)
			})
		},
	}

	visible := &cobra.Command{
		Use:   "visible-for <id>",
		Short: "list the customers the campaign is visible for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp("campaign-visible-for", func(ctx context.Context, a *app.App) error {
				customerIDs, err := a.Campaigns.VisibleForCustomers(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(customerIDs)
			})
		},
	}

	root.AddCommand(setActive, coupons, visible)
	root.AddCommand(photoCommands("campaign", campaignOwner)...)
	return root
}

func eventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "events <transaction|customer|campaign> <id>",
		Short: "show the recorded events of an aggregate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			aggregateType, ok := model.ParseAggregateType(args[0])
			if !ok {
				return apperr.Validation("aggregateType", "is invalid")
			}
			return runWithApp("events", func(ctx context.Context, a *app.App) error {
				events, err := a.EventLog.History(ctx, aggregateType, args[1])
				if err != nil {
					return err
				}
				return printJSON(newEventViews(events))
			})
		},
	}
}
