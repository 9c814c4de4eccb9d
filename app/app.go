package app

import (
	"context"
	"time"

	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/pkg/cacheclient"
	"github.com/QuangTung97/loyalty/pkg/memtable"
	"github.com/QuangTung97/loyalty/pkg/metrics"
	"github.com/QuangTung97/loyalty/pkg/notify"
	"github.com/QuangTung97/loyalty/pkg/storage"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/QuangTung97/loyalty/service/account"
	"github.com/QuangTung97/loyalty/service/campaign"
	"github.com/QuangTung97/loyalty/service/earning"
	"github.com/QuangTung97/loyalty/service/eventlog"
	"github.com/QuangTung97/loyalty/service/identity"
	"github.com/QuangTung97/loyalty/service/photo"
	"github.com/QuangTung97/loyalty/service/transaction"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const megabyte = 1024 * 1024

// Repositories every repository of the loyalty database, each traced
type Repositories struct {
	Provider     repository.Provider
	Customers    repository.Customer
	Transactions repository.TransactionRepo
	EarningRules repository.EarningRule
	Accounts     repository.Account
	Campaigns    repository.Campaign
	Coupons      repository.Coupon
	Purchases    repository.Purchase
	Events       repository.Event
}

// NewRepositories ...
func NewRepositories(db *sqlx.DB, tracer trace.Tracer) Repositories {
	return Repositories{
		Provider:     repository.NewProvider(db),
		Customers:    repository.NewCustomerWrapper(repository.NewCustomer(), tracer, "repo::"),
		Transactions: repository.NewTransactionRepoWrapper(repository.NewTransactionRepo(), tracer, "repo::"),
		EarningRules: repository.NewEarningRuleWrapper(repository.NewEarningRule(), tracer, "repo::"),
		Accounts:     repository.NewAccountWrapper(repository.NewAccount(), tracer, "repo::"),
		Campaigns:    repository.NewCampaignWrapper(repository.NewCampaign(), tracer, "repo::"),
		Coupons:      repository.NewCouponWrapper(repository.NewCoupon(), tracer, "repo::"),
		Purchases:    repository.NewPurchaseWrapper(repository.NewPurchase(), tracer, "repo::"),
		Events:       repository.NewEventWrapper(repository.NewEvent(), tracer, "repo::"),
	}
}

// Commands the validated and logged command handlers
type Commands struct {
	AssignCustomer bus.CommandHandler[model.AssignCustomerToTransaction]
	AddPoints      bus.CommandHandler[model.AddPoints]
	SpendPoints    bus.CommandHandler[model.SpendPoints]
	BuyCampaign    bus.CommandHandler[model.BuyCampaign]
	UseCustomEvent bus.CommandHandler[model.UseCustomEventEarningRule]
	CouponUsage    bus.CommandHandler[model.ChangeCouponUsage]
}

// App is the object graph shared by the server and the loyalty commands
type App struct {
	Repos      Repositories
	Dispatcher *bus.Dispatcher
	Commands   Commands
	Metrics    *metrics.Metrics

	Transactions  transaction.IService
	CustomEvents  *earning.CustomEventService
	EarningAdmin  *earning.Admin
	Campaigns     campaign.IService
	CampaignAdmin *campaign.Admin
	Ledger        *account.Ledger
	Photos        *photo.Uploader
	EventLog      *eventlog.Recorder
	Matcher       identity.CustomerIDProvider
}

// Deps external resources the graph is built on
type Deps struct {
	Conf     config.Config
	DB       *sqlx.DB
	Logger   *zap.Logger
	Tracer   trace.Tracer
	Registry prometheus.Registerer
	Now      func() time.Time
}

func newIdentity(conf config.Config, repos Repositories, tracer trace.Tracer) identity.CustomerIDProvider {
	var matcher identity.CustomerIDProvider = identity.NewMatcher(repos.Provider, repos.Customers)
	if conf.Cache.IdentitySizeMB <= 0 {
		return identity.NewCustomerIDProviderWrapper(matcher, tracer, "identity::")
	}

	var options []identity.CachedOption
	if conf.Cache.RemoteEnabled {
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.NumConns)
		options = append(options, identity.WithRemoteCache(client))
	}
	mem := memtable.New(conf.Cache.IdentitySizeMB * megabyte)
	matcher = identity.NewCachedMatcher(matcher, mem, uint32(conf.Cache.IdentityTTL), options...)
	return identity.NewCustomerIDProviderWrapper(matcher, tracer, "identity::")
}

// New builds the whole graph, listeners are registered on the returned dispatcher
func New(ctx context.Context, deps Deps) (*App, error) {
	conf := deps.Conf
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	store, err := storage.New(ctx, conf.Storage)
	if err != nil {
		return nil, err
	}
	sender, err := notify.New(ctx, conf.Notification, deps.Logger)
	if err != nil {
		return nil, err
	}

	repos := NewRepositories(deps.DB, deps.Tracer)
	m := metrics.New(deps.Registry)
	recorder := eventlog.NewRecorder(repos.Provider, repos.Events)

	dispatcher := bus.NewDispatcher(
		bus.WithObserver(m),
		bus.WithObserver(recorder),
	)

	ledgerOptions := []account.Option{account.WithNow(now)}
	addPoints := account.NewAddPointsHandler(repos.Provider, repos.Accounts, conf.Loyalty, m, ledgerOptions...)
	spendPoints := account.NewSpendPointsHandler(repos.Provider, repos.Accounts, m, ledgerOptions...)

	usage := campaign.NewProvider(repos.Provider, repos.Campaigns, repos.Coupons, repos.Customers, now)
	validator := campaign.NewValidator(repos.Provider, usage, repos.Accounts, conf.Loyalty, now)

	cmds := Commands{
		AssignCustomer: transaction.NewAssignCustomerHandler(repos.Provider, repos.Transactions),
		AddPoints:      addPoints,
		SpendPoints:    spendPoints,
		UseCustomEvent: earning.NewUsageHandler(repos.Provider, repos.EarningRules, uuid.NewString, now),
		CouponUsage:    campaign.NewCouponUsageHandler(repos.Provider, repos.Coupons, repos.Purchases),
	}
	cmds = cmds.wrap(deps.Logger)

	buy := campaign.NewBuyCampaignHandler(
		repos.Provider, repos.Campaigns, repos.Coupons, repos.Purchases,
		usage, cmds.SpendPoints, dispatcher, m, now,
	)
	cmds.BuyCampaign = bus.Logged[model.BuyCampaign](bus.Validated[model.BuyCampaign](buy), deps.Logger)

	var evaluator earning.IEvaluator = earning.NewEvaluator(
		repos.Provider, repos.EarningRules, repos.Customers, repos.Transactions, conf.Loyalty,
		earning.WithNow(now),
	)
	evaluator = earning.NewIEvaluatorWrapper(evaluator, deps.Tracer, "earning::")

	matcher := newIdentity(conf, repos, deps.Tracer)

	transaction.NewAssignCustomerListener(
		repos.Provider, matcher, repos.Transactions, cmds.AssignCustomer, dispatcher, conf.Loyalty,
	).Register(dispatcher)
	earning.NewApplyEarningRuleListener(
		repos.Provider, evaluator, repos.Accounts, cmds.AddPoints,
	).Register(dispatcher)
	campaign.NewNotificationListener(repos.Provider, repos.Customers, sender).Register(dispatcher)

	var campaigns campaign.IService = campaign.NewService(
		repos.Provider, repos.Campaigns, repos.Customers, repos.Coupons,
		usage, validator, cmds.BuyCampaign, cmds.CouponUsage, uuid.NewString,
	)
	var transactions transaction.IService = transaction.NewService(
		repos.Provider, repos.Transactions, dispatcher,
	)

	return &App{
		Repos:      repos,
		Dispatcher: dispatcher,
		Commands:   cmds,
		Metrics:    m,

		Transactions: transaction.NewIServiceWrapper(transactions, deps.Tracer, "transaction::"),
		CustomEvents: earning.NewCustomEventService(
			repos.Provider, evaluator, repos.EarningRules, cmds.UseCustomEvent, cmds.AddPoints, now,
		),
		EarningAdmin:  earning.NewAdmin(repos.Provider, repos.EarningRules, uuid.NewString),
		Campaigns:     campaign.NewIServiceWrapper(campaigns, deps.Tracer, "campaign::"),
		CampaignAdmin: campaign.NewAdmin(repos.Provider, repos.Campaigns, repos.Coupons, uuid.NewString),
		Ledger:        account.NewLedger(repos.Provider, repos.Accounts, ledgerOptions...),
		Photos:        photo.NewUploader(store, uuid.NewString),
		EventLog:      recorder,
		Matcher:       matcher,
	}, nil
}

func (c Commands) wrap(logger *zap.Logger) Commands {
	return Commands{
		AssignCustomer: bus.Logged(bus.Validated(c.AssignCustomer), logger),
		AddPoints:      bus.Logged(bus.Validated(c.AddPoints), logger),
		SpendPoints:    bus.Logged(bus.Validated(c.SpendPoints), logger),
		UseCustomEvent: bus.Logged(bus.Validated(c.UseCustomEvent), logger),
		CouponUsage:    bus.Logged(bus.Validated(c.CouponUsage), logger),
	}
}
