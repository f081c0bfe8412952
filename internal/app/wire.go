//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dispatch/internal/events"
	"dispatch/internal/fanout"
	paymentGateway "dispatch/internal/gateway/payment"
	routingGateway "dispatch/internal/gateway/routing"
	"dispatch/internal/handlers/rest/company_accept_post"
	"dispatch/internal/handlers/rest/courier_accept_post"
	"dispatch/internal/handlers/rest/courier_link_decide_post"
	"dispatch/internal/handlers/rest/courier_link_post"
	"dispatch/internal/handlers/rest/entry_cancel_post"
	"dispatch/internal/handlers/rest/entry_complete_post"
	"dispatch/internal/handlers/rest/entry_get"
	"dispatch/internal/handlers/rest/entry_post"
	"dispatch/internal/handlers/rest/entry_transit_post"
	"dispatch/internal/handlers/rest/payment_cash_post"
	"dispatch/internal/handlers/rest/payment_post"
	"dispatch/internal/handlers/rest/presence_put"
	"dispatch/internal/handlers/tasks/stale_entry_cleanup"
	"dispatch/internal/pkg/config"

	accountsRepo "dispatch/internal/repository/accounts"
	entryRepo "dispatch/internal/repository/entry"
	linkRepo "dispatch/internal/repository/link"
	ratesRepo "dispatch/internal/repository/rates"
	transactionRepo "dispatch/internal/repository/transaction"
	entryService "dispatch/internal/service/entry"
	linkService "dispatch/internal/service/link"
	presenceService "dispatch/internal/service/presence"
	"dispatch/internal/service/pricing"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const httpClientTimeout = 10 * time.Second

type (
	CleanupInterval time.Duration
	StaleEntryAge   time.Duration
)

type Application struct {
	ServiceEntry      ServiceEntry
	ServicePresence   ServicePresence
	ServiceLink       ServiceLink
	EventPublisher    *events.Publisher
	BackgroundWorkers *background.Worker
}

type ServiceEntry interface {
	entry_post.Service
	entry_get.Service
	payment_post.Service
	payment_cash_post.Service
	company_accept_post.Service
	courier_accept_post.Service
	entry_transit_post.Service
	entry_complete_post.Service
	entry_cancel_post.Service
}

type ServicePresence interface {
	presence_put.Service
}

type ServiceLink interface {
	courier_link_post.Service
	courier_link_decide_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rdb *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideStaleEntryAge,

		provideEntryRepository,
		provideTransactionRepository,
		provideAccountsRepository,
		provideLinkRepository,
		provideRatesRepository,

		provideHTTPClient,
		provideRoutingGateway,
		providePaymentGateway,
		provideNotifier,
		provideEventPublisher,

		providePricingEngine,
		provideServiceEntry,
		provideServicePresence,
		provideServiceLink,

		provideStaleEntryCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceEntry), new(*entryService.Entry)),
		wire.Bind(new(ServicePresence), new(*presenceService.Presence)),
		wire.Bind(new(ServiceLink), new(*linkService.Link)),

		wire.Bind(new(entryService.Repository), new(*entryRepo.Repository)),
		wire.Bind(new(entryService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(entryService.AccountReader), new(*accountsRepo.Repository)),
		wire.Bind(new(entryService.Pricer), new(*pricing.Engine)),
		wire.Bind(new(entryService.PaymentGateway), new(*paymentGateway.Gateway)),
		wire.Bind(new(entryService.Dispatch), new(*fanout.Notifier)),
		wire.Bind(new(entryService.EventPublisher), new(*events.Publisher)),

		wire.Bind(new(pricing.RateRepository), new(*ratesRepo.Repository)),
		wire.Bind(new(pricing.RouteOracle), new(*routingGateway.Gateway)),

		wire.Bind(new(presenceService.Repository), new(*accountsRepo.Repository)),
		wire.Bind(new(presenceService.EntryCounter), new(*entryRepo.Repository)),

		wire.Bind(new(linkService.Repository), new(*linkRepo.Repository)),
		wire.Bind(new(linkService.AccountReader), new(*accountsRepo.Repository)),

		wire.Bind(new(entryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(presenceService.TxManager), new(*tx.Manager)),
		wire.Bind(new(linkService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stale_entry_cleanup.Service), new(*entryService.Entry)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	EntryService *entryService.Entry
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-settled)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rdb *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideEntryRepository,
		provideTransactionRepository,
		provideAccountsRepository,
		provideRatesRepository,

		provideHTTPClient,
		provideRoutingGateway,
		providePaymentGateway,
		provideNotifier,
		provideEventPublisher,

		providePricingEngine,
		provideServiceEntry,

		wire.Bind(new(entryService.Repository), new(*entryRepo.Repository)),
		wire.Bind(new(entryService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(entryService.AccountReader), new(*accountsRepo.Repository)),
		wire.Bind(new(entryService.Pricer), new(*pricing.Engine)),
		wire.Bind(new(entryService.PaymentGateway), new(*paymentGateway.Gateway)),
		wire.Bind(new(entryService.Dispatch), new(*fanout.Notifier)),
		wire.Bind(new(entryService.EventPublisher), new(*events.Publisher)),

		wire.Bind(new(pricing.RateRepository), new(*ratesRepo.Repository)),
		wire.Bind(new(pricing.RouteOracle), new(*routingGateway.Gateway)),

		wire.Bind(new(entryService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideEntryRepository(querier *querier.Querier) *entryRepo.Repository {
	return entryRepo.New(querier)
}

func provideTransactionRepository(querier *querier.Querier) *transactionRepo.Repository {
	return transactionRepo.New(querier)
}

func provideAccountsRepository(querier *querier.Querier) *accountsRepo.Repository {
	return accountsRepo.New(querier)
}

func provideLinkRepository(querier *querier.Querier) *linkRepo.Repository {
	return linkRepo.New(querier)
}

func provideRatesRepository(querier *querier.Querier) *ratesRepo.Repository {
	return ratesRepo.New(querier)
}

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: httpClientTimeout}
}

func provideRoutingGateway(client *http.Client, cfg *config.Config) *routingGateway.Gateway {
	return routingGateway.New(client, cfg.RoutingOracle.BaseURL, cfg.RoutingOracle.APIKey)
}

func providePaymentGateway(client *http.Client, cfg *config.Config) *paymentGateway.Gateway {
	return paymentGateway.New(client, cfg.PaymentProvider.BaseURL, cfg.PaymentProvider.APIKey)
}

func provideNotifier(rdb *redis.Client, log logger.Logger, cfg *config.Config) *fanout.Notifier {
	return fanout.New(rdb, log, cfg.Redis.OfferTTL)
}

func provideEventPublisher(log logger.Logger, cfg *config.Config) (*events.Publisher, error) {
	return events.NewPublisher(strings.Split(cfg.Kafka.Brokers, ","), cfg.Kafka.EventsTopic, log)
}

func providePricingEngine(
	rates pricing.RateRepository,
	oracle pricing.RouteOracle,
) *pricing.Engine {
	return pricing.New(rates, oracle)
}

func provideServiceEntry(
	repository entryService.Repository,
	transactions entryService.TransactionRepository,
	accounts entryService.AccountReader,
	pricer entryService.Pricer,
	gateway entryService.PaymentGateway,
	dispatch entryService.Dispatch,
	eventPublisher entryService.EventPublisher,
	txManager entryService.TxManager,
) *entryService.Entry {
	return entryService.New(
		repository,
		transactions,
		accounts,
		pricer,
		gateway,
		dispatch,
		eventPublisher,
		txManager,
	)
}

func provideServicePresence(
	repository presenceService.Repository,
	entries presenceService.EntryCounter,
	txManager presenceService.TxManager,
) *presenceService.Presence {
	return presenceService.New(repository, entries, txManager)
}

func provideServiceLink(
	repository linkService.Repository,
	accounts linkService.AccountReader,
	txManager linkService.TxManager,
) *linkService.Link {
	return linkService.New(repository, accounts, txManager)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.StaleEntryCleanupInterval)
}

func provideStaleEntryAge(cfg *config.Config) StaleEntryAge {
	return StaleEntryAge(cfg.Tasks.StaleEntryMaxAge)
}

func provideStaleEntryCleanupTask(
	log logger.Logger,
	entryService stale_entry_cleanup.Service,
	interval CleanupInterval,
	maxAge StaleEntryAge,
) *stale_entry_cleanup.StaleEntryCleanup {
	return stale_entry_cleanup.NewStaleEntryCleanup(log, entryService, time.Duration(interval), time.Duration(maxAge))
}

func provideTaskList(
	staleEntryCleanupTask *stale_entry_cleanup.StaleEntryCleanup,
) []background.Task {
	return []background.Task{
		staleEntryCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
