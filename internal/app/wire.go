//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"encomendas/internal/handlers/rest/customer_get"
	"encomendas/internal/handlers/rest/customer_post"
	"encomendas/internal/handlers/rest/customer_put"
	"encomendas/internal/handlers/rest/customers_get"
	"encomendas/internal/handlers/rest/export_customers_get"
	"encomendas/internal/handlers/rest/export_parcels_get"
	"encomendas/internal/handlers/rest/home_get"
	"encomendas/internal/handlers/rest/lookup_get"
	"encomendas/internal/handlers/rest/parcel_get"
	"encomendas/internal/handlers/rest/parcel_post"
	"encomendas/internal/handlers/rest/parcel_put"
	"encomendas/internal/handlers/rest/parcels_get"
	"encomendas/internal/handlers/rest/report_get"
	"encomendas/internal/handlers/rest/settlement_commit_post"
	"encomendas/internal/handlers/rest/settlement_preview_post"
	"encomendas/internal/handlers/tasks/stale_alerts"
	"encomendas/internal/pkg/config"
	"encomendas/internal/pkg/factory/lookup_match"
	"encomendas/internal/pkg/factory/storage_fee"

	auditRepo "encomendas/internal/repository/audit"
	customerRepo "encomendas/internal/repository/customer"
	lookupRepo "encomendas/internal/repository/lookup"
	parcelRepo "encomendas/internal/repository/parcel"
	reportRepo "encomendas/internal/repository/report"
	customerService "encomendas/internal/service/customer"
	exportService "encomendas/internal/service/export"
	lookupService "encomendas/internal/service/lookup"
	parcelService "encomendas/internal/service/parcel"
	reportService "encomendas/internal/service/report"

	"encomendas/pkg/background"
	"encomendas/pkg/logger"
	"encomendas/pkg/querier"
	"encomendas/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StaleAlertsInterval time.Duration
)

type Application struct {
	ServiceCustomer   ServiceCustomer
	ServiceParcel     ServiceParcel
	ServiceReport     ServiceReport
	ServiceLookup     ServiceLookup
	ServiceExport     ServiceExport
	BackgroundWorkers *background.Worker
}

type ServiceCustomer interface {
	customer_get.Service
	customer_post.Service
	customer_put.Service
	customers_get.Service
}

type ServiceParcel interface {
	parcel_get.Service
	parcel_post.Service
	parcel_put.Service
	parcels_get.Service
	settlement_preview_post.Service
	settlement_commit_post.Service
}

type ServiceReport interface {
	report_get.Service
	home_get.Service
}

type ServiceLookup interface {
	lookup_get.Service
}

type ServiceExport interface {
	export_customers_get.Service
	export_parcels_get.Service
}

// InitializeApplication builds the object graph for the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStaleAlertsInterval,

		provideCustomerRepository,
		provideParcelRepository,
		provideAuditRepository,
		provideReportRepository,
		provideLookupRepository,

		storage_fee.New,
		provideMatcherFactory,

		provideServiceCustomer,
		provideServiceParcel,
		provideServiceReport,
		provideServiceLookup,
		provideServiceExport,

		provideStaleAlertsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),
		wire.Bind(new(ServiceLookup), new(*lookupService.Lookup)),
		wire.Bind(new(ServiceExport), new(*exportService.Export)),

		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.AuditRepository), new(*auditRepo.Repository)),
		wire.Bind(new(parcelService.StorageFeeFactory), new(*storage_fee.StorageFeeFactory)),
		wire.Bind(new(reportService.Repository), new(*reportRepo.Repository)),
		wire.Bind(new(lookupService.Repository), new(*lookupRepo.Repository)),
		wire.Bind(new(lookupService.StorageFeeFactory), new(*storage_fee.StorageFeeFactory)),
		wire.Bind(new(lookupService.MatcherFactory), new(*lookup_match.MatcherFactory)),
		wire.Bind(new(exportService.CustomerRepository), new(*customerRepo.Repository)),
		wire.Bind(new(exportService.ParcelRepository), new(*parcelRepo.Repository)),

		wire.Bind(new(customerService.TxManager), new(*tx.Manager)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stale_alerts.Service), new(*reportService.Report)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideAuditRepository(querier *querier.Querier) *auditRepo.Repository {
	return auditRepo.New(querier)
}

func provideReportRepository(querier *querier.Querier) *reportRepo.Repository {
	return reportRepo.New(querier)
}

func provideLookupRepository(querier *querier.Querier) *lookupRepo.Repository {
	return lookupRepo.New(querier)
}

func provideMatcherFactory(cfg *config.Config) *lookup_match.MatcherFactory {
	mode, _ := lookup_match.ParseMode(cfg.App.LookupMatchMode)
	return lookup_match.New(mode)
}

func provideServiceCustomer(
	repository customerService.Repository,
	txManager customerService.TxManager,
) *customerService.Customer {
	return customerService.New(repository, txManager)
}

func provideServiceParcel(
	repository parcelService.Repository,
	auditRepository parcelService.AuditRepository,
	feeFactory parcelService.StorageFeeFactory,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(repository, auditRepository, feeFactory, txManager)
}

func provideServiceReport(repository reportService.Repository) *reportService.Report {
	return reportService.New(repository)
}

func provideServiceLookup(
	repository lookupService.Repository,
	feeFactory lookupService.StorageFeeFactory,
	matcher lookupService.MatcherFactory,
) *lookupService.Lookup {
	return lookupService.New(repository, feeFactory, matcher)
}

func provideServiceExport(
	customers exportService.CustomerRepository,
	parcels exportService.ParcelRepository,
) *exportService.Export {
	return exportService.New(customers, parcels)
}

func provideStaleAlertsInterval(cfg *config.Config) StaleAlertsInterval {
	return StaleAlertsInterval(cfg.Tasks.StaleAlertsRefreshInterval)
}

func provideStaleAlertsTask(
	log logger.Logger,
	reportService stale_alerts.Service,
	interval StaleAlertsInterval,
) *stale_alerts.StaleAlerts {
	return stale_alerts.NewStaleAlerts(log, reportService, time.Duration(interval))
}

func provideTaskList(
	staleAlertsTask *stale_alerts.StaleAlerts,
) []background.Task {
	return []background.Task{
		staleAlertsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
