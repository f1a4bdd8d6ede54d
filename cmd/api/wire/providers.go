package wire

import (
	"os"
	"sync"

	"esg-server/cmd/config"
	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/gateway"
	"esg-server/internal/esg/usecases"
	"esg-server/internal/infra/async"
	"esg-server/internal/infra/cache"
	"esg-server/internal/infra/sql"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

var (
	gatewayOnce     sync.Once
	gatewayInstance usecases.BackendGateway
	gatewayErr      error
)

// provideGateway picks the backend adapter by environment: the sqlite-backed
// local gateway for ENV=local, the HTTP gateway otherwise. One instance is
// shared across all injectors so the local store is a single database.
func provideGateway(cfg config.AppConfig) (usecases.BackendGateway, error) {
	gatewayOnce.Do(func() {
		env, ok := os.LookupEnv("ENV")
		if !ok {
			env = "production"
		}

		if env == "local" {
			orm, err := sql.NewMemoryORM()
			if err != nil {
				gatewayErr = err
				return
			}
			gatewayInstance, gatewayErr = gateway.NewLocalGateway(orm)
			return
		}

		gatewayInstance = gateway.NewHTTPGateway(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	})

	return gatewayInstance, gatewayErr
}

var (
	cacheOnce     sync.Once
	cacheInstance cache.Cache
	cacheErr      error
)

func provideCache() (cache.Cache, error) {
	cacheOnce.Do(func() {
		cacheInstance, cacheErr = cache.New(nil)
	})
	return cacheInstance, cacheErr
}

var (
	schemaServiceOnce     sync.Once
	schemaServiceInstance usecases.SchemaService
)

func provideSchemaService(cfg config.AppConfig, gw usecases.BackendGateway, c cache.Cache) usecases.SchemaService {
	schemaServiceOnce.Do(func() {
		schemaServiceInstance = usecases.NewSchemaService(gw, c, cfg.SchemaCache.TTL)
	})
	return schemaServiceInstance
}

var (
	sessionServiceOnce     sync.Once
	sessionServiceInstance usecases.SessionService
)

// provideSessionService is a singleton: the session registry must be shared
// between the session controller, the submission service and the refresh
// worker.
func provideSessionService(cfg config.AppConfig, schemas usecases.SchemaService, gw usecases.BackendGateway, broker async.InternalBroker) usecases.SessionService {
	sessionServiceOnce.Do(func() {
		sessionServiceInstance = usecases.NewSessionService(schemas, gw, broker, cfg.Sessions.IdleTTL)
	})
	return sessionServiceInstance
}

func provideSubmissionPoster(gw usecases.BackendGateway) usecases.SubmissionPoster {
	return gw
}

func provideScoreRunner(gw usecases.BackendGateway) usecases.ScoreRunner {
	return gw
}

func provideSnapshotRefreshSchedule(cfg config.AppConfig) string {
	return cfg.SnapshotRefresh.Schedule
}

// provideDefaultCompanyID backs session creation requests that omit a
// company id.
func provideDefaultCompanyID(cfg config.AppConfig) domain.CompanyID {
	return domain.CompanyID(cfg.Sessions.DefaultCompanyID)
}
