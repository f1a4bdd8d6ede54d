//go:build wireinject
// +build wireinject

package wire

import (
	"esg-server/internal/esg/httpapi"
	"esg-server/internal/esg/usecases"
	"esg-server/internal/infra/async"

	"github.com/google/wire"
)

func InitializeSchemaController() (*httpapi.SchemaController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		provideGateway,
		provideSchemaService,
		httpapi.NewSchemaController,
	)
	return nil, nil
}

func InitializeSessionController(broker async.InternalBroker) (*httpapi.SessionController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		provideGateway,
		provideSchemaService,
		provideSessionService,
		provideDefaultCompanyID,
		httpapi.NewSessionController,
	)
	return nil, nil
}

func InitializeSubmissionController(broker async.InternalBroker) (*httpapi.SubmissionController, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		provideGateway,
		provideSchemaService,
		provideSessionService,
		provideSubmissionPoster,
		usecases.NewSubmissionService,
		wire.Bind(new(usecases.SubmissionService), new(*usecases.SimpleSubmissionService)),
		httpapi.NewSubmissionController,
	)
	return nil, nil
}

func InitializeScoreController() (*httpapi.ScoreController, error) {
	wire.Build(
		provideAppConfig,
		provideGateway,
		provideScoreRunner,
		usecases.NewScoreService,
		wire.Bind(new(usecases.ScoreService), new(*usecases.SimpleScoreService)),
		httpapi.NewScoreController,
	)
	return nil, nil
}

func InitializeSessionEventsWebSocketController(broker async.InternalBroker) (*httpapi.SessionEventsWebSocketController, error) {
	wire.Build(
		httpapi.NewSessionEventsWebSocketController,
	)
	return nil, nil
}

func InitializeSnapshotRefreshWorker(broker async.InternalBroker) (*usecases.SnapshotRefreshWorker, error) {
	wire.Build(
		provideAppConfig,
		provideCache,
		provideGateway,
		provideSchemaService,
		provideSessionService,
		provideSnapshotRefreshSchedule,
		usecases.NewSnapshotRefreshWorker,
	)
	return nil, nil
}
