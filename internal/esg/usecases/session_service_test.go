package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/usecases"
	mocks "esg-server/test/unit/doubles/esg/usecases"
)

func sessionServiceFixture(t *testing.T) (*usecases.SimpleSessionService, *mocks.MockSchemaService, *mocks.MockSnapshotProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	schemas := mocks.NewMockSchemaService(ctrl)
	snapshots := mocks.NewMockSnapshotProvider(ctrl)
	service := usecases.NewSessionService(schemas, snapshots, nil, time.Hour)
	return service, schemas, snapshots
}

func mustPeriod(t *testing.T, value string) domain.ReportingPeriod {
	t.Helper()
	period, err := domain.ParseReportingPeriod(value)
	require.NoError(t, err)
	return period
}

func TestCreateSessionSeedsFromCurrentSnapshot(t *testing.T) {
	service, _, snapshots := sessionServiceFixture(t)
	ctx := context.Background()
	period := mustPeriod(t, "2025-09-21")

	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), domain.CompanyID(1), domain.SnapshotKindCurrent, domain.MethodInput).
		Return(domain.Snapshot{"SOC-01": {Value: "45", ReportingPeriod: "2024-12-31"}}, nil)

	state, err := service.CreateSession(ctx, 1, period, domain.MethodInput)
	require.NoError(t, err)

	assert.NotEmpty(t, state.ID)
	assert.Equal(t, "45", state.Values["SOC-01"])
	assert.Equal(t, "45", state.Current["SOC-01"].Value)
}

func TestCreateSessionSurvivesSnapshotFailure(t *testing.T) {
	service, _, snapshots := sessionServiceFixture(t)
	ctx := context.Background()

	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, usecases.ErrSnapshotFetch)

	state, err := service.CreateSession(ctx, 1, mustPeriod(t, "2025-09-21"), domain.MethodInput)
	require.NoError(t, err)
	assert.Empty(t, state.Values)
}

func TestSetValueStoresEvenInvalidValues(t *testing.T) {
	service, schemas, snapshots := sessionServiceFixture(t)
	ctx := context.Background()

	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Snapshot{}, nil).
		AnyTimes()
	schemas.EXPECT().
		SchemaByName(gomock.Any()).
		Return(map[string]domain.Field{
			"SOC-01": {Name: "SOC-01", Type: domain.FieldTypeNumeric},
		}, nil).
		AnyTimes()

	state, err := service.CreateSession(ctx, 1, mustPeriod(t, "2025-09-21"), domain.MethodInput)
	require.NoError(t, err)

	result, err := service.SetValue(ctx, state.ID, "SOC-01", "abc")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "must be a number", result.Reason)

	got, err := service.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Values["SOC-01"])
}

func TestSetValueUnknownFieldPassesAsText(t *testing.T) {
	service, schemas, snapshots := sessionServiceFixture(t)
	ctx := context.Background()

	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Snapshot{}, nil).
		AnyTimes()
	schemas.EXPECT().
		SchemaByName(gomock.Any()).
		Return(map[string]domain.Field{}, nil).
		AnyTimes()

	state, err := service.CreateSession(ctx, 1, mustPeriod(t, "2025-09-21"), domain.MethodInput)
	require.NoError(t, err)

	result, err := service.SetValue(ctx, state.ID, "NEW-99", "whatever")
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestChangeContextStartsAFreshForm(t *testing.T) {
	service, schemas, snapshots := sessionServiceFixture(t)
	ctx := context.Background()

	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Snapshot{}, nil).
		AnyTimes()
	schemas.EXPECT().
		SchemaByName(gomock.Any()).
		Return(map[string]domain.Field{}, nil).
		AnyTimes()

	state, err := service.CreateSession(ctx, 1, mustPeriod(t, "2025-09-21"), domain.MethodInput)
	require.NoError(t, err)
	_, err = service.SetValue(ctx, state.ID, "SOC-01", "45")
	require.NoError(t, err)

	err = service.ChangeContext(ctx, state.ID, domain.MethodKPI, mustPeriod(t, "2024-12-31"))
	require.NoError(t, err)

	got, err := service.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Values)
	assert.Equal(t, domain.MethodKPI, got.Method)
	assert.Equal(t, "2024-12-31", got.ReportingPeriod.String())
}

func TestClearValuesDoesNotReseedOnNextRefresh(t *testing.T) {
	service, _, snapshots := sessionServiceFixture(t)
	ctx := context.Background()

	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), domain.SnapshotKindCurrent, gomock.Any()).
		Return(domain.Snapshot{"SOC-01": {Value: "45"}}, nil).
		AnyTimes()

	state, err := service.CreateSession(ctx, 1, mustPeriod(t, "2025-09-21"), domain.MethodInput)
	require.NoError(t, err)
	require.Equal(t, "45", state.Values["SOC-01"])

	require.NoError(t, service.ClearValues(ctx, state.ID))
	_, err = service.RefreshSnapshot(ctx, state.ID, domain.SnapshotKindCurrent)
	require.NoError(t, err)

	got, err := service.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Values)
	assert.Equal(t, "45", got.Current["SOC-01"].Value)
}

func TestCompleteSubmissionRearmsSeeding(t *testing.T) {
	service, _, snapshots := sessionServiceFixture(t)
	ctx := context.Background()

	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), domain.SnapshotKindCurrent, gomock.Any()).
		Return(domain.Snapshot{"SOC-01": {Value: "45"}}, nil).
		AnyTimes()

	state, err := service.CreateSession(ctx, 1, mustPeriod(t, "2025-09-21"), domain.MethodInput)
	require.NoError(t, err)

	require.NoError(t, service.CompleteSubmission(ctx, state.ID))
	got, err := service.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Values)

	_, err = service.RefreshSnapshot(ctx, state.ID, domain.SnapshotKindCurrent)
	require.NoError(t, err)
	got, err = service.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, "45", got.Values["SOC-01"])
}

func TestHistoricRefreshOnlyUpdatesDisplayData(t *testing.T) {
	service, _, snapshots := sessionServiceFixture(t)
	ctx := context.Background()

	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), domain.SnapshotKindCurrent, gomock.Any()).
		Return(domain.Snapshot{}, nil)
	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), domain.SnapshotKindHistoric, gomock.Any()).
		Return(domain.Snapshot{"SOC-01": {Value: "30", ReportingPeriod: "2023-12-31"}}, nil)

	state, err := service.CreateSession(ctx, 1, mustPeriod(t, "2025-09-21"), domain.MethodInput)
	require.NoError(t, err)

	snapshot, err := service.RefreshSnapshot(ctx, state.ID, domain.SnapshotKindHistoric)
	require.NoError(t, err)
	assert.Equal(t, "30", snapshot["SOC-01"].Value)

	got, err := service.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Values)
	assert.Equal(t, "30", got.Historic["SOC-01"].Value)
}

func TestSessionLookupFailures(t *testing.T) {
	service, _, _ := sessionServiceFixture(t)
	ctx := context.Background()

	_, err := service.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, usecases.ErrSessionNotFound)

	_, err = service.RefreshSnapshot(ctx, "missing", domain.SnapshotKindCurrent)
	assert.ErrorIs(t, err, usecases.ErrSessionNotFound)

	assert.ErrorIs(t, service.ClearValues(ctx, "missing"), usecases.ErrSessionNotFound)
	assert.ErrorIs(t, service.SetKPIFlag(ctx, "missing", "SOC-01", true), usecases.ErrSessionNotFound)
}

func TestPruneIdleRemovesStaleSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	schemas := mocks.NewMockSchemaService(ctrl)
	snapshots := mocks.NewMockSnapshotProvider(ctrl)
	snapshots.EXPECT().
		FetchSnapshot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Snapshot{}, nil).
		AnyTimes()

	service := usecases.NewSessionService(schemas, snapshots, nil, 10*time.Millisecond)
	ctx := context.Background()

	state, err := service.CreateSession(ctx, 1, mustPeriod(t, "2025-09-21"), domain.MethodInput)
	require.NoError(t, err)
	require.Len(t, service.ActiveSessionIDs(ctx), 1)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, service.PruneIdle(ctx))
	assert.Empty(t, service.ActiveSessionIDs(ctx))

	_, err = service.GetSession(ctx, state.ID)
	assert.ErrorIs(t, err, usecases.ErrSessionNotFound)
}
