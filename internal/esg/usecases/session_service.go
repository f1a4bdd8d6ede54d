package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"esg-server/internal/esg/domain"
	"esg-server/internal/infra/async"
)

var _ SessionService = &SimpleSessionService{}

// formSession is the mutable state of one open form. All mutation goes
// through its mutex; contextVersion marks the reporting context so that
// snapshot fetches started under an older context are discarded on arrival.
type formSession struct {
	mu             sync.Mutex
	id             string
	companyID      domain.CompanyID
	method         domain.Method
	period         domain.ReportingPeriod
	store          *ValueStore
	contextVersion int
	lastActivity   time.Time
}

func NewSessionService(
	schemas SchemaService,
	snapshots SnapshotProvider,
	broker async.InternalBroker,
	idleTTL time.Duration,
) *SimpleSessionService {
	return &SimpleSessionService{
		schemas:   schemas,
		snapshots: snapshots,
		broker:    broker,
		idleTTL:   idleTTL,
		sessions:  make(map[string]*formSession),
		now:       time.Now,
	}
}

type SimpleSessionService struct {
	schemas   SchemaService
	snapshots SnapshotProvider
	broker    async.InternalBroker
	idleTTL   time.Duration

	mu       sync.RWMutex
	sessions map[string]*formSession
	group    singleflight.Group
	now      func() time.Time
}

func (s *SimpleSessionService) CreateSession(ctx context.Context, companyID domain.CompanyID, period domain.ReportingPeriod, method domain.Method) (SessionState, error) {
	session := &formSession{
		id:           uuid.NewString(),
		companyID:    companyID,
		method:       method,
		period:       period,
		store:        NewValueStore(),
		lastActivity: s.now(),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	// Best-effort prefill; the form opens empty when the backend is down
	// and a later refresh seeds it.
	if _, err := s.RefreshSnapshot(ctx, session.id, domain.SnapshotKindCurrent); err != nil {
		slog.Warn("initial snapshot refresh failed",
			slog.String("session_id", session.id),
			slog.String("error", err.Error()),
		)
	}

	return s.GetSession(ctx, session.id)
}

func (s *SimpleSessionService) GetSession(_ context.Context, id string) (SessionState, error) {
	session, err := s.lookup(id)
	if err != nil {
		return SessionState{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastActivity = s.now()
	return SessionState{
		ID:              session.id,
		CompanyID:       session.companyID,
		Method:          session.method,
		ReportingPeriod: session.period,
		Values:          session.store.Values(),
		KPIFlags:        session.store.KPIFlags(),
		Current:         session.store.Snapshot(domain.SnapshotKindCurrent),
		Historic:        session.store.Snapshot(domain.SnapshotKindHistoric),
	}, nil
}

// SetValue stores the value unconditionally and returns the live validation
// verdict. Invalid values stay in the session so the user can keep editing;
// submission gates on the same rule later.
func (s *SimpleSessionService) SetValue(ctx context.Context, id, field string, value any) (domain.ValidationResult, error) {
	session, err := s.lookup(id)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	schemaByName, err := s.schemas.SchemaByName(ctx)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	fieldSchema, known := schemaByName[field]
	if !known {
		fieldSchema = domain.Field{Name: field, Type: domain.FieldTypeText}
	}
	result := domain.ValidateValue(fieldSchema, value)

	session.mu.Lock()
	session.store.SetValue(field, value)
	session.lastActivity = s.now()
	companyID := session.companyID
	session.mu.Unlock()

	s.publish(ctx, SessionEvent{
		Type:      EventValueSet,
		SessionID: id,
		CompanyID: companyID.Int(),
		Field:     field,
		Timestamp: s.now(),
	})

	return result, nil
}

func (s *SimpleSessionService) SetKPIFlag(_ context.Context, id, field string, isKPI bool) error {
	session, err := s.lookup(id)
	if err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.store.SetKPIFlag(field, isKPI)
	session.lastActivity = s.now()
	return nil
}

// ChangeContext moves the session to a new methodology and reporting period.
// A new context is a fresh form: working values are dropped, seeding is
// re-armed, and snapshot fetches still in flight for the old context are
// discarded when they land.
func (s *SimpleSessionService) ChangeContext(_ context.Context, id string, method domain.Method, period domain.ReportingPeriod) error {
	session, err := s.lookup(id)
	if err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.method = method
	session.period = period
	session.contextVersion++
	session.store = NewValueStore()
	session.lastActivity = s.now()
	return nil
}

func (s *SimpleSessionService) ClearValues(ctx context.Context, id string) error {
	session, err := s.lookup(id)
	if err != nil {
		return err
	}

	session.mu.Lock()
	session.store.Clear()
	session.lastActivity = s.now()
	companyID := session.companyID
	session.mu.Unlock()

	s.publish(ctx, SessionEvent{
		Type:      EventValuesCleared,
		SessionID: id,
		CompanyID: companyID.Int(),
		Timestamp: s.now(),
	})
	return nil
}

// RefreshSnapshot fetches stored values of the given kind and feeds them to
// the session's value store. Concurrent refreshes of the same session and
// kind share one fetch, so seeding cannot race with itself.
func (s *SimpleSessionService) RefreshSnapshot(ctx context.Context, id string, kind domain.SnapshotKind) (domain.Snapshot, error) {
	session, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	key := id + "/" + string(kind)
	result, err, _ := s.group.Do(key, func() (any, error) {
		session.mu.Lock()
		companyID := session.companyID
		method := session.method
		startedAt := session.contextVersion
		session.mu.Unlock()

		snapshot, err := s.snapshots.FetchSnapshot(ctx, companyID, kind, method)
		if err != nil {
			return nil, err
		}

		session.mu.Lock()
		defer session.mu.Unlock()
		if session.contextVersion != startedAt {
			return nil, ErrSnapshotStale
		}
		session.store.SeedFromSnapshot(kind, snapshot)
		session.lastActivity = s.now()
		return session.store.Snapshot(kind), nil
	})
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	companyID := session.companyID
	session.mu.Unlock()
	s.publish(ctx, SessionEvent{
		Type:      EventSnapshotRefreshed,
		SessionID: id,
		CompanyID: companyID.Int(),
		Kind:      string(kind),
		Timestamp: s.now(),
	})

	return result.(domain.Snapshot), nil
}

func (s *SimpleSessionService) SubmissionInput(ctx context.Context, id string) (domain.SubmissionInput, error) {
	session, err := s.lookup(id)
	if err != nil {
		return domain.SubmissionInput{}, err
	}

	schemaByName, err := s.schemas.SchemaByName(ctx)
	if err != nil {
		return domain.SubmissionInput{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return domain.SubmissionInput{
		CompanyID:       session.companyID,
		ReportingPeriod: session.period,
		Method:          session.method,
		Values:          session.store.Values(),
		KPIFlags:        session.store.KPIFlags(),
		SchemaByName:    schemaByName,
	}, nil
}

// CompleteSubmission resets the edit state after the backend accepted a
// batch and re-arms seeding so the next current snapshot repopulates the
// form with the stored values.
func (s *SimpleSessionService) CompleteSubmission(_ context.Context, id string) error {
	session, err := s.lookup(id)
	if err != nil {
		return err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.store.RearmSeeding()
	session.lastActivity = s.now()
	return nil
}

func (s *SimpleSessionService) ActiveSessionIDs(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *SimpleSessionService) PruneIdle(_ context.Context) int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, session := range s.sessions {
		session.mu.Lock()
		idle := session.lastActivity.Before(cutoff)
		session.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}

func (s *SimpleSessionService) lookup(id string) (*formSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

func (s *SimpleSessionService) publish(ctx context.Context, event SessionEvent) {
	if s.broker == nil {
		return
	}
	_ = s.broker.Publish(ctx, TopicSessionEvents, async.BrokerMessage{
		Event: event.Type,
		Value: event,
	})
}
