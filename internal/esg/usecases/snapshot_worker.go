package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"esg-server/internal/esg/domain"
	"esg-server/internal/infra/async"
)

var _ async.Worker = &SnapshotRefreshWorker{}

// SnapshotRefreshWorker keeps session snapshots warm. It refreshes the
// current snapshot of a session right after the backend accepted its
// submission, and on a cron schedule refreshes display data of every active
// session and sweeps out idle ones.
type SnapshotRefreshWorker struct {
	sessions SessionService
	broker   async.InternalBroker
	schedule cron.Schedule
	cancel   context.CancelFunc
}

func NewSnapshotRefreshWorker(sessions SessionService, broker async.InternalBroker, scheduleSpec string) (*SnapshotRefreshWorker, error) {
	schedule, err := cron.ParseStandard(scheduleSpec)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot refresh schedule: %w", err)
	}

	return &SnapshotRefreshWorker{
		sessions: sessions,
		broker:   broker,
		schedule: schedule,
	}, nil
}

func (w *SnapshotRefreshWorker) Run(ctx context.Context, done func()) {
	defer done()
	slog.Info("snapshot refresh worker started")

	ctx, w.cancel = context.WithCancel(ctx)

	subscription, err := w.broker.Subscribe(TopicSessionEvents)
	if err != nil {
		slog.Error("session events subscription failed", slog.String("error", err.Error()))
		return
	}
	defer func() {
		if err := w.broker.Unsubscribe(TopicSessionEvents, subscription); err != nil {
			slog.Warn("session events unsubscribe failed", slog.String("error", err.Error()))
		}
	}()

	timer := time.NewTimer(time.Until(w.schedule.Next(time.Now())))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("snapshot refresh worker stopped")
			return
		case msg := <-subscription.Receiver:
			if msg.Event == EventSubmissionAccepted {
				w.refreshAfterSubmission(ctx, msg)
			}
		case <-timer.C:
			w.refreshAll(ctx)
			timer.Reset(time.Until(w.schedule.Next(time.Now())))
		}
	}
}

func (w *SnapshotRefreshWorker) Shutdown() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *SnapshotRefreshWorker) refreshAfterSubmission(ctx context.Context, msg async.BrokerMessage) {
	event, ok := msg.Value.(SessionEvent)
	if !ok {
		return
	}

	if _, err := w.sessions.RefreshSnapshot(ctx, event.SessionID, domain.SnapshotKindCurrent); err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSnapshotStale) {
			return
		}
		slog.Warn("post-submission snapshot refresh failed",
			slog.String("session_id", event.SessionID),
			slog.String("error", err.Error()),
		)
	}
}

func (w *SnapshotRefreshWorker) refreshAll(ctx context.Context) {
	pruned := w.sessions.PruneIdle(ctx)
	if pruned > 0 {
		slog.Info("idle sessions pruned", slog.Int("count", pruned))
	}

	for _, id := range w.sessions.ActiveSessionIDs(ctx) {
		if _, err := w.sessions.RefreshSnapshot(ctx, id, domain.SnapshotKindCurrent); err != nil {
			if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSnapshotStale) {
				continue
			}
			slog.Warn("scheduled snapshot refresh failed",
				slog.String("session_id", id),
				slog.String("error", err.Error()),
			)
		}
	}
}
