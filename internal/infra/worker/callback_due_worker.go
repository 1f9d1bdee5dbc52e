package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/infra/database"
	"github.com/construction-sites/crm/internal/monitoring"
)

// CallbackDueWorker keeps the callbacks-due gauge fresh so dashboards can
// alert on overdue callbacks without hitting the API.
type CallbackDueWorker struct {
	repo         *database.LeadRepository
	tickInterval time.Duration
}

func NewCallbackDueWorker(repo *database.LeadRepository) *CallbackDueWorker {
	return &CallbackDueWorker{
		repo:         repo,
		tickInterval: 5 * time.Minute,
	}
}

func (w *CallbackDueWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.tickInterval).Msg("callback-due worker started")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("callback-due worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CallbackDueWorker) refresh(ctx context.Context) {
	today := time.Now().Format("2006-01-02")
	n, err := w.repo.CountCallbacksDue(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to count due callbacks")
		return
	}
	monitoring.SetCallbacksDue(n)
}
