// internal/app/system/workers/outcomesweep.go
package workers

import (
	"context"
	"sync"
	"time"

	campaignstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/campaigns"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/timeouts"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"go.uber.org/zap"
)

// OutcomeSweep is a background worker that finalizes active campaigns:
// completed when the goal is reached, failed when the deadline passes
// unmet. The sweep is the authority for persisted status; reads compute
// the same outcome on the fly so clients never see a stale "active"
// between ticks.
type OutcomeSweep struct {
	campaigns *campaignstore.Store
	log       *zap.Logger
	interval  time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewOutcomeSweep creates an outcome sweep worker that runs every interval.
func NewOutcomeSweep(campaigns *campaignstore.Store, logger *zap.Logger, interval time.Duration) *OutcomeSweep {
	return &OutcomeSweep{
		campaigns: campaigns,
		log:       logger,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *OutcomeSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("campaign outcome sweep started",
		zap.Duration("interval", w.interval))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *OutcomeSweep) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("campaign outcome sweep stopped")
}

func (w *OutcomeSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep runs one finalization pass. Exported so startup can run an
// immediate pass before the first tick.
func (w *OutcomeSweep) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Long())
	defer cancel()

	now := time.Now().UTC()

	due, err := w.campaigns.FindOutcomeCandidates(ctx, now)
	if err != nil {
		w.log.Error("outcome sweep query failed", zap.Error(err))
		return
	}

	var completed, failed int
	for _, c := range due {
		outcome, ok := models.EvaluateOutcome(c, now)
		if !ok {
			continue
		}
		changed, err := w.campaigns.SetOutcome(ctx, c.ID, outcome)
		if err != nil {
			w.log.Error("outcome update failed",
				zap.String("campaign_id", c.ID.Hex()),
				zap.Error(err))
			continue
		}
		if !changed {
			continue // finalized by a concurrent sweep
		}
		switch outcome {
		case models.CampaignStatusCompleted:
			completed++
		case models.CampaignStatusFailed:
			failed++
		}
	}

	if completed > 0 || failed > 0 {
		w.log.Info("campaign outcomes finalized",
			zap.Int("completed", completed),
			zap.Int("failed", failed))
	}
}
