package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"acacia-schools/app/config"
)

// StartScheduler registers the nightly collection-snapshot job, which logs
// the roster-wide statistics from the fees service. Background reads use
// the long-lived service token; without one the job stays disabled.
func StartScheduler(svc *FeeService, cfg *config.Config, log *logrus.Logger) *cron.Cron {
	c := cron.New()

	if cfg.ServiceToken == "" {
		log.Warn("FEES_API_TOKEN not set, collection snapshot job disabled")
		return c
	}

	_, err := c.AddFunc(cfg.SnapshotCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		stats, err := svc.Analytics(ctx, cfg.ServiceToken)
		if err != nil {
			log.Errorf("collection snapshot failed: %v", err)
			return
		}
		log.WithFields(logrus.Fields{
			"students":  stats.TotalStudents,
			"collected": stats.TotalPaidAmount,
			"pending":   stats.TotalPendingAmount,
			"rate":      stats.CollectionRate,
		}).Info("daily collection snapshot")
	})
	if err != nil {
		log.Errorf("invalid snapshot schedule %q: %v", cfg.SnapshotCron, err)
		return c
	}

	c.Start()
	log.Infof("Scheduler started, collection snapshot at %q", cfg.SnapshotCron)
	return c
}
