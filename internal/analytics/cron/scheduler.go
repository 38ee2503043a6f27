package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/analytics"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/chain"
)

type Scheduler struct {
	analytics *analytics.Service
	registry  *chain.Registry
}

func NewScheduler(svc *analytics.Service, registry *chain.Registry) *Scheduler {
	return &Scheduler{analytics: svc, registry: registry}
}

// Start initializes cron tasks: a nightly analytics snapshot and an hourly
// refresh of the institution/department registry.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.runNightlySnapshot()
	})
	if err != nil {
		log.Printf("Failed to create snapshot cron job: %v", err)
		return
	}

	_, err = c.AddFunc("0 0 * * * *", func() {
		s.runRegistryRefresh()
	})
	if err != nil {
		log.Printf("Failed to create registry cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (snapshot nightly at 12:00AM, registry refresh hourly)")
	c.Start()
}

func (s *Scheduler) runNightlySnapshot() {
	log.Println("Nightly analytics snapshot started...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.analytics.Snapshot(ctx); err != nil {
		log.Printf("Snapshot failed: %v", err)
		return
	}

	log.Println("Nightly snapshot completed at:", time.Now().Format(time.RFC1123))
}

func (s *Scheduler) runRegistryRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.registry.Refresh(ctx); err != nil {
		log.Printf("Registry refresh failed: %v", err)
	}
}
