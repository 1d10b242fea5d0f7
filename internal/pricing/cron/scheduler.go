package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Warmer is what the scheduler refreshes nightly.
type Warmer interface {
	Warm(ctx context.Context) error
}

type Scheduler struct {
	warmer Warmer
}

func NewScheduler(warmer Warmer) *Scheduler {
	return &Scheduler{warmer: warmer}
}

// Start registers the nightly refresh (12:00 AM) and starts the cron loop.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.runOnce()
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Price refresh scheduler started (running nightly at 12:00AM)")
	c.Start()
}

// RunOnce refreshes immediately; used by the worker's warm subcommand.
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	log.Println("Price cache refresh started...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := s.warmer.Warm(ctx); err != nil {
		log.Printf("Price cache refresh failed: %v", err)
		return
	}
	log.Println("Price cache refresh completed at:", time.Now().Format(time.RFC1123))
}
