package bot

import (
	"log"
	"sync"
	"time"

	"greenfield-bot/tasks"
	"greenfield-bot/utils"
)

// Scheduler manages the background expiry sweep and periodic stats.
type Scheduler struct {
	bot  *Bot
	done chan struct{}
	wg   sync.WaitGroup

	sweepTicker *time.Ticker
	statsTicker *time.Ticker
}

// NewScheduler creates a new scheduler.
func NewScheduler(bot *Bot) *Scheduler {
	return &Scheduler{
		bot:  bot,
		done: make(chan struct{}),
	}
}

// Start begins all scheduled tasks. The sweep runs on a single ticker, so
// sweeps never overlap.
func (s *Scheduler) Start() {
	sweepInterval := time.Duration(s.bot.Config.Settings.SweepIntervalMins) * time.Minute
	if sweepInterval <= 0 {
		sweepInterval = time.Hour
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.sweepTicker = time.NewTicker(sweepInterval)
		s.statsTicker = time.NewTicker(1 * time.Hour)
		defer s.sweepTicker.Stop()
		defer s.statsTicker.Stop()

		for {
			select {
			case <-s.sweepTicker.C:
				s.runSweep()
			case <-s.statsTicker.C:
				s.updateModerationStats()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop terminates all scheduled tasks gracefully.
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	close(s.done)
	s.wg.Wait()
	log.Println("Scheduler stopped.")
}

// runSweep evicts expired warnings and lapsed temporary global bans.
// Storage errors are logged and retried on the next tick; a failed sweep
// never takes the process down.
func (s *Scheduler) runSweep() {
	deleted, err := s.bot.Engine.SweepExpired()
	if err != nil {
		log.Printf("Warn sweep failed: %v", err)
	} else if deleted > 0 {
		log.Printf("Warn sweep removed %d expired warnings", deleted)
	}

	swept, err := s.bot.Coordinator.SweepExpiredBans()
	if err != nil {
		log.Printf("Ban sweep failed: %v", err)
		return
	}
	if swept > 0 {
		log.Printf("Ban sweep lifted %d expired global bans", swept)
		if s.bot.Config.LogWebhookURL != "" {
			if err := utils.LogInfo(s.bot.Config.LogWebhookURL, "Moderation", "BanSweep",
				"Lifted expired global bans"); err != nil {
				log.Printf("Failed to send sweep log: %v", err)
			}
		}
	}
}

func (s *Scheduler) updateModerationStats() {
	channelID := s.bot.Config.StatsChannelID
	if channelID == "" {
		return
	}
	tasks.UpdateModerationStats(s.bot.Session, s.bot.DB, channelID)
}
