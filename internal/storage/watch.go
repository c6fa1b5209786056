package storage

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/misterclayt0n/reset/internal/models"
)

// WatchDailyLog polls the store for revisions of one day's log and invokes
// onChange for each new one, replacing the push subscription of the hosted
// store with an explicit poll loop. The returned stop function cancels the
// watch. Poll failures are logged and the next tick tries again; the
// watcher never gives up on its own.
func (s *Storage) WatchDailyLog(date string, every time.Duration, onChange func(*models.DailyLog)) (stop func()) {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		var lastSeen time.Time
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				dl, err := s.GetDailyLog(date)
				if err != nil {
					log.WithError(err).Warnf("Failed to poll daily log %s", date)
					continue
				}
				if dl == nil {
					continue
				}
				if dl.UpdatedAt.After(lastSeen) {
					lastSeen = dl.UpdatedAt
					onChange(dl)
				}
			}
		}
	}()

	return func() { close(done) }
}
