package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
)

// DefaultRefreshInterval is the gallery refresh period used when Start gets
// a non-positive interval.
const DefaultRefreshInterval = 30 * time.Second

type galleryJob struct {
	gallery GalleryService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewGalleryJob(gallery GalleryService, logger *logger.Logger) GalleryJob {
	return &galleryJob{gallery: gallery, logger: logger}
}

func (j *galleryJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				if _, err := j.gallery.Refresh(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("periodic gallery refresh failed")
				}
			}
		}
	}()
}

func (j *galleryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
