// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package workers

import (
	"context"
	"time"

	"github.com/avdeyev/studykeep/internal/logger"
	"github.com/avdeyev/studykeep/internal/store"
)

// cleanupGracePeriod protects files that are younger than one sweep
// interval: an upload may already be on disk while its database row is
// still being written.
const cleanupGracePeriod = time.Hour

// OrphanedFileCleaner periodically removes stored files that no resource
// row references. Such orphans appear when the process dies between writing
// an upload and committing its row, or when a post-delete unlink fails.
type OrphanedFileCleaner struct {
	resources store.ResourceRepository
	files     store.FileStorage
	interval  time.Duration

	logger *logger.Logger
}

// NewOrphanedFileCleaner constructs a cleaner that sweeps the upload root
// every interval.
func NewOrphanedFileCleaner(resources store.ResourceRepository, files store.FileStorage, interval time.Duration, logger *logger.Logger) *OrphanedFileCleaner {
	return &OrphanedFileCleaner{
		resources: resources,
		files:     files,
		interval:  interval,
		logger:    logger,
	}
}

// Run starts the periodic sweep in its own goroutine and returns. The
// goroutine exits when ctx is canceled.
func (c *OrphanedFileCleaner) Run(ctx context.Context) {
	c.logger.Info().Dur("interval", c.interval).Msg("starting orphaned file cleaner")

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				c.logger.Info().Msg("stopping orphaned file cleaner")
				return
			case <-ticker.C:
				c.sweep(ctx)
			}
		}
	}()
}

// sweep removes every stored file that is older than the grace period and
// has no referencing resource row. Errors are logged and the sweep moves on;
// a missed orphan is picked up on the next pass.
func (c *OrphanedFileCleaner) sweep(ctx context.Context) {
	referenced, err := c.resources.ListAllFilePaths(ctx)
	if err != nil {
		c.logger.Err(err).Msg("cleanup sweep: error listing referenced file paths")
		return
	}

	referencedSet := make(map[string]struct{}, len(referenced))
	for _, p := range referenced {
		referencedSet[p] = struct{}{}
	}

	stored, err := c.files.List()
	if err != nil {
		c.logger.Err(err).Msg("cleanup sweep: error listing stored files")
		return
	}

	var removed int
	for _, file := range stored {
		if _, ok := referencedSet[file.Path]; ok {
			continue
		}
		if time.Since(file.ModTime) < cleanupGracePeriod {
			continue
		}

		if err := c.files.Remove(file.Path); err != nil {
			c.logger.Warn().Err(err).Str("path", file.Path).Msg("cleanup sweep: error removing orphaned file")
			continue
		}
		removed++
	}

	if removed > 0 {
		c.logger.Info().Int("removed", removed).Msg("cleanup sweep removed orphaned files")
	}
}
