// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
)

// DefaultBackupInterval is used when Start is given a non-positive interval.
const DefaultBackupInterval = 10 * time.Minute

type backupJob struct {
	mastery MasteryService
	path    string
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBackupJob creates a backupJob that writes the mastery export of
// mastery to path on a ticker. The job is idle until Start is called.
func NewBackupJob(mastery MasteryService, path string, logger *logger.Logger) BackupJob {
	return &backupJob{mastery: mastery, path: path, logger: logger}
}

// Start implements BackupJob. It stops any previously running job, then
// launches a background goroutine that writes a backup every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *backupJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultBackupInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.backup(jobCtx); err != nil {
					j.logger.Err(err).Str("func", "backupJob.Start").Str("path", j.path).Msg("backup failed")
				}
			}
		}
	}()
}

// Stop implements BackupJob. Safe to call when the job is not running.
func (j *backupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// backup writes the export next to the destination and renames it into
// place, so a reader never sees a half-written file.
func (j *backupJob) backup(ctx context.Context) error {
	tmp, err := os.CreateTemp(filepath.Dir(j.path), ".backup-*.json")
	if err != nil {
		return fmt.Errorf("create temp backup: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = j.mastery.WriteExport(ctx, tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp backup: %w", err)
	}

	if err = os.Rename(tmp.Name(), j.path); err != nil {
		return fmt.Errorf("replace backup: %w", err)
	}

	j.logger.Debug().Str("func", "backupJob.backup").Str("path", j.path).Msg("backup written")
	return nil
}
