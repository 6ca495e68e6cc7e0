// Package output writes finished banners to disk.
package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mcbanner/internal/logger"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the output lock.
var ErrLocked = errors.New("output file is locked by another process")

// lockRetry is how often a held lock is retried.
const lockRetry = 50 * time.Millisecond

// lockWait bounds how long Write waits for a held lock before giving up
// with ErrLocked.
var lockWait = 2 * time.Second

// Write stores data at path atomically: it is written to a temporary file
// in the same folder and renamed over path while holding path+".lock".
// A lock held elsewhere for longer than lockWait fails with ErrLocked.
func Write(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockWait)
	defer cancel()

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(lockCtx, lockRetry)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		return ErrLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn(ctx, "Failed to release lock on '{{_File_}}%s{{|-|}}': %v", path, err)
		}
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	logger.Info(ctx, "Wrote {{_Var_}}%d{{|-|}} bytes to '{{_File_}}%s{{|-|}}'.", len(data), path)
	return nil
}
