// filepath: internal/housekeeping/tasks.go
package housekeeping

import (
	"fmt"
	"moviecatalog/internal/logging"
	"time"
)

// Dependencies defines the required services for the housekeeping tasks.
type Dependencies struct {
	Drives  DriveRecorder
	History HistoryStore
	// Retention is how long a drive record is kept after its last scan. Zero keeps everything.
	Retention time.Duration
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (d Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Report summarizes one housekeeping run.
type Report struct {
	DrivesRecorded int
	RecordsPruned  int64
	Message        string
}

// RunOnce records the currently mounted drives and prunes expired drive records.
// A failed recording does not prevent pruning; the first error is returned.
func RunOnce(deps Dependencies) (*Report, error) {
	report := &Report{}
	var firstErr error

	drives, err := deps.Drives.RecordDrives()
	if err != nil {
		logging.Log.Errorf("Housekeeping drive recording failed: %v", err)
		firstErr = err
	}
	report.DrivesRecorded = len(drives)

	pruned, err := pruneHistory(deps)
	if err != nil {
		logging.Log.Errorf("Housekeeping drive history pruning failed: %v", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	report.RecordsPruned = pruned

	report.Message = fmt.Sprintf("Housekeeping complete. %d drive(s) recorded, %d stale record(s) pruned.",
		report.DrivesRecorded, report.RecordsPruned)
	return report, firstErr
}

// pruneHistory deletes the drive records older than the retention window.
func pruneHistory(deps Dependencies) (int64, error) {
	if deps.Retention == 0 {
		logging.Log.Debug("Housekeeping drive history pruning is disabled (retention is 0).")
		return 0, nil
	}

	cutoff := deps.now().Add(-deps.Retention)
	n, err := deps.History.PruneDriveRecords(cutoff)
	if err != nil {
		return 0, fmt.Errorf("could not prune drive records: %w", err)
	}
	if n > 0 {
		logging.Log.Infof("Pruned %d drive record(s) last scanned before %s.", n, cutoff.Format(time.RFC3339))
	}
	return n, nil
}
