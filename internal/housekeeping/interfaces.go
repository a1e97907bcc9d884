// filepath: internal/housekeeping/interfaces.go
package housekeeping

import (
	"moviecatalog/internal/models"
	"time"
)

// DriveRecorder scans the mounted drives and stores them in the drive history.
type DriveRecorder interface {
	RecordDrives() ([]models.DriveInfo, error)
}

// HistoryStore defines the drive history methods required by the housekeeping tasks.
// This decouples the housekeeping logic from the concrete repository.
type HistoryStore interface {
	PruneDriveRecords(cutoff time.Time) (int64, error)
}
