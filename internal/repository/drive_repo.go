// filepath: internal/repository/drive_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"moviecatalog/internal/models"
	"time"

	"github.com/Masterminds/squirrel"
)

// RecordDrives upserts one external_drives row per scanned drive, keyed on mount point,
// in a single transaction. It returns the number of drives recorded.
func (s *Repository) RecordDrives(drives []models.DriveInfo, scannedAt time.Time) (int, error) {
	if len(drives) == 0 {
		return 0, nil
	}

	tx, err := s.BeginTx()
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, d := range drives {
		if _, err := tx.UpsertDriveInTx(d, scannedAt); err != nil {
			return 0, fmt.Errorf("failed to record drive '%s': %w", d.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(drives), nil
}

// ListDriveRecords returns the recorded drives, most recently scanned first.
func (s *Repository) ListDriveRecords() ([]models.ExternalDrive, error) {
	query, args, err := s.Builder.
		Select("id", "drive_name", "mount_point", "total_space", "free_space", "last_scan").
		From("external_drives").
		OrderBy("last_scan DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build drive query: %w", err)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drives := make([]models.ExternalDrive, 0)
	for rows.Next() {
		var d models.ExternalDrive
		var mountPoint sql.NullString
		var total, free sql.NullInt64
		var lastScan sqlTime
		if err := rows.Scan(&d.ID, &d.DriveName, &mountPoint, &total, &free, &lastScan); err != nil {
			return nil, err
		}
		d.MountPoint = mountPoint.String
		d.TotalSpace = total.Int64
		d.FreeSpace = free.Int64
		d.LastScan = lastScan.Time
		drives = append(drives, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return drives, nil
}

// PruneDriveRecords deletes the drive records last scanned before cutoff and returns how many were removed.
func (s *Repository) PruneDriveRecords(cutoff time.Time) (int64, error) {
	query, args, err := s.Builder.Delete("external_drives").
		Where(squirrel.Lt{"last_scan": cutoff.UTC().Format(sqliteTimestampLayout)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build drive prune: %w", err)
	}

	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
