// filepath: internal/repository/dbtx.go
package repository

import (
	"database/sql"
	"moviecatalog/internal/models"
	"time"
)

// Tx is a wrapper around *sql.Tx that provides transactional database operations.
type Tx struct {
	*sql.Tx
}

// ClearThemeInTx detaches all movies from a theme.
func (tx *Tx) ClearThemeInTx(themeID int64) (int64, error) {
	res, err := tx.Exec("UPDATE movies SET theme_id = NULL WHERE theme_id = ?", themeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteThemeInTx deletes a theme row and reports whether it existed.
func (tx *Tx) DeleteThemeInTx(themeID int64) (bool, error) {
	res, err := tx.Exec("DELETE FROM themes WHERE id = ?", themeID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpsertDriveInTx refreshes the record for a mount point, inserting it if it is new.
func (tx *Tx) UpsertDriveInTx(drive models.DriveInfo, scannedAt time.Time) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM external_drives WHERE mount_point = ? ORDER BY id LIMIT 1", drive.Path).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		res, err := tx.Exec(
			"INSERT INTO external_drives (drive_name, mount_point, total_space, free_space, last_scan) VALUES (?, ?, ?, ?, ?)",
			drive.Name, drive.Path, int64(drive.TotalSpace), int64(drive.FreeSpace), scannedAt.UTC().Format(sqliteTimestampLayout),
		)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	case err != nil:
		return 0, err
	}

	_, err = tx.Exec(
		"UPDATE external_drives SET drive_name = ?, total_space = ?, free_space = ?, last_scan = ? WHERE id = ?",
		drive.Name, int64(drive.TotalSpace), int64(drive.FreeSpace), scannedAt.UTC().Format(sqliteTimestampLayout), id,
	)
	return id, err
}

// sqliteTimestampLayout matches the format of CURRENT_TIMESTAMP.
const sqliteTimestampLayout = "2006-01-02 15:04:05"
