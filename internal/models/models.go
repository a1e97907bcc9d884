// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import "time"

// DefaultThemeColor is applied to themes created without an explicit color.
const DefaultThemeColor = "#667eea"

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
	MovieCount  int       `json:"movie_count"`
	ThemeCount  int       `json:"theme_count"`
}

// Theme is a named, colored category used to group movies.
type Theme struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// ThemeCreate is the validated field set for a new theme.
type ThemeCreate struct {
	Name        string
	Description string
	Color       string
}

// Movie is one catalog record describing a video file's metadata.
// Nullable numeric columns are pointers; nullable text columns read back as "".
type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Year        *int      `json:"year"`
	Genre       string    `json:"genre"`
	Director    string    `json:"director"`
	Description string    `json:"description"`
	FilePath    string    `json:"file_path"`
	PosterPath  string    `json:"poster_path"`
	SourceDrive string    `json:"source_drive"`
	Rating      *float64  `json:"rating"`
	Duration    *int      `json:"duration"`
	ThemeID     *int64    `json:"theme_id"`
	CreatedAt   time.Time `json:"created_at"`
	Watched     bool      `json:"watched"`
}

// MovieWithTheme is a movie denormalized with its theme's display fields.
type MovieWithTheme struct {
	Movie
	ThemeName  *string `json:"theme_name"`
	ThemeColor *string `json:"theme_color"`
}

// MovieCreate is the minimal field set accepted when adding a movie.
// File path, source drive and theme are set later through an edit.
type MovieCreate struct {
	Title       string
	Year        *int
	Genre       string
	Director    string
	Description string
	Rating      *float64
	Duration    *int
}

// MovieUpdate is the full field set of an edit. Every field overwrites the stored value.
type MovieUpdate struct {
	Title       string
	Year        *int
	Genre       string
	Director    string
	Description string
	FilePath    string
	PosterPath  string
	SourceDrive string
	Rating      *float64
	Duration    *int
	ThemeID     *int64
}

// ExternalDrive is a recorded drive scan result.
type ExternalDrive struct {
	ID         int64     `json:"id"`
	DriveName  string    `json:"drive_name"`
	MountPoint string    `json:"mount_point"`
	TotalSpace int64     `json:"total_space"`
	FreeSpace  int64     `json:"free_space"`
	LastScan   time.Time `json:"last_scan"`
}

// DriveInfo describes a mounted volume found during a drive scan. Never persisted by the API.
type DriveInfo struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	TotalSpace uint64 `json:"total_space"`
	FreeSpace  uint64 `json:"free_space"`
}

// ScannedFile is a video file found under a scanned directory.
type ScannedFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Title    string `json:"title"`
}

// HomeView is the composite landing page payload.
type HomeView struct {
	Movies []Movie     `json:"movies"`
	Themes []Theme     `json:"themes"`
	Drives []DriveInfo `json:"drives"`
}

// ThemeMovies is the payload of the movies-by-theme view.
type ThemeMovies struct {
	Theme  Theme   `json:"theme"`
	Movies []Movie `json:"movies"`
}

// Flash is a one-shot user-visible message.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}
