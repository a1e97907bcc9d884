// filepath: internal/api/handlers/flash.go
package handlers

import (
	"moviecatalog/internal/logging"
	"moviecatalog/internal/models"
	"net/http"

	"github.com/gorilla/sessions"
)

const flashSessionName = "moviecatalog-session"

// Flash categories.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

var flashCategories = []string{FlashSuccess, FlashError}

// FlashStore keeps one-shot messages in a signed cookie session.
type FlashStore struct {
	store sessions.Store
}

// NewFlashStore creates a cookie-backed flash store signed with secret.
func NewFlashStore(secret string) *FlashStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store}
}

// Add queues a message for the next GetFlashes call. Failures are logged only.
func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, category, message string) {
	if f == nil {
		return
	}
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		// A cookie signed with another secret is replaced by a fresh session.
		logging.Log.Debugf("Flash: discarding unreadable session: %v", err)
	}
	session.AddFlash(message, category)
	if err := session.Save(r, w); err != nil {
		logging.Log.Warnf("Flash: failed to save session: %v", err)
	}
}

// Pop returns and clears the pending messages.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []models.Flash {
	flashes := make([]models.Flash, 0)
	if f == nil {
		return flashes
	}
	session, err := f.store.Get(r, flashSessionName)
	if err != nil {
		logging.Log.Debugf("Flash: discarding unreadable session: %v", err)
		return flashes
	}

	for _, category := range flashCategories {
		for _, v := range session.Flashes(category) {
			if msg, ok := v.(string); ok {
				flashes = append(flashes, models.Flash{Category: category, Message: msg})
			}
		}
	}
	if len(flashes) > 0 {
		if err := session.Save(r, w); err != nil {
			logging.Log.Warnf("Flash: failed to save session: %v", err)
		}
	}
	return flashes
}
