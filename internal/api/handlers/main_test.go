// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"moviecatalog/internal/config"
	"moviecatalog/internal/services/mocks"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef0123"

// auditEvent is one call captured by recordingAuditor.
type auditEvent struct {
	Action   string
	Resource string
	Details  map[string]interface{}
}

type recordingAuditor struct {
	events []auditEvent
}

func (a *recordingAuditor) Log(_ context.Context, action, _ string, resource string, details map[string]interface{}) {
	a.events = append(a.events, auditEvent{Action: action, Resource: resource, Details: details})
}

type testHandlers struct {
	*Handlers
	Info    *mocks.MockInfoService
	Catalog *mocks.MockCatalogService
	Drives  *mocks.MockDriveService
	Audit   *recordingAuditor
}

func newTestHandlers() *testHandlers {
	info := new(mocks.MockInfoService)
	catalog := new(mocks.MockCatalogService)
	drives := new(mocks.MockDriveService)
	auditor := &recordingAuditor{}
	cfg := &config.Config{Secret: testSecret}
	return &testHandlers{
		Handlers: NewHandlers(info, catalog, drives, NewFlashStore(testSecret), auditor, cfg),
		Info:     info,
		Catalog:  catalog,
		Drives:   drives,
		Audit:    auditor,
	}
}

// formRequest builds a urlencoded request with optional route variables.
func formRequest(method, target string, form url.Values, vars map[string]string) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}
