// filepath: internal/audit/logger_auditor_test.go
package audit

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditor(enabled bool) (*LoggerAuditor, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return &LoggerAuditor{enabled: enabled, logger: logger}, hook
}

func TestLoggerAuditor_Enabled(t *testing.T) {
	a, hook := newTestAuditor(true)

	a.Log(context.Background(), "THEME_DELETE", "127.0.0.1:5555", "theme:3", map[string]interface{}{"name": "Ação"})

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "AUDIT EVENT", entry.Message)
	assert.Equal(t, "THEME_DELETE", entry.Data["audit_action"])
	assert.Equal(t, "127.0.0.1:5555", entry.Data["audit_actor"])
	assert.Equal(t, "theme:3", entry.Data["audit_resource"])
	assert.Equal(t, "Ação", entry.Data["detail.name"])
}

func TestLoggerAuditor_Disabled(t *testing.T) {
	a, hook := newTestAuditor(false)

	a.Log(context.Background(), "MOVIE_DELETE", "", "movie:1", nil)

	assert.Empty(t, hook.Entries)
}

func TestNewLoggerAuditor(t *testing.T) {
	a := NewLoggerAuditor(true)
	assert.True(t, a.enabled)
	assert.NotNil(t, a.logger)
}
