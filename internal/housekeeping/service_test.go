// filepath: internal/housekeeping/service_test.go
package housekeeping

import (
	"errors"
	"moviecatalog/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockDrives is a mock implementation of the DriveRecorder interface for testing.
type MockDrives struct {
	mock.Mock
}

func (m *MockDrives) RecordDrives() ([]models.DriveInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DriveInfo), args.Error(1)
}

// MockHistory is a mock implementation of the HistoryStore interface for testing.
type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) PruneDriveRecords(cutoff time.Time) (int64, error) {
	args := m.Called(cutoff)
	return args.Get(0).(int64), args.Error(1)
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// setupTest creates dependencies with mocks and a fixed clock.
func setupTest(retention time.Duration) (Dependencies, *MockDrives, *MockHistory) {
	drives := new(MockDrives)
	history := new(MockHistory)
	deps := Dependencies{
		Drives:    drives,
		History:   history,
		Retention: retention,
		Now:       func() time.Time { return fixedNow },
	}
	return deps, drives, history
}

func TestRunOnce(t *testing.T) {
	t.Run("records and prunes", func(t *testing.T) {
		deps, drives, history := setupTest(24 * time.Hour)
		drives.On("RecordDrives").Return([]models.DriveInfo{{Name: "usb", Path: "/media/usb"}}, nil)
		history.On("PruneDriveRecords", fixedNow.Add(-24*time.Hour)).Return(int64(3), nil)

		report, err := RunOnce(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, report.DrivesRecorded)
		assert.Equal(t, int64(3), report.RecordsPruned)
		assert.Contains(t, report.Message, "1 drive(s) recorded, 3 stale record(s) pruned")
		drives.AssertExpectations(t)
		history.AssertExpectations(t)
	})

	t.Run("zero retention skips pruning", func(t *testing.T) {
		deps, drives, history := setupTest(0)
		drives.On("RecordDrives").Return([]models.DriveInfo{}, nil)

		report, err := RunOnce(deps)

		require.NoError(t, err)
		assert.Zero(t, report.RecordsPruned)
		history.AssertNotCalled(t, "PruneDriveRecords", mock.Anything)
	})

	t.Run("recording failure still prunes", func(t *testing.T) {
		deps, drives, history := setupTest(time.Hour)
		recordErr := errors.New("disk on fire")
		drives.On("RecordDrives").Return(nil, recordErr)
		history.On("PruneDriveRecords", mock.Anything).Return(int64(1), nil)

		report, err := RunOnce(deps)

		assert.ErrorIs(t, err, recordErr)
		assert.Equal(t, int64(1), report.RecordsPruned)
		history.AssertExpectations(t)
	})

	t.Run("prune failure is reported", func(t *testing.T) {
		deps, drives, history := setupTest(time.Hour)
		drives.On("RecordDrives").Return([]models.DriveInfo{}, nil)
		history.On("PruneDriveRecords", mock.Anything).Return(int64(0), errors.New("locked"))

		_, err := RunOnce(deps)

		assert.ErrorContains(t, err, "could not prune drive records")
	})
}

func TestNewServiceClampsInterval(t *testing.T) {
	deps, _, _ := setupTest(0)
	assert.Equal(t, MinInterval, NewService(deps, time.Second).Interval())
	assert.Equal(t, time.Hour, NewService(deps, time.Hour).Interval())
}

func TestServiceStartStop(t *testing.T) {
	deps, drives, _ := setupTest(0)
	ran := make(chan struct{}, 1)
	drives.On("RecordDrives").Return([]models.DriveInfo{}, nil).Run(func(mock.Arguments) {
		select {
		case ran <- struct{}{}:
		default:
		}
	})

	s := NewService(deps, time.Hour)
	s.Start()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("housekeeping did not run on start")
	}

	s.Stop()
	s.Stop()
	drives.AssertNumberOfCalls(t, "RecordDrives", 1)
}

func TestServiceStopWithoutStart(t *testing.T) {
	deps, _, _ := setupTest(0)
	NewService(deps, time.Hour).Stop()
}
