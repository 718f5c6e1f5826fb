package logging_test

import (
	"testing"

	"afredes/pdf2docx/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &logging.MockLogger{}

	mock.Info("converted", logging.Field{Key: logging.FieldPages, Value: 2})

	require.Len(t, mock.Entries, 1)
	assert.True(t, mock.HasEntry("INFO", "converted"))
	assert.Equal(t, logging.FieldPages, mock.Entries[0].Fields[0].Key)
}

func TestMockLoggerDerivedLoggersRecordToOrigin(t *testing.T) {
	mock := &logging.MockLogger{}

	mock.WithError(assert.AnError).Warn("extraction failed")
	mock.WithField("k", "v").WithError(assert.AnError).Error("save failed")

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("WARN", "extraction failed"))
	assert.True(t, mock.HasEntry("ERROR", "save failed"))
	assert.Equal(t, assert.AnError, mock.Entries[0].Error)
	assert.Equal(t, "k", mock.Entries[1].Fields[0].Key)
}
