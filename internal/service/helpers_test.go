package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"linkly/internal/service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// anyRecorder accepts every business metric.
func anyRecorder(t *testing.T) *mocks.MockBusinessRecorder {
	rec := mocks.NewMockBusinessRecorder(t)
	rec.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	return rec
}
