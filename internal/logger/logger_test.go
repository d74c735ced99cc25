package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := logrus.StandardLogger().Out
	prevLevel := logrus.GetLevel()
	logrus.SetOutput(&buf)
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})
	return &buf
}

func TestWithContextAddsUserAndRequest(t *testing.T) {
	buf := captureOutput(t)
	Setup("info")

	ctx := ContextWithRequestID(ContextWithUser(context.Background(), "u-42"), "req-1")
	WithContext(ctx).WithProject("p-7").WithError(errors.New("boom")).Warn("stale base version")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "u-42", entry["user"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "p-7", entry["project_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "warning", entry["level"])
}

func TestWithContextUnknownUser(t *testing.T) {
	buf := captureOutput(t)
	Setup("debug")

	WithContext(context.Background()).Debug("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unknown", entry["user"])
	assert.NotContains(t, entry, "request_id")
}

func TestSetupLevels(t *testing.T) {
	captureOutput(t)

	Setup("error")
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())
	Setup("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestContextAccessors(t *testing.T) {
	assert.Empty(t, UserFromContext(context.Background()))
	assert.Equal(t, "u1", UserFromContext(ContextWithUser(context.Background(), "u1")))
}
