package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey string

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)
	t.Cleanup(func() { logrus.SetOutput(os.Stdout) })

	ctx := context.WithValue(context.Background(), "user_id", "u-1") //nolint:staticcheck
	ctx = context.WithValue(ctx, "request_id", "req-9")               //nolint:staticcheck
	ctx = context.WithValue(ctx, ctxKey("ignored"), "x")

	WithContext(ctx).WithField("project_id", "p-1").Info("phase updated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "u-1", entry["user"])
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "p-1", entry["project_id"])
	assert.Equal(t, "phase updated", entry["msg"])
}

func TestWithContext_AnonymousUser(t *testing.T) {
	l := WithContext(context.Background())
	assert.Equal(t, "unknown", l.Data["user"])
}

func TestSetup_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")

	closer := Setup(Options{Level: "debug", File: path})
	t.Cleanup(func() {
		logrus.SetOutput(os.Stdout)
		logrus.SetLevel(logrus.InfoLevel)
	})

	logrus.Debug("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
