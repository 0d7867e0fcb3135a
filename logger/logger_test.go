package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWritesJSONToFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "app.log")

	closer := InitLogger("debug", path)
	t.Cleanup(func() { logrus.SetOutput(os.Stdout) })
	req.Equal(logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("op", "test").Debug("hello")
	req.NoError(closer.Close())

	data, err := os.ReadFile(path)
	req.NoError(err)
	req.Contains(string(data), `"msg":"hello"`)
	req.Contains(string(data), `"op":"test"`)
}

func TestInitLoggerFallsBack(t *testing.T) {
	closer := InitLogger("loud", "")
	require.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	require.NoError(t, closer.Close())
}
