package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Helpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelInfo).WithComponent("dataset").WithPath("a.txt").WithSpace("l2").WithMethod("cover")
	l.Info("loaded", "objects", 3)
	l.Debug("hidden")
	out := buf.String()
	for _, want := range []string{"component=dataset", "path=a.txt", "space=l2", "method=cover", "objects=3"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "hidden")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	NewJSON(&buf, slog.LevelDebug).WithPath("b.txt").Error("dimension mismatch", "expected", 2, "actual", 3)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "b.txt", rec["path"])
	assert.EqualValues(t, 2, rec["expected"])
}

func TestDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)
	var buf bytes.Buffer
	SetDefault(NewText(&buf, slog.LevelInfo))
	SetDefault(nil)
	Default().Info("hello")
	assert.Contains(t, buf.String(), "hello")
	Noop().Error("dropped")
}

func TestDefault_Concurrent(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetDefault(NewText(io.Discard, slog.LevelInfo))
		}()
		go func() {
			defer wg.Done()
			Default().WithComponent("dataset").Info("loaded")
		}()
	}
	wg.Wait()
	require.NotNil(t, Default())
}
