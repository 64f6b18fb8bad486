package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionWatcher_Debounce(t *testing.T) {
	dir := t.TempDir()
	logger, _ := test.NewNullLogger()

	watcher, err := newDefinitionWatcher(logger, 100*time.Millisecond, dir, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx, func() { changes <- struct{}{} })
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00-client.yaml"), []byte("id: 0"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01-map.yaml"), []byte("id: 1"), 0644))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case <-changes:
		t.Fatal("burst reported more than once")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestDefinitionWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	logger, _ := test.NewNullLogger()

	watcher, err := newDefinitionWatcher(logger, 20*time.Millisecond, dir)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan struct{}, 10)
	go func() {
		_ = watcher.Run(ctx, func() { changes <- struct{}{} })
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644))

	select {
	case <-changes:
		t.Fatal("non-definition file reported")
	case <-time.After(200 * time.Millisecond):
	}
}
