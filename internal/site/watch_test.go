package site

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docview/internal/route"
)

func TestWatcher_ReportsMarkdownChanges(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "architecture"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules"), 0o755))
	doc := filepath.Join(dir, "architecture", "overview.md")
	require.NoError(t, os.WriteFile(doc, []byte("# v1\n"), 0o644))

	w, err := NewWatcher(dir, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan route.DocumentPath, 16)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(p route.DocumentPath) { changes <- p }) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Non-markdown files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(doc, []byte("# v2\n"), 0o644))

	select {
	case p := <-changes:
		require.Equal(t, route.DocumentPath("architecture/overview.md"), p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
