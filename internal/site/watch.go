package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/docview/internal/route"
	"github.com/ziadkadry99/docview/internal/walker"
)

// Watcher reports changes to Markdown documents under a docs root.
type Watcher struct {
	root string
	fsw  *fsnotify.Watcher
	log  *slog.Logger
}

// NewWatcher watches root and every directory below it, except the
// default-excluded ones.
func NewWatcher(root string, log *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve root: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{root: abs, fsw: fsw, log: log}
	if err := w.addTree(abs); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && walker.ShouldExcludeDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run delivers changed document paths to onChange until ctx is done. The
// watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(route.DocumentPath)) error {
	defer w.fsw.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ev, onChange)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event, onChange func(route.DocumentPath)) {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				w.log.Warn("watch new directory", "path", ev.Name, "error", err)
			}
			return
		}
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	if !strings.HasSuffix(ev.Name, route.MarkdownExt) {
		return
	}
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return
	}
	p := route.DocumentPath(filepath.ToSlash(rel))
	w.log.Debug("document changed", "path", p, "op", ev.Op.String())
	onChange(p)
}
