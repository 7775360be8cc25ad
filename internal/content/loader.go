// Package content fetches raw Markdown documents for the viewer.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ziadkadry99/docview/internal/route"
)

// Loader fetches the raw text of a document.
type Loader interface {
	Load(ctx context.Context, path route.DocumentPath) ([]byte, error)
}

// LoadFailure is the single error kind of the viewer: a document could not be
// fetched, whether from a network error, an HTTP failure or a missing file.
type LoadFailure struct {
	Path    route.DocumentPath
	Message string
	Err     error
}

func (e *LoadFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *LoadFailure) Unwrap() error { return e.Err }

// AsLoadFailure returns err as a *LoadFailure for path, wrapping it when it is
// not one already. A nil err yields nil.
func AsLoadFailure(path route.DocumentPath, err error) *LoadFailure {
	if err == nil {
		return nil
	}
	var lf *LoadFailure
	if errors.As(err, &lf) {
		return lf
	}
	return &LoadFailure{Path: path, Message: failedMessage(path), Err: err}
}

func failedMessage(path route.DocumentPath) string {
	return fmt.Sprintf("Failed to load %s", path)
}

// FSLoader reads documents from a file system rooted at the docs directory.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader returns a loader over fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewDirLoader returns a loader over the directory root.
func NewDirLoader(root string) *FSLoader {
	return NewFSLoader(os.DirFS(root))
}

// Load reads path. Paths that escape the root are rejected as missing.
func (l *FSLoader) Load(ctx context.Context, path route.DocumentPath) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, AsLoadFailure(path, err)
	}
	name := string(path)
	if !fs.ValidPath(name) {
		return nil, &LoadFailure{Path: path, Message: failedMessage(path), Err: fs.ErrNotExist}
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, AsLoadFailure(path, err)
	}
	return data, nil
}

// HTTPLoader fetches documents relative to a base URL.
type HTTPLoader struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPLoader returns a loader fetching <baseURL>/<path>. A zero timeout
// leaves requests unbounded; only ctx can cancel them.
func NewHTTPLoader(baseURL string, timeout time.Duration) (*HTTPLoader, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	return &HTTPLoader{base: u, client: &http.Client{Timeout: timeout}}, nil
}

// Load issues a GET for path. Any non-2xx status is a failure.
func (l *HTTPLoader) Load(ctx context.Context, path route.DocumentPath) ([]byte, error) {
	if !fs.ValidPath(string(path)) {
		return nil, &LoadFailure{Path: path, Message: failedMessage(path), Err: fs.ErrNotExist}
	}
	target := l.base.ResolveReference(&url.URL{Path: string(path)})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, AsLoadFailure(path, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, AsLoadFailure(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadFailure{Path: path, Message: failedMessage(path), Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, AsLoadFailure(path, err)
	}
	return data, nil
}
