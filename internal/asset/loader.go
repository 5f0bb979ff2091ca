// Package asset loads textures and environment maps asynchronously.
//
// Every load returns a Future immediately. Failures never panic; they resolve
// the future as failed so callers can leave the visual out.
package asset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/litescript/ls-planets/internal/logging"
)

const (
	// DefaultTimeout for HTTP requests.
	DefaultTimeout = 30 * time.Second

	// maxAssetBytes bounds a single download or file read.
	maxAssetBytes = 64 << 20
)

// Loader fetches and decodes assets from the local filesystem or over HTTP.
type Loader struct {
	client  *http.Client
	baseDir string
	timeout time.Duration
	logger  *logging.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		l.client = client
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithBaseDir sets the directory relative references are resolved against.
func WithBaseDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.baseDir = dir
	}
}

// WithLogger sets the logger for load results.
func WithLogger(logger *logging.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a new asset loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		baseDir: ".",
		timeout: DefaultTimeout,
		logger:  logging.Discard(),
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.client == nil {
		l.client = &http.Client{
			Timeout: l.timeout,
		}
	}

	return l
}

// LoadTexture starts loading an sRGB PNG or JPEG texture.
func (l *Loader) LoadTexture(ctx context.Context, ref string) *Future[*Texture] {
	return load(ctx, l, ref, DecodeTexture)
}

// LoadEnvironment starts loading a Radiance HDR equirectangular environment.
func (l *Loader) LoadEnvironment(ctx context.Context, ref string) *Future[*Environment] {
	return load(ctx, l, ref, func(r io.Reader) (*Environment, error) {
		tex, err := DecodeHDR(r)
		if err != nil {
			return nil, err
		}
		return NewEnvironment(tex), nil
	})
}

func load[T any](ctx context.Context, l *Loader, ref string, decode func(io.Reader) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		start := time.Now()
		raw, err := l.read(ctx, ref)
		if err == nil {
			var v T
			v, err = decode(bytes.NewReader(raw))
			if err == nil {
				l.logger.Debug("loaded %s (%d bytes) in %v", ref, len(raw), time.Since(start).Round(time.Millisecond))
				f.resolve(v, nil)
				return
			}
			err = fmt.Errorf("decode %s: %w", ref, err)
		}
		l.logger.Warn("asset unavailable: %v", err)
		var zero T
		f.resolve(zero, err)
	}()
	return f
}

// Resolve returns the path or URL a reference is read from.
func (l *Loader) Resolve(ref string) string {
	if isURL(ref) || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(l.baseDir, filepath.FromSlash(ref))
}

func (l *Loader) read(ctx context.Context, ref string) ([]byte, error) {
	if isURL(ref) {
		return l.fetch(ctx, ref)
	}

	path := l.Resolve(ref)
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	body, err := io.ReadAll(io.LimitReader(fh, maxAssetBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "ls-planets/1.0 (terminal planet scene)")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return body, nil
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
