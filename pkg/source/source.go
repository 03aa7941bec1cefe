// Package source acquires quest documents from local files or over HTTP.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"

	"tableflip.dev/questlog/pkg/quest"
)

// maxDocumentSize caps how much of a document is read.
const maxDocumentSize = 8 << 20

// Loader reads quest documents. The zero value is ready to use.
type Loader struct {
	Client *http.Client
	Logger *zap.Logger

	// Now stamps the cache-busting query parameter.
	Now func() time.Time
}

// IsRemote reports whether location is fetched over HTTP.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Load acquires and decodes the document at location. Read and fetch
// failures wrap quest.ErrAcquisition; decode and validation failures wrap
// quest.ErrInvalidDocument.
func (l *Loader) Load(ctx context.Context, location string) (*quest.Document, error) {
	var (
		data   []byte
		format quest.Format
		err    error
	)
	if IsRemote(location) {
		data, format, err = l.fetch(ctx, location)
	} else {
		data, format, err = l.read(location)
	}
	if err != nil {
		return nil, err
	}
	doc, err := quest.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	l.logger().Debug("quest document acquired",
		zap.String("location", location),
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)))
	return doc, nil
}

func (l *Loader) read(location string) ([]byte, quest.Format, error) {
	path, err := homedir.Expand(location)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", quest.ErrAcquisition, location, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", quest.ErrAcquisition, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxDocumentSize))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", quest.ErrAcquisition, path, err)
	}
	return data, quest.FormatFor(path), nil
}

// fetch issues a no-cache GET with a timestamp query parameter so neither
// the server nor an intermediate cache hands back a stale document.
func (l *Loader) fetch(ctx context.Context, location string) ([]byte, quest.Format, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", quest.ErrAcquisition, err)
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(l.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", quest.ErrAcquisition, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := l.client().Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", quest.ErrAcquisition, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: HTTP error! status: %d", quest.ErrAcquisition, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", quest.ErrAcquisition, location, err)
	}

	format := quest.FormatFor(location)
	if ct := resp.Header.Get("Content-Type"); strings.Contains(strings.ToLower(ct), "yaml") {
		format = quest.FormatYAML
	}
	return data, format, nil
}

func (l *Loader) client() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (l *Loader) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// Name is the short name of location for messages: the file name or the
// last path element of a URL.
func Name(location string) string {
	if IsRemote(location) {
		if u, err := url.Parse(location); err == nil {
			location = u.Path
		}
	}
	location = strings.TrimRight(location, "/")
	if i := strings.LastIndexAny(location, `/\`); i >= 0 {
		return location[i+1:]
	}
	return location
}
