// Package manifest implements the metadata backend for non-native targets.
//
// Those targets ship a generated manifest file holding the same metadata
// fields in JSON form. The backend resolves the manifest either from a
// served base URL or from a local file next to the executable.
package manifest

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"go.trai.ch/zerr"

	"go.trai.ch/appinfo/internal/core/domain"
	"go.trai.ch/appinfo/internal/core/ports"
)

// DefaultFilename is the manifest file name generated alongside the application.
const DefaultFilename = "appinfo.json"

var _ ports.Backend = (*Backend)(nil)

// Backend reads application metadata from a generated manifest file.
type Backend struct {
	logger ports.Logger
	client *http.Client
	url    string
	path   string
}

// Option configures a Backend.
type Option func(*Backend)

// WithURL sets the base location of a served manifest.
func WithURL(u string) Option {
	return func(b *Backend) { b.url = u }
}

// WithPath sets a local manifest file path.
func WithPath(p string) Option {
	return func(b *Backend) { b.path = p }
}

// WithHTTPClient replaces the HTTP client used for served manifests.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Backend) { b.client = c }
}

// New creates a new manifest Backend.
func New(logger ports.Logger, opts ...Option) *Backend {
	b := &Backend{
		logger: logger,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// document mirrors the generated manifest file.
type document struct {
	AppName        string `json:"app_name"`
	PackageName    string `json:"package_name"`
	Version        string `json:"version"`
	BuildNumber    string `json:"build_number"`
	BuildSignature string `json:"build_signature"`
	InstallerStore string `json:"installer_store"`
	InstallTime    string `json:"install_time"`
}

// Retrieve resolves and decodes the manifest. A non-empty baseURL hint takes
// precedence over the configured location.
func (b *Backend) Retrieve(ctx context.Context, baseURL string) (*domain.PlatformData, error) {
	raw, err := b.read(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, zerr.Wrap(domain.ErrManifestMalformed, err.Error())
	}

	data := &domain.PlatformData{
		AppName:        doc.AppName,
		PackageName:    doc.PackageName,
		Version:        doc.Version,
		BuildNumber:    doc.BuildNumber,
		BuildSignature: doc.BuildSignature,
		InstallerStore: doc.InstallerStore,
	}
	if doc.InstallTime != "" {
		t, err := time.Parse(time.RFC3339, doc.InstallTime)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestMalformed, err.Error()), "install_time", doc.InstallTime)
		}
		data.InstallTime = t
	}

	return data, nil
}

func (b *Backend) read(ctx context.Context, baseURL string) ([]byte, error) {
	switch {
	case baseURL != "":
		return b.fetch(ctx, baseURL)
	case b.url != "":
		return b.fetch(ctx, b.url)
	default:
		return b.readFile()
	}
}

func (b *Backend) fetch(ctx context.Context, base string) ([]byte, error) {
	loc, err := url.JoinPath(base, DefaultFilename)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid manifest base URL"), "base_url", base)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build manifest request"), "url", loc)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestFetchFailed, err.Error()), "url", loc)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, zerr.With(domain.ErrManifestNotFound, "url", loc)
	case resp.StatusCode != http.StatusOK:
		return nil, zerr.With(domain.ErrManifestFetchFailed, "status", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrManifestFetchFailed, err.Error()), "url", loc)
	}
	return body, nil
}

func (b *Backend) readFile() ([]byte, error) {
	path := b.path
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate executable")
		}
		path = filepath.Join(filepath.Dir(exe), DefaultFilename)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	return data, nil
}
