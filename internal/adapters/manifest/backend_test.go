package manifest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/appinfo/internal/adapters/manifest"
	"go.trai.ch/appinfo/internal/core/domain"
	"go.trai.ch/appinfo/internal/core/ports"
	"go.trai.ch/appinfo/internal/core/ports/mocks"
)

const manifestJSON = `{
	"app_name": "Demo",
	"package_name": "com.demo.app",
	"version": "1.2.3",
	"build_number": "42",
	"build_signature": "",
	"installer_store": "web",
	"install_time": "2024-03-01T12:00:00Z"
}`

func newLogger(t *testing.T) ports.Logger {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func TestRetrieve_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(manifestJSON), 0o600))

	backend := manifest.New(newLogger(t), manifest.WithPath(path))

	data, err := backend.Retrieve(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "Demo", data.AppName)
	assert.Equal(t, "com.demo.app", data.PackageName)
	assert.Equal(t, "1.2.3", data.Version)
	assert.Equal(t, "42", data.BuildNumber)
	assert.Empty(t, data.BuildSignature)
	assert.Equal(t, "web", data.InstallerStore)
	assert.True(t, data.InstallTime.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestRetrieve_LocalFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.DefaultFilename)

	backend := manifest.New(newLogger(t), manifest.WithPath(path))

	_, err := backend.Retrieve(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestNotFound))
}

func TestRetrieve_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	backend := manifest.New(newLogger(t), manifest.WithPath(path))

	_, err := backend.Retrieve(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestMalformed))
}

func TestRetrieve_MalformedInstallTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.DefaultFilename)
	doc := `{"app_name": "Demo", "install_time": "yesterday"}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	backend := manifest.New(newLogger(t), manifest.WithPath(path))

	_, err := backend.Retrieve(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestMalformed))
}

func TestRetrieve_Served(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+manifest.DefaultFilename {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(manifestJSON))
	}))
	defer srv.Close()

	backend := manifest.New(newLogger(t), manifest.WithHTTPClient(srv.Client()))

	data, err := backend.Retrieve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Demo", data.AppName)
	assert.Equal(t, "web", data.InstallerStore)
}

func TestRetrieve_BaseURLOverridesConfiguredPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(manifestJSON))
	}))
	defer srv.Close()

	// The configured path does not exist; the baseURL hint must win.
	backend := manifest.New(newLogger(t),
		manifest.WithPath(filepath.Join(t.TempDir(), "missing.json")),
		manifest.WithHTTPClient(srv.Client()),
	)

	data, err := backend.Retrieve(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Demo", data.AppName)
}

func TestRetrieve_ServedNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	backend := manifest.New(newLogger(t), manifest.WithHTTPClient(srv.Client()))

	_, err := backend.Retrieve(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestNotFound))
}

func TestRetrieve_ServedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	backend := manifest.New(newLogger(t), manifest.WithHTTPClient(srv.Client()))

	_, err := backend.Retrieve(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestFetchFailed))
}
