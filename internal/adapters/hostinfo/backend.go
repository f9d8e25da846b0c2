// Package hostinfo implements the metadata backend for native hosts.
//
// It assembles the platform data from the running binary itself: the Go
// build info embedded by the toolchain, linker-set build variables, and the
// executable file on disk.
package hostinfo

import (
	"context"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"go.trai.ch/zerr"

	"go.trai.ch/appinfo/internal/build"
	"go.trai.ch/appinfo/internal/core/domain"
	"go.trai.ch/appinfo/internal/core/ports"
)

var _ ports.Backend = (*Backend)(nil)

// Backend reads application metadata from the host binary.
type Backend struct {
	logger ports.Logger
}

// New creates a new host Backend.
func New(logger ports.Logger) *Backend {
	return &Backend{logger: logger}
}

// Retrieve reads the platform metadata. The baseURL hint is ignored; this
// backend only consults local state.
func (b *Backend) Retrieve(_ context.Context, _ string) (*domain.PlatformData, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrPlatformUnreadable, err.Error())
	}

	data := &domain.PlatformData{
		AppName:     appName(exe),
		Version:     build.Version,
		BuildNumber: build.Number,
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		data.PackageName = info.Main.Path
		if data.Version == "" || data.Version == "dev" {
			if v := info.Main.Version; v != "" && v != "(devel)" {
				data.Version = v
			}
		}
		if data.BuildNumber == "" {
			data.BuildNumber = vcsRevision(info)
		}
	} else {
		b.logger.Warn("build info unavailable, package name will be empty")
	}

	// The executable's modification time is the closest thing a plain
	// binary install has to an install timestamp.
	if fi, err := os.Stat(exe); err == nil {
		data.InstallTime = fi.ModTime()
	}

	return data, nil
}

func appName(exe string) string {
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func vcsRevision(info *debug.BuildInfo) string {
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}
