// Package domain holds the core value objects for appinfo.
package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// PackageMetadata is the uniform application metadata read from the host
// platform. It is an immutable value object: all fields are fixed at
// construction and no validation is performed on their contents.
type PackageMetadata struct {
	appName        string
	packageName    string
	version        string
	buildNumber    string
	buildSignature string
	installerStore string
	installTime    time.Time
}

// Option configures optional PackageMetadata fields at construction.
type Option func(*PackageMetadata)

// WithBuildSignature sets the signing-key fingerprint. Defaults to empty.
func WithBuildSignature(sig string) Option {
	return func(m *PackageMetadata) { m.buildSignature = sig }
}

// WithInstallerStore sets the distribution channel identifier.
func WithInstallerStore(store string) Option {
	return func(m *PackageMetadata) { m.installerStore = store }
}

// WithInstallTime sets the install/creation moment.
func WithInstallTime(t time.Time) Option {
	return func(m *PackageMetadata) { m.installTime = t }
}

// New creates a PackageMetadata from literal values. It is fully independent
// of platform state, which makes it the constructor of choice for tests.
func New(appName, packageName, version, buildNumber string, opts ...Option) PackageMetadata {
	m := PackageMetadata{
		appName:     appName,
		packageName: packageName,
		version:     version,
		buildNumber: buildNumber,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// FromPlatformData converts the raw backend shape into a PackageMetadata.
func FromPlatformData(data PlatformData) PackageMetadata {
	return PackageMetadata{
		appName:        data.AppName,
		packageName:    data.PackageName,
		version:        data.Version,
		buildNumber:    data.BuildNumber,
		buildSignature: data.BuildSignature,
		installerStore: data.InstallerStore,
		installTime:    data.InstallTime,
	}
}

// AppName returns the human-readable application name.
func (m PackageMetadata) AppName() string { return m.appName }

// PackageName returns the reverse-domain or module package identifier.
func (m PackageMetadata) PackageName() string { return m.packageName }

// Version returns the human-readable version string.
func (m PackageMetadata) Version() string { return m.version }

// BuildNumber returns the monotonic build identifier.
func (m PackageMetadata) BuildNumber() string { return m.buildNumber }

// BuildSignature returns the signing-key fingerprint, empty when unavailable.
func (m PackageMetadata) BuildSignature() string { return m.buildSignature }

// InstallerStore returns the distribution channel identifier, empty when
// the platform does not report one.
func (m PackageMetadata) InstallerStore() string { return m.installerStore }

// InstallTime returns the install/creation moment and whether the platform
// reported one.
func (m PackageMetadata) InstallTime() (time.Time, bool) {
	return m.installTime, !m.installTime.IsZero()
}

// Equal reports structural equality: two instances are equal iff all seven
// fields are equal.
func (m PackageMetadata) Equal(other PackageMetadata) bool {
	return m.appName == other.appName &&
		m.packageName == other.packageName &&
		m.version == other.version &&
		m.buildNumber == other.buildNumber &&
		m.buildSignature == other.buildSignature &&
		m.installerStore == other.installerStore &&
		m.installTime.Equal(other.installTime)
}

// Hash returns a structural hash over the field tuple. Instances that are
// Equal produce the same hash.
func (m PackageMetadata) Hash() uint64 {
	hasher := xxhash.New()

	for _, field := range []string{
		m.appName,
		m.packageName,
		m.version,
		m.buildNumber,
		m.buildSignature,
		m.installerStore,
	} {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0}) // Separator
	}
	if !m.installTime.IsZero() {
		_, _ = hasher.WriteString(m.installTime.UTC().Format(time.RFC3339Nano))
	}

	return hasher.Sum64()
}

// String renders all fields for human consumption.
func (m PackageMetadata) String() string {
	installTime := ""
	if t, ok := m.InstallTime(); ok {
		installTime = t.Format(time.RFC3339)
	}
	return fmt.Sprintf(
		"PackageMetadata(appName: %s, packageName: %s, version: %s, buildNumber: %s, buildSignature: %s, installerStore: %s, installTime: %s)",
		m.appName, m.packageName, m.version, m.buildNumber, m.buildSignature, m.installerStore, installTime,
	)
}

// Map returns a key-value view of the metadata. BuildSignature and
// InstallerStore are omitted when empty, InstallTime when absent; the four
// remaining fields are always present.
func (m PackageMetadata) Map() map[string]string {
	view := map[string]string{
		"appName":     m.appName,
		"packageName": m.packageName,
		"version":     m.version,
		"buildNumber": m.buildNumber,
	}
	if m.buildSignature != "" {
		view["buildSignature"] = m.buildSignature
	}
	if m.installerStore != "" {
		view["installerStore"] = m.installerStore
	}
	if t, ok := m.InstallTime(); ok {
		view["installTime"] = t.Format(time.RFC3339)
	}
	return view
}
