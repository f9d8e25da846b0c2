package domain

import "go.trai.ch/zerr"

var (
	// ErrPlatformUnreadable is returned when a backend cannot read the host
	// platform metadata.
	ErrPlatformUnreadable = zerr.New("platform metadata is unreadable")

	// ErrManifestNotFound is returned when the metadata manifest cannot be
	// located, either on disk or at the served location.
	ErrManifestNotFound = zerr.New("metadata manifest not found")

	// ErrManifestFetchFailed is returned when fetching a served manifest fails.
	ErrManifestFetchFailed = zerr.New("failed to fetch metadata manifest")

	// ErrManifestMalformed is returned when the manifest contents cannot be decoded.
	ErrManifestMalformed = zerr.New("malformed metadata manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownBackend is returned when the configured backend name is not recognized.
	ErrUnknownBackend = zerr.New("unknown backend, expected 'host' or 'manifest'")

	// ErrNoPlatformData is returned when a backend reports success without
	// producing any platform data.
	ErrNoPlatformData = zerr.New("backend returned no platform data")
)
