package domain

import "time"

// PlatformData is the raw shape a backend returns from the host platform.
// Zero values mean the platform did not report the field; no validation is
// applied here or downstream.
type PlatformData struct {
	AppName        string
	PackageName    string
	Version        string
	BuildNumber    string
	BuildSignature string
	InstallerStore string
	InstallTime    time.Time
}
