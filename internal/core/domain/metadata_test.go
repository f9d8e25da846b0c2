package domain_test

import (
	"strings"
	"testing"
	"time"

	"go.trai.ch/appinfo/internal/core/domain"
)

func TestPackageMetadata_Fields(t *testing.T) {
	installed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	meta := domain.New("Demo", "com.demo.app", "1.2.3", "42",
		domain.WithBuildSignature("ab:cd:ef"),
		domain.WithInstallerStore("com.apple.AppStore"),
		domain.WithInstallTime(installed),
	)

	if meta.AppName() != "Demo" {
		t.Errorf("Expected appName %q, got %q", "Demo", meta.AppName())
	}
	if meta.PackageName() != "com.demo.app" {
		t.Errorf("Expected packageName %q, got %q", "com.demo.app", meta.PackageName())
	}
	if meta.Version() != "1.2.3" {
		t.Errorf("Expected version %q, got %q", "1.2.3", meta.Version())
	}
	if meta.BuildNumber() != "42" {
		t.Errorf("Expected buildNumber %q, got %q", "42", meta.BuildNumber())
	}
	if meta.BuildSignature() != "ab:cd:ef" {
		t.Errorf("Expected buildSignature %q, got %q", "ab:cd:ef", meta.BuildSignature())
	}
	if meta.InstallerStore() != "com.apple.AppStore" {
		t.Errorf("Expected installerStore %q, got %q", "com.apple.AppStore", meta.InstallerStore())
	}
	got, ok := meta.InstallTime()
	if !ok {
		t.Fatal("Expected installTime to be present")
	}
	if !got.Equal(installed) {
		t.Errorf("Expected installTime %v, got %v", installed, got)
	}
}

func TestPackageMetadata_Defaults(t *testing.T) {
	meta := domain.New("Demo", "com.demo.app", "1.2.3", "42")

	if meta.BuildSignature() != "" {
		t.Errorf("Expected empty buildSignature, got %q", meta.BuildSignature())
	}
	if meta.InstallerStore() != "" {
		t.Errorf("Expected empty installerStore, got %q", meta.InstallerStore())
	}
	if _, ok := meta.InstallTime(); ok {
		t.Error("Expected installTime to be absent")
	}
}

func TestPackageMetadata_Equality(t *testing.T) {
	installed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	base := func() domain.PackageMetadata {
		return domain.New("Demo", "com.demo.app", "1.2.3", "42",
			domain.WithBuildSignature("sig"),
			domain.WithInstallerStore("store"),
			domain.WithInstallTime(installed),
		)
	}

	a, b := base(), base()
	if !a.Equal(b) {
		t.Error("Expected instances built from identical tuples to be equal")
	}
	if !a.Equal(a) {
		t.Error("Expected equality to be reflexive")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Expected equal instances to share a hash, got %d and %d", a.Hash(), b.Hash())
	}

	variants := map[string]domain.PackageMetadata{
		"appName":        domain.New("Other", "com.demo.app", "1.2.3", "42", domain.WithBuildSignature("sig"), domain.WithInstallerStore("store"), domain.WithInstallTime(installed)),
		"packageName":    domain.New("Demo", "com.other.app", "1.2.3", "42", domain.WithBuildSignature("sig"), domain.WithInstallerStore("store"), domain.WithInstallTime(installed)),
		"version":        domain.New("Demo", "com.demo.app", "9.9.9", "42", domain.WithBuildSignature("sig"), domain.WithInstallerStore("store"), domain.WithInstallTime(installed)),
		"buildNumber":    domain.New("Demo", "com.demo.app", "1.2.3", "43", domain.WithBuildSignature("sig"), domain.WithInstallerStore("store"), domain.WithInstallTime(installed)),
		"buildSignature": domain.New("Demo", "com.demo.app", "1.2.3", "42", domain.WithBuildSignature("other"), domain.WithInstallerStore("store"), domain.WithInstallTime(installed)),
		"installerStore": domain.New("Demo", "com.demo.app", "1.2.3", "42", domain.WithBuildSignature("sig"), domain.WithInstallerStore("other"), domain.WithInstallTime(installed)),
		"installTime":    domain.New("Demo", "com.demo.app", "1.2.3", "42", domain.WithBuildSignature("sig"), domain.WithInstallerStore("store"), domain.WithInstallTime(installed.Add(time.Hour))),
	}

	for field, variant := range variants {
		if a.Equal(variant) {
			t.Errorf("Expected changing %s to break equality", field)
		}
		if a.Hash() == variant.Hash() {
			t.Errorf("Expected changing %s to change the hash", field)
		}
	}
}

func TestPackageMetadata_Map(t *testing.T) {
	t.Run("omits empty optional fields", func(t *testing.T) {
		meta := domain.New("Demo", "com.demo.app", "1.2.3", "42", domain.WithBuildSignature(""))

		view := meta.Map()
		want := map[string]string{
			"appName":     "Demo",
			"packageName": "com.demo.app",
			"version":     "1.2.3",
			"buildNumber": "42",
		}
		if len(view) != len(want) {
			t.Fatalf("Expected %d entries, got %d: %v", len(want), len(view), view)
		}
		for key, value := range want {
			if view[key] != value {
				t.Errorf("Expected %s=%q, got %q", key, value, view[key])
			}
		}
	})

	t.Run("includes populated optional fields", func(t *testing.T) {
		installed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		meta := domain.New("Demo", "com.demo.app", "1.2.3", "42",
			domain.WithBuildSignature("sig"),
			domain.WithInstallerStore("store"),
			domain.WithInstallTime(installed),
		)

		view := meta.Map()
		if view["buildSignature"] != "sig" {
			t.Errorf("Expected buildSignature in view, got %v", view)
		}
		if view["installerStore"] != "store" {
			t.Errorf("Expected installerStore in view, got %v", view)
		}
		if view["installTime"] != "2024-03-01T12:00:00Z" {
			t.Errorf("Expected RFC3339 installTime, got %q", view["installTime"])
		}
	})
}

func TestPackageMetadata_String(t *testing.T) {
	meta := domain.New("Demo", "com.demo.app", "1.2.3", "42")

	s := meta.String()
	for _, want := range []string{"Demo", "com.demo.app", "1.2.3", "42", "appName", "installerStore"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected String() to contain %q, got %q", want, s)
		}
	}
}

func TestFromPlatformData(t *testing.T) {
	installed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	data := domain.PlatformData{
		AppName:        "Demo",
		PackageName:    "com.demo.app",
		Version:        "1.2.3",
		BuildNumber:    "42",
		BuildSignature: "sig",
		InstallerStore: "store",
		InstallTime:    installed,
	}

	meta := domain.FromPlatformData(data)

	want := domain.New("Demo", "com.demo.app", "1.2.3", "42",
		domain.WithBuildSignature("sig"),
		domain.WithInstallerStore("store"),
		domain.WithInstallTime(installed),
	)
	if !meta.Equal(want) {
		t.Errorf("Expected %v, got %v", want, meta)
	}
}
