package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = ""

	info := Get()
	if info.Version == "" {
		t.Error("expected a version, got empty string")
	}
}

func TestGetLdflagsOverride(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = "v1.2.3"

	if got := Get().Version; got != "v1.2.3" {
		t.Errorf("expected 'v1.2.3', got %q", got)
	}
	if !strings.HasPrefix(Short(), "v1.2.3") {
		t.Errorf("expected Short to start with the version, got %q", Short())
	}
}

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name string
		bi   *debug.BuildInfo
		want Info
	}{
		{
			name: "main module with vcs",
			bi: &debug.BuildInfo{
				GoVersion: "go1.26.0",
				Main:      debug.Module{Path: ModulePath, Version: "v0.3.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: Info{Version: "v0.3.0", Revision: "0123456", GoVersion: "go1.26.0", Modified: true},
		},
		{
			name: "dependency of another binary",
			bi: &debug.BuildInfo{
				GoVersion: "go1.26.0",
				Main:      debug.Module{Path: "example.com/app", Version: "(devel)"},
				Deps:      []*debug.Module{{Path: ModulePath, Version: "v0.4.1"}},
				Settings:  []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffff"}},
			},
			want: Info{Version: "v0.4.1", GoVersion: "go1.26.0"},
		},
		{
			name: "replaced dependency",
			bi: &debug.BuildInfo{
				Main: debug.Module{Path: "example.com/app"},
				Deps: []*debug.Module{{
					Path:    ModulePath,
					Version: "v0.4.1",
					Replace: &debug.Module{Path: "../confkit", Version: "v0.5.0"},
				}},
			},
			want: Info{Version: "v0.5.0"},
		},
		{
			name: "devel main module",
			bi:   &debug.BuildInfo{Main: debug.Module{Path: ModulePath, Version: "(devel)"}},
			want: Info{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Info
			fromBuildInfo(&got, tc.bi)
			if got != tc.want {
				t.Errorf("fromBuildInfo() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
