package version

import (
	"runtime/debug"
)

// ModulePath is the import path of this module.
const ModulePath = "github.com/kbukum/confkit"

// Version is set at build time using -ldflags. When empty, the version
// recorded in the binary's module graph is used.
var Version = ""

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Get returns the confkit version linked into the running binary.
func Get() Info {
	info := Info{Version: Version}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(&info, bi)
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

func fromBuildInfo(info *Info, bi *debug.BuildInfo) {
	info.GoVersion = bi.GoVersion
	if info.Version == "" {
		info.Version = moduleVersion(bi)
	}
	// VCS settings describe the main module only.
	if bi.Main.Path != ModulePath {
		return
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
			if len(info.Revision) > 7 {
				info.Revision = info.Revision[:7]
			}
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
}

func moduleVersion(bi *debug.BuildInfo) string {
	if bi.Main.Path == ModulePath && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return ""
}

// Short returns the version with the revision appended when known.
func Short() string {
	info := Get()
	if info.Revision == "" {
		return info.Version
	}
	s := info.Version + "-" + info.Revision
	if info.Modified {
		s += "-dirty"
	}
	return s
}
