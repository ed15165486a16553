package util

import (
	"runtime/debug"
)

// BuildVersion describes the running binary from its embedded build info,
// e.g. "v1.2.0-3f9a2c1" or "(devel)-3f9a2c1-dirty".
func BuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	version := info.Main.Version
	if version == "" {
		version = "unknown"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" {
		version += "-" + revision
	}
	if modified {
		version += "-dirty"
	}
	return version
}
