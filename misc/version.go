// Package misc keeps build time information about the program.
package misc

import (
	"runtime/debug"
)

// Set with -ldflags "-X mkcss/misc.version=... -X mkcss/misc.gitHash=..."
var (
	version = "dev"
	gitHash = ""
)

const appName = "mkcss"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	if version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
	}
	return version
}

func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
