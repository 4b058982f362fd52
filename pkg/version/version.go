// Package version derives the application version from build metadata:
// an -ldflags override wins, then VCS info from debug.BuildInfo, then the
// "dev" fallback for go test and non-git builds.
package version

import "runtime/debug"

// AppName is the application name used in version strings and user agents.
const AppName = "hnscribe"

// gitCommitOverride is set via -ldflags for container builds where .git
// is unavailable. Empty means no override.
var gitCommitOverride string

// GitCommit is the short git commit hash, or "dev".
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return short(gitCommitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "hnscribe/<commit>" for user-agent strings and logging.
func Full() string {
	return AppName + "/" + GitCommit
}
