// Package misc holds build time program information.
package misc

// Set with -ldflags "-X respcss/misc.version=... -X respcss/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "respcss"

// GetAppName returns program name used for logs and temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns source revision program was built from.
func GetGitHash() string {
	return gitHash
}
