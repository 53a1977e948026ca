// Package version holds the server version reported at startup.
package version

var (
	// Version is the current release of the server.
	Version = "0.3.0"
	// DevVersion is the version used when running from source.
	DevVersion = "0.3.0-dev"
)

func GetCurrentVersion(mode string) string {
	if mode == "dev" || mode == "demo" {
		return DevVersion
	}
	return Version
}
