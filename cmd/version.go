package cmd

// nolint: gochecknoglobals
var (
	version = "dev"
	commit  = "main"
)

// GetVersion returns the version string set at build time.
func GetVersion() string {
	return version + " (" + commit + ")"
}
