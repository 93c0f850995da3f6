package helm

// Client represents a Helm client for installing Helm charts.
type Client interface {
	// Install installs the chart as a release named name.
	Install(name string, chart string, opts InstallOptions) error
}

// InstallOptions holds the optional arguments of helm install. Empty fields
// are not passed to helm.
type InstallOptions struct {
	Namespace   string
	ValuesFiles []string
	SetArgs     []string
}
