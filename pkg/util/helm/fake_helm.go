package helm

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type fakeClient struct {
	logger *logrus.Logger
	err    error
}

// NewFakeClient returns a new fake Helm client.
func NewFakeClient(logger *logrus.Logger) Client {
	return &fakeClient{
		logger: logger,
	}
}

// NewFailingFakeClient returns a fake Helm client whose Install returns err.
func NewFailingFakeClient(logger *logrus.Logger, err error) Client {
	return &fakeClient{
		logger: logger,
		err:    err,
	}
}

// Install implements Client.
func (f *fakeClient) Install(name string, chart string, opts InstallOptions) error {
	f.logger.Infof("Installing Helm chart %s with name %s in namespace %s", chart, name, opts.Namespace)
	if len(opts.ValuesFiles) > 0 {
		f.logger.Infof("Using values file(s) %s", strings.Join(opts.ValuesFiles, ","))
	}
	return f.err
}
