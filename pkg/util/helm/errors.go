package helm

import (
	"fmt"

	"github.com/kube-tarian/helm-installer/pkg/stringutil"
)

// maxStderrLength caps how much of helm's stderr ends up in an error message.
const maxStderrLength = 2048

// InstallError is returned when helm install exits with a non-zero status.
type InstallError struct {
	Release  string
	Chart    string
	ExitCode int
	Stderr   string
	Err      error

	// stderrLogged is set when Stderr was already forwarded to the logger.
	stderrLogged bool
}

func (e *InstallError) Error() string {
	msg := fmt.Sprintf("helm install %s %s failed with exit code %d", e.Release, e.Chart, e.ExitCode)
	if e.Stderr != "" && !e.stderrLogged {
		msg += ": " + stringutil.Truncate(e.Stderr, maxStderrLength)
	}
	return msg
}

func (e *InstallError) Unwrap() error {
	return e.Err
}
