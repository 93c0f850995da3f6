package helm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const maxLineSize = 1024 * 1024

// Options configures how the helm binary is invoked.
type Options struct {
	HelmBinary  string // name or path of the helm binary, looked up on PATH
	Kubeconfig  string // path to the kubeconfig file
	KubeContext string // name of the kubeconfig context
}

type client struct {
	helmBin     string         // path to the helm binary
	kubeconfig  string         // path to the kubeconfig file
	kubeContext string         // name of the kubeconfig context
	logger      *logrus.Logger // logger
}

// NewHelmClient returns a new Helm client. It fails if the helm binary
// cannot be found.
func NewHelmClient(logger *logrus.Logger, opts Options) (Client, error) {
	helmBin := opts.HelmBinary
	if helmBin == "" {
		helmBin = "helm"
	}

	helmBinaryPath, err := exec.LookPath(helmBin)
	if err != nil {
		return nil, fmt.Errorf("seems like helm is not installed, please install helm first: %w", err)
	}
	logger.Debugf("using helm binary %s", helmBinaryPath)

	return &client{
		helmBin:     helmBinaryPath,
		kubeconfig:  opts.Kubeconfig,
		kubeContext: opts.KubeContext,
		logger:      logger,
	}, nil
}

// Install runs helm install for the given release and chart and waits for it
// to finish.
func (h *client) Install(name string, chart string, opts InstallOptions) error {
	h.logger.Debugf("Installing Helm chart %s with name %s", chart, name)
	args := h.installArgs(name, chart, opts)
	h.logger.Debugf("running %s %s", h.helmBin, strings.Join(args, " "))

	stderr, err := h.run(args)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &InstallError{
			Release:  name,
			Chart:    chart,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(stderr),
			Err:      err,

			stderrLogged: h.logger.IsLevelEnabled(logrus.WarnLevel),
		}
	}
	return fmt.Errorf("failed to run helm install: %w", err)
}

func (h *client) installArgs(name string, chart string, opts InstallOptions) []string {
	args := []string{
		"install",
		name, chart,
	}

	if opts.Namespace != "" {
		args = append(args, "--namespace", opts.Namespace)
	}

	if h.kubeconfig != "" {
		args = append(args, "--kubeconfig", h.kubeconfig)
	}

	if h.kubeContext != "" {
		args = append(args, "--kube-context", h.kubeContext)
	}

	for _, valuesFile := range opts.ValuesFiles {
		args = append(args, "--values", valuesFile)
	}

	for _, setArg := range opts.SetArgs {
		args = append(args, "--set", setArg)
	}
	return args
}

// run starts helm, forwards its output to the logger and waits for it to
// exit. It returns everything helm wrote to stderr.
func (h *client) run(args []string) (string, error) {
	cmd := exec.Command(h.helmBin, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", err
	}

	if err := cmd.Start(); err != nil {
		return "", err
	}

	var stderrLines []string
	var g errgroup.Group
	g.Go(func() error {
		return forwardLines(stdout, func(line string) {
			h.logger.Info(line)
		})
	})
	g.Go(func() error {
		return forwardLines(stderr, func(line string) {
			stderrLines = append(stderrLines, line)
			h.logger.Warn(line)
		})
	})

	// Both pipes must be drained before Wait closes them.
	copyErr := g.Wait()
	err = cmd.Wait()
	if copyErr != nil {
		h.logger.Debugf("failed to read helm output: %s", copyErr)
	}
	return strings.Join(stderrLines, "\n"), err
}

// forwardLines calls fn for every line read from r. If a line cannot be
// scanned the rest of r is discarded so the process never blocks on a full
// pipe.
func forwardLines(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}
