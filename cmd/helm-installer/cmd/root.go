package cmd

import (
	"errors"
	"fmt"
	"os"

	version "github.com/kube-tarian/helm-installer/cmd"
	"github.com/kube-tarian/helm-installer/cmd/helm-installer/cmd/flags"
	"github.com/kube-tarian/helm-installer/pkg/config"
	"github.com/kube-tarian/helm-installer/pkg/log"
	"github.com/kube-tarian/helm-installer/pkg/util/helm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const successMessage = "Helm resources installed successfully."

// helmClientFactory creates the helm client used by the root command.
type helmClientFactory func(logger *logrus.Logger, opts helm.Options) (helm.Client, error)

// usageError is returned for a wrong argument count or unparsable flags.
type usageError struct {
	usage string
	err   error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func newUsageError(cmd *cobra.Command, err error) error {
	return &usageError{
		usage: "Usage: " + cmd.UseLine(),
		err:   err,
	}
}

// rootCmd represents the root command
type rootCmd struct {
	globalFlags *flags.GlobalFlags
	logger      *logrus.Logger

	newHelmClient helmClientFactory
}

func newRootCommand(logger *logrus.Logger, newHelmClient helmClientFactory) *cobra.Command {
	c := &rootCmd{
		logger:        logger,
		newHelmClient: newHelmClient,
	}

	rootCmd := &cobra.Command{
		Use:               "helm-installer <chart_directory> <release_name>",
		Version:           version.GetVersion(),
		Short:             "helm-installer installs a helm chart as a named release.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              validateArgs,
		PersistentPreRunE: c.preRun,
		RunE:              c.run,
		Long: `
helm-installer installs the chart found in <chart_directory> as the release
<release_name> by running:

    helm install <release_name> <chart_directory>

The exit code of helm is returned when the installation fails.

A chart directory or release name starting with "-" must follow "--":

    helm-installer [flags] -- <chart_directory> <release_name>
`,
	}

	c.globalFlags = flags.SetGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(cmd, err)
	})
	return rootCmd
}

func buildRootCommand(logger *logrus.Logger, newHelmClient helmClientFactory) *cobra.Command {
	rootCmd := newRootCommand(logger, newHelmClient)
	rootCmd.SetVersionTemplate("helm-installer version: {{.Version}}\n")
	return rootCmd
}

// validateArgs requires exactly a chart directory and a release name.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return newUsageError(cmd, fmt.Errorf("accepts 2 arg(s), received %d", len(args)))
	}
	return nil
}

func (c *rootCmd) preRun(_ *cobra.Command, _ []string) error {
	c.globalFlags.GetFlagValuesFromEnvVar(c.logger)

	cfg, err := config.Load(c.globalFlags.ConfigFile, c.globalFlags.ConfigRequired())
	if err != nil {
		return err
	}
	c.globalFlags.ApplyConfig(cfg)

	if err := c.globalFlags.ValidateGlobalFlags(); err != nil {
		return err
	}
	return log.Apply(c.logger, c.globalFlags.LogLevel, c.globalFlags.LogFormatter)
}

// run executes the install
func (c *rootCmd) run(cmd *cobra.Command, args []string) error {
	chartDir, releaseName := args[0], args[1]
	if c.globalFlags.Namespace != "" {
		c.logger.Debug("Using Namespace: ", c.globalFlags.Namespace)
	}
	if c.globalFlags.KubeContext != "" {
		c.logger.Debug("using kubeconfig context: ", c.globalFlags.KubeContext)
	}

	helmClient, err := c.newHelmClient(c.logger, helm.Options{
		HelmBinary:  c.globalFlags.HelmBinary,
		Kubeconfig:  c.globalFlags.Kubeconfig,
		KubeContext: c.globalFlags.KubeContext,
	})
	if err != nil {
		return fmt.Errorf("install: failed to create helm client: %w", err)
	}

	c.logger.Infof("Installing release '%s' from chart '%s'...", releaseName, chartDir)
	err = helmClient.Install(releaseName, chartDir, helm.InstallOptions{
		Namespace:   c.globalFlags.Namespace,
		ValuesFiles: c.globalFlags.ValuesFiles,
		SetArgs:     c.globalFlags.SetArgs,
	})
	if err != nil {
		return fmt.Errorf("install: %w", err)
	}

	// not a log entry, --log-level must not hide it
	fmt.Fprintln(cmd.OutOrStdout(), successMessage)
	return nil
}

// exitCode reports err to the user and maps it to the process exit code.
func exitCode(logger *logrus.Logger, rootCmd *cobra.Command, err error) int {
	if err == nil {
		return 0
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		logger.Debugf("invalid usage: %s", usageErr.err)
		fmt.Fprintln(rootCmd.OutOrStdout(), usageErr.usage)
		return 1
	}

	logger.Errorf("command failed: %s", err)

	var installErr *helm.InstallError
	if errors.As(err, &installErr) && installErr.ExitCode > 0 {
		return installErr.ExitCode
	}
	return 1
}

// Execute runs helm-installer with the process arguments and exits.
func Execute() {
	logger := log.GetLogger()
	rootCmd := buildRootCommand(logger, helm.NewHelmClient)
	os.Exit(exitCode(logger, rootCmd, rootCmd.Execute()))
}
