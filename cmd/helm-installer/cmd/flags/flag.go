// Package flags provides a way to manage global flags for the application.
package flags

import (
	"fmt"
	"os"

	"github.com/kube-tarian/helm-installer/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	defaultHelmBinary   = "helm"
	defaultLogLevel     = "info"
	defaultLogFormatter = "text"

	helmBinaryEnv   = "HELM_INSTALLER_HELM_BINARY"
	namespaceEnv    = "HELM_INSTALLER_NAMESPACE"
	kubeconfigEnv   = "HELM_INSTALLER_KUBECONFIG"
	kubeContextEnv  = "HELM_INSTALLER_KUBE_CONTEXT"
	logLevelEnv     = "HELM_INSTALLER_LOG_LEVEL"
	logFormatterEnv = "HELM_INSTALLER_LOG_FORMATTER"
	configEnv       = "HELM_INSTALLER_CONFIG"
)

// GlobalFlags holds the global flag values for the application.
type GlobalFlags struct {
	LogLevel     string
	LogFormatter string
	ConfigFile   string

	HelmBinary  string
	Namespace   string
	Kubeconfig  string
	KubeContext string
	ValuesFiles []string
	SetArgs     []string

	flags *pflag.FlagSet
}

// SetGlobalFlags initializes and binds global flags using the provided FlagSet.
// It returns a pointer to the initialized GlobalFlags struct.
func SetGlobalFlags(flags *pflag.FlagSet) *GlobalFlags {
	globalFlags := &GlobalFlags{flags: flags}

	flags.StringVarP(&globalFlags.LogLevel, "log-level", "l", defaultLogLevel, "valid log levels: debug, info(default), warn/warning, error, fatal")
	flags.StringVarP(&globalFlags.LogFormatter, "log-formatter", "e", defaultLogFormatter, "valid log formatters: json, text(default)")
	flags.StringVar(&globalFlags.ConfigFile, "config", config.DefaultPath(), "path to the helm-installer config file")

	flags.StringVar(&globalFlags.HelmBinary, "helm-binary", defaultHelmBinary, "name or path of the helm binary")
	flags.StringVarP(&globalFlags.Namespace, "namespace", "n", "", "namespace to install the release into")
	flags.StringVar(&globalFlags.Kubeconfig, "kubeconfig", "", "path to the kubeconfig file passed to helm")
	flags.StringVar(&globalFlags.KubeContext, "kube-context", "", "name of the kubeconfig context passed to helm")
	flags.StringSliceVarP(&globalFlags.ValuesFiles, "values", "f", nil, "helm values file(s), can be repeated")
	flags.StringArrayVar(&globalFlags.SetArgs, "set", nil, "helm --set values, can be repeated")
	return globalFlags
}

// ValidateGlobalFlags validates the global flags used in the application.
func (globalFlags *GlobalFlags) ValidateGlobalFlags() error {
	// Define a set of valid log levels.
	validLogLevels := map[string]bool{
		"debug":   true,
		"info":    true,
		"warn":    true,
		"warning": true,
		"error":   true,
		"fatal":   true,
	}

	// Define a set of valid log formatters.
	validLogFormatters := map[string]bool{
		"json": true,
		"text": true,
	}

	if !validLogLevels[globalFlags.LogLevel] {
		return fmt.Errorf("invalid log level: %s", globalFlags.LogLevel)
	}

	if !validLogFormatters[globalFlags.LogFormatter] {
		return fmt.Errorf("invalid log formatter: %s", globalFlags.LogFormatter)
	}

	if globalFlags.HelmBinary == "" {
		return fmt.Errorf("helm binary must not be empty")
	}

	return nil
}

// GetFlagValuesFromEnvVar reads the environment variables for the global
// flags that were not set on the command line.
func (globalFlags *GlobalFlags) GetFlagValuesFromEnvVar(logger *logrus.Logger) {
	for _, f := range []struct {
		flag  string
		env   string
		value *string
	}{
		{"config", configEnv, &globalFlags.ConfigFile},
		{"helm-binary", helmBinaryEnv, &globalFlags.HelmBinary},
		{"namespace", namespaceEnv, &globalFlags.Namespace},
		{"kubeconfig", kubeconfigEnv, &globalFlags.Kubeconfig},
		{"kube-context", kubeContextEnv, &globalFlags.KubeContext},
		{"log-level", logLevelEnv, &globalFlags.LogLevel},
		{"log-formatter", logFormatterEnv, &globalFlags.LogFormatter},
	} {
		if globalFlags.changed(f.flag) {
			continue
		}
		if v := os.Getenv(f.env); v != "" {
			logger.Debugf("Setting %s from environment variable, %s=%s", f.flag, f.env, v)
			*f.value = v
		}
	}
}

// ApplyConfig copies values from the config file into every flag that was
// neither set on the command line nor through its environment variable.
func (globalFlags *GlobalFlags) ApplyConfig(cfg *config.Config) {
	for _, f := range []struct {
		flag  string
		env   string
		src   string
		value *string
	}{
		{"helm-binary", helmBinaryEnv, cfg.HelmBinary, &globalFlags.HelmBinary},
		{"namespace", namespaceEnv, cfg.Namespace, &globalFlags.Namespace},
		{"kubeconfig", kubeconfigEnv, cfg.Kubeconfig, &globalFlags.Kubeconfig},
		{"kube-context", kubeContextEnv, cfg.KubeContext, &globalFlags.KubeContext},
		{"log-level", logLevelEnv, cfg.LogLevel, &globalFlags.LogLevel},
		{"log-formatter", logFormatterEnv, cfg.LogFormatter, &globalFlags.LogFormatter},
	} {
		if f.src == "" || globalFlags.changed(f.flag) || os.Getenv(f.env) != "" {
			continue
		}
		*f.value = f.src
	}

	if len(cfg.Values) > 0 && !globalFlags.changed("values") {
		globalFlags.ValuesFiles = cfg.Values
	}
}

// ConfigRequired reports whether the config file was asked for explicitly,
// in which case it must exist.
func (globalFlags *GlobalFlags) ConfigRequired() bool {
	return globalFlags.changed("config") || os.Getenv(configEnv) != ""
}

func (globalFlags *GlobalFlags) changed(name string) bool {
	return globalFlags.flags != nil && globalFlags.flags.Changed(name)
}
