// Package testing holds helpers shared by the helm-installer tests.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// LogOutputWriter is a writer for log output.
type LogOutputWriter struct {
	// Output is the log output.
	Output *[]byte
}

// Write writes the log output.
func (w *LogOutputWriter) Write(p []byte) (n int, err error) {
	*w.Output = append(*w.Output, p...)
	return len(p), nil
}

// CleanLog cleans the log output.
func CleanLog(input string) string {
	splitLog := strings.Split(input, "msg=")

	input = splitLog[len(splitLog)-1]
	spaceRe := regexp.MustCompile(`\s+`)
	input = spaceRe.ReplaceAllString(input, " ")

	newlineRe := regexp.MustCompile(`\n+`)
	input = newlineRe.ReplaceAllString(input, "\n")
	return strings.TrimSpace(input)
}

// FakeHelm is a shell script standing in for the helm binary.
type FakeHelm struct {
	// Path is the path of the executable script.
	Path string
	// ArgsFile receives the arguments of every invocation, one per line.
	ArgsFile string
}

// Args returns the arguments the fake helm was called with.
func (f *FakeHelm) Args(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(f.ArgsFile)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// WriteFakeHelm writes a fake helm executable into a temporary directory.
// The script records its arguments, prints one line to stdout and exits with
// exitCode; on failure it also prints stderrMsg to stderr.
func WriteFakeHelm(t *testing.T, exitCode int, stderrMsg string) *FakeHelm {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake helm script requires a POSIX shell")
	}

	dir := t.TempDir()
	fake := &FakeHelm{
		Path:     filepath.Join(dir, "helm"),
		ArgsFile: filepath.Join(dir, "args"),
	}

	script := fmt.Sprintf(`#!/bin/sh
for arg in "$@"; do
  echo "$arg" >> %q
done
echo "NAME: $2"
if [ %d -ne 0 ]; then
  echo %q >&2
fi
exit %d
`, fake.ArgsFile, exitCode, stderrMsg, exitCode)

	require.NoError(t, os.WriteFile(fake.Path, []byte(script), 0o755))
	return fake
}
