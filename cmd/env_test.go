// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> config -> loader -> validators -> reporter -> exit status.
// The binary is built once and run in a temp working directory with HOME
// pointed at a temp directory, so neither the user's config nor their audit
// log is touched.
//
// Exit status is part of the contract, which is why these tests run the real
// binary rather than calling rootCmd in-process: Execute calls os.Exit.

package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the datalint binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "datalint-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "datalint"
		if os.PathSeparator == '\\' {
			binaryName = "datalint.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // working directory
	home   string // HOME for the child process
	binary string
}

// newTestEnv creates a temporary working directory and home directory.
// No data files exist until writeData is called.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// writeData writes categories.json and links.json under dir/data.
func (e *testEnv) writeData(categories, links string) string {
	e.t.Helper()
	dataDir := filepath.Join(e.dir, "data")
	e.writeFile(filepath.Join(dataDir, "categories.json"), categories)
	e.writeFile(filepath.Join(dataDir, "links.json"), links)
	return dataDir
}

func (e *testEnv) writeFile(path, content string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
}

// run executes datalint with the given args and returns combined output.
// Fails the test if the command exits non-zero.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("datalint %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes datalint and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// exitCode runs datalint and returns combined output and the exit status.
func (e *testEnv) exitCode(args ...string) (string, int) {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err == nil {
		return out, 0
	}
	var exitErr *exec.ExitError
	require.True(e.t, errors.As(err, &exitErr), "datalint %v: %v", args, err)
	return out, exitErr.ExitCode()
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// Fixtures shared by the CLI tests.
const (
	validCategories = `{"categories":[{"id":"1","name":"Tools","slug":"tools","description":"Useful tools","order":1,"status":"approved"}]}`
	validLinks      = `{"links":[{"id":"example-link","title":"Example","url":"https://example.com","categories":["tools"],"status":"approved"}]}`

	danglingLinks = `{"links":[{"id":"example-link","title":"Example","url":"https://example.com","categories":["missing-slug"],"status":"approved"}]}`
)
