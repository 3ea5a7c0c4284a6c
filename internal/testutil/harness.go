package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/app"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/hcl"
)

// HarnessResult holds the outcomes of an end-to-end app run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunAppTest provides a standardized harness for end-to-end tests: it writes
// the given HCL files into a temporary directory, builds an App over them at
// debug log level, runs it, and captures everything it wrote.
func RunAppTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunAppTestWithContext(context.Background(), t, files)
}

// RunAppTestWithContext is RunAppTest with a caller-provided context.
func RunAppTestWithContext(ctx context.Context, t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig, err := app.NewConfig(app.Config{
		PantheonPath: tmpDir,
		LogFormat:    "text",
		LogLevel:     "debug",
	})
	require.NoError(t, err)

	var out SafeBuffer
	pantheonApp := app.NewApp(&out, appConfig, hcl.NewLoader())
	runErr := pantheonApp.Run(ctx, appConfig)

	return &HarnessResult{
		Output: out.String(),
		Err:    runErr,
		App:    pantheonApp,
	}
}
