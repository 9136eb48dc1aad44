package integrationtests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/axisdefaults/internal/app"
	"github.com/vk/axisdefaults/internal/config"
	"github.com/vk/axisdefaults/internal/datafile"
	"github.com/vk/axisdefaults/internal/layout"
	"github.com/vk/axisdefaults/internal/testutil"
)

// harnessResult holds the outcomes of one resolve run.
type harnessResult struct {
	Output    string
	LogOutput string
	Warnings  []string
	Result    *layout.Result
	Err       error
}

// runResolve writes files into a temporary tree, points a debug-logging app
// at the paths given relative to it and runs a resolve.
func runResolve(t *testing.T, files map[string]string, cfg app.Config, paths ...string) *harnessResult {
	t.Helper()

	root := testutil.WriteFiles(t, files)
	for _, p := range paths {
		cfg.InputPaths = append(cfg.InputPaths, filepath.Join(root, p))
	}
	if len(paths) == 0 {
		cfg.InputPaths = []string{root}
	}
	cfg.LogLevel = "debug"
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	warner := &testutil.CollectingWarner{}
	res, runErr := app.NewApp(out, logs, appConfig, nil).WithWarner(warner).Resolve(context.Background())

	if os.Getenv("AXISDEFAULTS_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}
	return &harnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Warnings:  warner.Messages(),
		Result:    res,
		Err:       runErr,
	}
}

// decodeOutput reads a resolved JSON document back into a model.
func decodeOutput(t *testing.T, out string) *config.Model {
	t.Helper()
	m, _, err := datafile.DecodeJSON([]byte(out), "resolved.json")
	require.NoError(t, err, out)
	return m
}
