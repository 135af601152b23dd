package cmd

import (
	"context"
	"testing"

	"devserve/core/server"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	registerFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestApplyFlags(t *testing.T) {
	base := server.Config{Port: "8000", Root: ".", OpenBrowser: true}

	t.Run("NoFlags", func(t *testing.T) {
		cfg := base
		applyFlags(newFlagCmd(t), &cfg)
		assert.Equal(t, base, cfg)
	})

	t.Run("AllFlags", func(t *testing.T) {
		cfg := base
		applyFlags(newFlagCmd(t, "-p", "9000", "--root", "public", "--no-browser"), &cfg)
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, "public", cfg.Root)
		assert.False(t, cfg.OpenBrowser)
	})
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	assert.Error(t, RootCmd.Args(RootCmd, []string{"extra"}))
	assert.NoError(t, RootCmd.Args(RootCmd, nil))
}

// clearServerEnv blanks the variables runStart reads so defaults and flags apply.
func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_HOST", "SERVER_PORT", "SERVER_ROOT", "SERVER_SOURCE",
		"SERVER_INDEX", "SERVER_OPEN_BROWSER", "SERVER_MIME_TYPES",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func startArgs(t *testing.T) []string {
	return []string{"--no-browser", "-p", "0", "--root", t.TempDir()}
}

func TestRunStart_ReturnsNilWhenCancelled(t *testing.T) {
	clearServerEnv(t)

	c := newFlagCmd(t, startArgs(t)...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.SetContext(ctx)

	assert.NoError(t, runStart(c, nil))
}

func TestRunStart_InvalidRoot(t *testing.T) {
	clearServerEnv(t)

	c := newFlagCmd(t, "--no-browser", "-p", "0", "--root", "/definitely/not/here")
	c.SetContext(context.Background())

	assert.Error(t, runStart(c, nil))
}
