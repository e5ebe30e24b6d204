package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// Help and version short-circuit before cobra's initializers run, so these
// tests never touch config files on disk.

func execute(t *testing.T, args ...string) string {
	t.Helper()
	// rootCmd is shared across tests; flag values set by a previous Execute
	// (e.g. --help) persist, so restore defaults to mimic a fresh process.
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		}
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRoot_Help(t *testing.T) {
	out := execute(t, "--help")
	require.Contains(t, out, "eventide")
	require.Contains(t, out, "--tick")
	require.Contains(t, out, "--watch")
	require.Contains(t, out, "--save-watch")
	require.Contains(t, out, "--no-input")
	require.Contains(t, out, "--debug")
}

func TestRoot_Version(t *testing.T) {
	SetVersion("1.2.3-test")
	out := execute(t, "--version")
	require.Contains(t, out, "1.2.3-test")
}

func TestRoot_FlagsRegistered(t *testing.T) {
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	for _, name := range []string{"tick", "timeout", "watch", "save-watch", "no-input", "debug"} {
		require.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
}