package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "coursectl v"+version+"\n", out.String())
}

func TestSeedFlags(t *testing.T) {
	for _, name := range []string{"owner", "password", "learners", "lessons"} {
		assert.NotNil(t, seedCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "12", seedCmd.Flags().Lookup("learners").DefValue)
}
