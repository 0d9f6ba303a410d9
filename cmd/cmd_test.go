package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	// quadrature rule as yaml
	{
		rootCmd.SetArgs([]string{"rule", "-f", "gauss", "-n", "3", "--yaml"})
		assert.NoError(t, rootCmd.Execute())
	}
	// differentiation matrix with the eigenvalue zero finder
	{
		rootCmd.SetArgs([]string{"dmatrix", "-f", "lobatto", "-n", "5", "--eigen"})
		assert.NoError(t, rootCmd.Execute())
	}
	// interpolation to uniform targets
	{
		rootCmd.SetArgs([]string{"interp", "-f", "radauleft", "-n", "4", "-m", "7"})
		assert.NoError(t, rootCmd.Execute())
	}
	// unknown family is a user error
	{
		rootCmd.SetArgs([]string{"rule", "-f", "chebyshev"})
		assert.Error(t, rootCmd.Execute())
	}
}
