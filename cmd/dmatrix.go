package cmd

import (
	"fmt"

	"github.com/notargets/spectral/quadrature"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var dmatrixCmd = &cobra.Command{
	Use:   "dmatrix",
	Short: "Differentiation matrix on a family's node set",
	Long: `
Computes the dense differentiation matrix whose row i holds the derivative
weights of the Lagrange basis at node i of the chosen quadrature family,

spectral dmatrix -f lobatto -n 8 `,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, np, alpha, beta, err := familyArgs(cmd)
		if err != nil {
			return err
		}
		p := kernelParams(cmd)
		if np < 1 || np > p.MaxPoint {
			return fmt.Errorf("np must be between 1 and %d, have %d", p.MaxPoint, np)
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		z, _ := quadrature.PointsWeights(p, f, np, alpha, beta)
		D := quadrature.DerivativeMatrix(p, f, z, alpha, beta)
		fmt.Printf("z = \n%v\n", mat.Formatted(z, mat.Squeeze()))
		fmt.Printf("D = \n%v\n", mat.Formatted(D, mat.Squeeze()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dmatrixCmd)
	familyFlags(dmatrixCmd)
	dmatrixCmd.Flags().Bool("profile", false, "write a CPU profile for the matrix construction")
}
