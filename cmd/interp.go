package cmd

import (
	"fmt"

	"github.com/notargets/spectral/quadrature"
	"github.com/notargets/spectral/utils"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var interpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Interpolation matrix from family nodes to uniform points",
	Long: `
Computes the dense operator mapping samples on the family's quadrature
nodes to a uniformly spaced target point set on [-1,1],

spectral interp -f gauss -n 5 -m 11 `,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, np, alpha, beta, err := familyArgs(cmd)
		if err != nil {
			return err
		}
		mz, _ := cmd.Flags().GetInt("targets")
		p := kernelParams(cmd)
		if np < 1 || np > p.MaxPoint {
			return fmt.Errorf("np must be between 1 and %d, have %d", p.MaxPoint, np)
		}
		if mz < 2 {
			return fmt.Errorf("need at least 2 target points, have %d", mz)
		}
		z, _ := quadrature.PointsWeights(p, f, np, alpha, beta)
		zm := utils.NewVector(mz)
		dataZm := zm.DataP()
		for i := range dataZm {
			dataZm[i] = -1. + 2.*float64(i)/float64(mz-1)
		}
		I := quadrature.InterpMatrix(p, f, z, zm, alpha, beta)
		fmt.Printf("I = \n%v\n", mat.Formatted(I, mat.Squeeze()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interpCmd)
	familyFlags(interpCmd)
	interpCmd.Flags().IntP("targets", "m", 11, "number of uniform target points")
}
