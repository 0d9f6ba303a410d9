package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/notargets/spectral/jacobi"
	"github.com/notargets/spectral/quadrature"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "spectral",
	Short: "Gauss type quadrature, differentiation and interpolation operators",
	Long: `
Generates the pointwise operators spectral element solvers are built on:
Jacobi polynomial Gauss / Gauss-Radau / Gauss-Lobatto quadrature nodes and
weights, differentiation matrices and Lagrange interpolation matrices.

spectral `,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.spectral.yaml)")
	def := jacobi.DefaultParams()
	rootCmd.PersistentFlags().Float64("tolerance", def.Tolerance, "convergence tolerance for the iterative kernels")
	rootCmd.PersistentFlags().Int("maxIteration", def.MaxIteration, "iteration cap for the Newton and QL kernels")
	rootCmd.PersistentFlags().Int("maxPoint", def.MaxPoint, "largest supported point count")
	_ = viper.BindPFlag("tolerance", rootCmd.PersistentFlags().Lookup("tolerance"))
	_ = viper.BindPFlag("maxIteration", rootCmd.PersistentFlags().Lookup("maxIteration"))
	_ = viper.BindPFlag("maxPoint", rootCmd.PersistentFlags().Lookup("maxPoint"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".spectral")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// kernelParams assembles the numerical controls from flags / config file,
// falling back to the package defaults.
func kernelParams(cmd *cobra.Command) (p jacobi.Params) {
	p = jacobi.DefaultParams()
	if v := viper.GetFloat64("tolerance"); v > 0 {
		p.Tolerance = v
	}
	if v := viper.GetInt("maxIteration"); v > 0 {
		p.MaxIteration = v
	}
	if v := viper.GetInt("maxPoint"); v > 0 {
		p.MaxPoint = v
	}
	if eigen, _ := cmd.Flags().GetBool("eigen"); eigen {
		p.ZeroMethod = jacobi.TriDiagonal
	}
	return
}

// familyFlags registers the flags shared by every operator command.
func familyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("family", "f", "lobatto", "quadrature family: gauss, radauleft, radauright, lobatto")
	cmd.Flags().IntP("np", "n", 4, "number of points")
	cmd.Flags().Float64P("alpha", "a", 0, "Jacobi weight exponent alpha")
	cmd.Flags().Float64P("beta", "b", 0, "Jacobi weight exponent beta")
	cmd.Flags().Bool("eigen", false, "find polynomial zeros with the tridiagonal eigenvalue solver instead of deflated Newton")
}

func familyArgs(cmd *cobra.Command) (f quadrature.Family, np int, alpha, beta float64, err error) {
	famName, _ := cmd.Flags().GetString("family")
	if f, err = quadrature.ParseFamily(famName); err != nil {
		return
	}
	np, _ = cmd.Flags().GetInt("np")
	alpha, _ = cmd.Flags().GetFloat64("alpha")
	beta, _ = cmd.Flags().GetFloat64("beta")
	return
}
