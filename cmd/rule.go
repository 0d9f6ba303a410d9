package cmd

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/notargets/spectral/quadrature"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// RuleInput is a yaml request for a quadrature rule, an alternative to
// passing the flags individually.
type RuleInput struct {
	Family string  `yaml:"Family"`
	Np     int     `yaml:"Np"`
	Alpha  float64 `yaml:"Alpha"`
	Beta   float64 `yaml:"Beta"`
}

func (ri *RuleInput) Parse(data []byte) error {
	return yaml.Unmarshal(data, ri)
}

// RuleOutput is the yaml form of a quadrature rule.
type RuleOutput struct {
	Family  string    `yaml:"Family"`
	Np      int       `yaml:"Np"`
	Alpha   float64   `yaml:"Alpha"`
	Beta    float64   `yaml:"Beta"`
	Points  []float64 `yaml:"Points"`
	Weights []float64 `yaml:"Weights"`
}

var ruleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Quadrature nodes and weights",
	Long: `
Computes the nodes and weights of a Gauss type quadrature rule under the
Jacobi weight (1-x)^alpha (1+x)^beta,

spectral rule -f lobatto -n 4 `,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, np, alpha, beta, err := familyArgs(cmd)
		if err != nil {
			return err
		}
		if inFile, _ := cmd.Flags().GetString("input"); inFile != "" {
			data, err := os.ReadFile(inFile)
			if err != nil {
				return fmt.Errorf("unable to read input file %s: %w", inFile, err)
			}
			var ri RuleInput
			if err = ri.Parse(data); err != nil {
				return fmt.Errorf("unable to parse input file %s: %w", inFile, err)
			}
			if f, err = quadrature.ParseFamily(ri.Family); err != nil {
				return err
			}
			np, alpha, beta = ri.Np, ri.Alpha, ri.Beta
		}
		p := kernelParams(cmd)
		if np < 1 || np > p.MaxPoint {
			return fmt.Errorf("np must be between 1 and %d, have %d", p.MaxPoint, np)
		}
		z, w := quadrature.PointsWeights(p, f, np, alpha, beta)
		if asYaml, _ := cmd.Flags().GetBool("yaml"); asYaml {
			out := RuleOutput{
				Family:  f.String(),
				Np:      np,
				Alpha:   alpha,
				Beta:    beta,
				Points:  z.DataP(),
				Weights: w.DataP(),
			}
			data, err := yaml.Marshal(out)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		}
		fmt.Printf("z = \n%v\n", mat.Formatted(z, mat.Squeeze()))
		fmt.Printf("w = \n%v\n", mat.Formatted(w, mat.Squeeze()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ruleCmd)
	familyFlags(ruleCmd)
	ruleCmd.Flags().Bool("yaml", false, "emit the rule as yaml")
	ruleCmd.Flags().StringP("input", "i", "", "yaml file specifying the rule, overrides the family flags")
}
