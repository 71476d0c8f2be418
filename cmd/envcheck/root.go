package envcheck

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/envsanity/envcheck/internal/format"
	"github.com/envsanity/envcheck/internal/report"
	"github.com/envsanity/envcheck/internal/resolver"
	"github.com/envsanity/envcheck/internal/spec"
)

const defaultSpecFile = "env.spec"

var rootCmd = &cobra.Command{
	Use:   "envcheck",
	Short: "Validate required environment variables before a process starts",
	Long: `envcheck reads a specification of required environment variables and
verifies that every one of them is present, non-empty, and conforms to its
declared type. Values come from an optional .env file in the working
directory overlaid with the process environment (process environment wins).

Intended as a CI/CD gate: exit code 0 means every check passed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		rep, err := runCheck(viper.GetString("spec"), viper.GetString("format"), os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		if !rep.AllChecksPassed {
			os.Exit(1)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("spec", defaultSpecFile, "specification file listing required variables")
	rootCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	// ENVCHECK_SPEC / ENVCHECK_FORMAT override the flag defaults;
	// explicitly passed flags still win.
	viper.SetEnvPrefix("ENVCHECK")
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlag("spec", rootCmd.Flags().Lookup("spec")))
	cobra.CheckErr(viper.BindPFlag("format", rootCmd.Flags().Lookup("format")))
}

// runCheck runs the validation pipeline and writes the rendered report to
// out. Fatal load errors return before any environment resolution; a
// failing report is not an error here, the caller derives the exit code.
func runCheck(specPath, formatName string, out io.Writer) (*report.Report, error) {
	formatter, err := format.New(formatName)
	if err != nil {
		return nil, err
	}

	s, err := spec.Load(specPath)
	if err != nil {
		return nil, err
	}

	env := resolver.Resolve(resolver.DotenvFileName, resolver.OSEnv{})
	rep := report.Build(s, env)

	rendered, err := formatter.Format(rep)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	fmt.Fprintln(out, string(rendered))
	return rep, nil
}
