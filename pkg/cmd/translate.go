package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyouko-taiga/go-stew/pkg/stew/translate"
)

// translateCmd represents the translate command.
var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Render the built-in demo specification's rules in the external translator format.",
	Long: `Render every operation of the built-in demo specification as
"guard => head(p1,...,pn) = rhs" text, linearizing any non-linear
right-hand side via an auxiliary copy operation (§6).`,
	Run: func(cmd *cobra.Command, args []string) {
		runTranslateCmd(cmd)
	},
}

func runTranslateCmd(cmd *cobra.Command) {
	spec, err := loadDemoSpec(GetFlag(cmd, "verbose"))
	if err != nil {
		fail(err)
	}

	text, err := translate.Registry(spec.Registry)
	if err != nil {
		fail(err)
	}

	fmt.Print(text)
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
