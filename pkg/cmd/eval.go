package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kyouko-taiga/go-stew/pkg/stew"
	"github.com/kyouko-taiga/go-stew/pkg/stew/eval"
)

// evalCmd represents the eval command.
var evalCmd = &cobra.Command{
	Use:   "eval <operation> <args...>",
	Short: "Evaluate an operation call against the built-in demo specification.",
	Long: `Evaluate an operation call against the built-in demo specification.

<operation> is a qualified name such as Nat.add or Bool.and. Each argument
is a literal in the corresponding parameter's sort: a non-negative integer
for Nat, or true/false for Bool.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runEvalCmd(cmd, args)
	},
}

func runEvalCmd(cmd *cobra.Command, args []string) {
	spec, err := loadDemoSpec(GetFlag(cmd, "verbose"))
	if err != nil {
		fail(err)
	}

	op, ok := spec.Registry.LookupOperation(args[0])
	if !ok {
		fail(stew.NewArgumentError("no such operation: %s", args[0]))
	}

	rest := args[1:]
	if uint(len(rest)) != op.Arity() {
		fail(stew.NewArgumentError("%s takes %d argument(s) but %d were given", op.Name, op.Arity(), len(rest)))
	}

	terms := make([]stew.Term, len(rest))

	for i, raw := range rest {
		t, err := spec.parseArg(op.ParameterSort(uint(i)).Name, raw)
		if err != nil {
			fail(err)
		}

		terms[i] = t
	}

	result, err := eval.New(log.StandardLogger()).Evaluate(op, terms)
	if err != nil {
		fail(err)
	}

	fmt.Println(spec.render(result))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
