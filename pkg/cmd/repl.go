package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kyouko-taiga/go-stew/pkg/stew"
	"github.com/kyouko-taiga/go-stew/pkg/stew/eval"
)

// replCmd represents the repl command.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively evaluate operation calls against the built-in demo specification.",
	Long: `Read "operation arg1 arg2 ..." lines from standard input and print
each call's normal form, one per line, until EOF.`,
	Run: func(cmd *cobra.Command, args []string) {
		runReplCmd(cmd)
	},
}

func runReplCmd(cmd *cobra.Command) {
	spec, err := loadDemoSpec(GetFlag(cmd, "verbose"))
	if err != nil {
		fail(err)
	}

	evaluator := eval.New(log.StandardLogger())
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			fmt.Print("stew> ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)

		result, err := evalLine(spec, evaluator, fields)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}

		fmt.Println(result)
	}
}

func evalLine(spec *demoSpec, evaluator *eval.Evaluator, fields []string) (string, error) {
	if len(fields) == 0 {
		return "", stew.NewArgumentError("empty input")
	}

	op, ok := spec.Registry.LookupOperation(fields[0])
	if !ok {
		return "", stew.NewArgumentError("no such operation: %s", fields[0])
	}

	rest := fields[1:]
	if uint(len(rest)) != op.Arity() {
		return "", stew.NewArgumentError("%s takes %d argument(s) but %d were given", op.Name, op.Arity(), len(rest))
	}

	terms := make([]stew.Term, len(rest))

	for i, raw := range rest {
		t, err := spec.parseArg(op.ParameterSort(uint(i)).Name, raw)
		if err != nil {
			return "", err
		}

		terms[i] = t
	}

	result, err := evaluator.Evaluate(op, terms)
	if err != nil {
		return "", err
	}

	return spec.render(result), nil
}

func init() {
	rootCmd.AddCommand(replCmd)
}
