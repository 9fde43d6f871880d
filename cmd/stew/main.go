// Command stew is the CLI front-end around the stew term-rewriting engine.
package main

import (
	"github.com/kyouko-taiga/go-stew/pkg/cmd"
)

func main() {
	cmd.Execute()
}
