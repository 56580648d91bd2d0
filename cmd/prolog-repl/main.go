// Package main is a scriptable batch driver over pkg/prolog.Session. It
// is a demonstration harness, not the curses-style interactive front-end
// described as out of scope: after each solution it reads one line from
// stdin and continues only if that line starts with ';'. It prints nothing
// beyond Environment.String, a final "No" once the search is exhausted,
// and resolver trace lines.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/prolog-machine/pkg/prolog"
)

var verbose bool

// sampleDatabase is the original's worked example, restored as fixture
// data for this demo rather than as a shipped "preloaded" product
// concern: p(X,Y) :- q(X,Z), r(Z,Y).  q(a,b).  r(b,c).
func sampleDatabase() prolog.Database {
	x, y, z := prolog.Var{Name: "X"}, prolog.Var{Name: "Y"}, prolog.Var{Name: "Z"}
	return prolog.Database{
		{
			Head: prolog.NewCompound("p", x, y),
			Body: prolog.Clause{
				prolog.NewCompound("q", x, z),
				prolog.NewCompound("r", z, y),
			},
		},
		{Head: prolog.NewCompound("q", prolog.Const("a"), prolog.Const("b"))},
		{Head: prolog.NewCompound("r", prolog.Const("b"), prolog.Const("c"))},
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prolog-repl",
		Short: "Drive the resolution engine against the sample database",
		RunE:  run,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log resolver trace events")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.TraceLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	prolog.SetLogger(logger)

	u, v := prolog.Var{Name: "U"}, prolog.Var{Name: "V"}
	goal := prolog.Clause{prolog.NewCompound("p", u, v)}

	sess := prolog.NewSession(sampleDatabase(), goal)
	reader := bufio.NewReader(os.Stdin)

	for {
		env, ok := sess.Next()
		if !ok {
			fmt.Println("No")
			return nil
		}
		fmt.Println(env.String())

		line, _ := reader.ReadString('\n')
		if len(line) == 0 || line[0] != ';' {
			return nil
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
