package main

import (
	"fmt"
	"os"

	"github.com/sheikh-saqib/txn-ledger-replay/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
