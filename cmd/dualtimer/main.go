package main

import (
	"fmt"
	"os"

	"github.com/andy/dualtimer/internal/cli"
)

func main() {
	// The app is built lazily by the root command, so help and flag errors
	// never touch the keyring or the database
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
