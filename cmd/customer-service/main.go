package main

import (
	"log/slog"
	"os"

	"customer-service/cmd/customer-service/cmds"
)

func main() {
	root := cmds.NewRootCommand()

	root.AddCommand(
		cmds.GetServeCommand(),
		cmds.GetMigrateCommand(),
	)

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
