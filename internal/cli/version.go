// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Заполняются через -ldflags при сборке.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func versionCommand() *cobra.Command {

	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		// без загрузки конфигурации и телеметрии
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("clientgen %s\n", Version)
			cmd.Printf("  Commit:     %s\n", Commit)
			cmd.Printf("  Build Date: %s\n", BuildDate)
			cmd.Printf("  Go Version: %s\n", runtime.Version())
			cmd.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
