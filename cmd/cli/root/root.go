package root

import (
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:           "todo",
	Short:         "Todo API CLI",
	Long:          "Command line interface for registering users and managing todos through the Todo API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// GetRoot returns the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
