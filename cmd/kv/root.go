package kv

import (
	"github.com/ValentinKolb/etcdc/client"
	"github.com/ValentinKolb/etcdc/cmd/util"
	"github.com/spf13/cobra"
)

var (
	c *client.Client

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:               "kv",
		Short:             "Perform key-value store operations",
		PersistentPreRunE: setupClient,
	}
)

func init() {
	// Add common connection flags to the KV command
	util.SetupClientFlags(KeyValueCommands)

	// Add subcommands
	KeyValueCommands.AddCommand(getCmd)
	KeyValueCommands.AddCommand(setCmd)
	KeyValueCommands.AddCommand(createCmd)
	KeyValueCommands.AddCommand(updateCmd)
	KeyValueCommands.AddCommand(delCmd)
	KeyValueCommands.AddCommand(mkdirCmd)
	KeyValueCommands.AddCommand(rmdirCmd)
	KeyValueCommands.AddCommand(perfTestCmd)
}

// setupClient initializes the shared client
func setupClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Create the client
	var err error
	c, err = util.NewClient()
	return err
}
