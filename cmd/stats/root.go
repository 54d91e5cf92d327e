package stats

import (
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/etcdc/client"
	"github.com/ValentinKolb/etcdc/cmd/util"
	"github.com/ValentinKolb/etcdc/stats"
	"github.com/spf13/cobra"
)

var (
	c *client.Client

	// StatsCommands represents the stats command group
	StatsCommands = &cobra.Command{
		Use:               "stats",
		Short:             "Query cluster statistics",
		PersistentPreRunE: setupClient,
	}

	leaderCmd = &cobra.Command{
		Use:   "leader",
		Short: "Statistics about the cluster leader and its followers",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := stats.Leader(c)
			if err != nil {
				return err
			}
			return printJSON(resp.Data)
		},
	}

	selfCmd = &cobra.Command{
		Use:   "self",
		Short: "Per-member statistics from every configured endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			for result := range stats.Self(c) {
				if result.Err != nil {
					fmt.Printf("unreachable: %v\n", result.Err)
					continue
				}
				if err := printJSON(result.Response.Data); err != nil {
					return err
				}
			}
			return nil
		},
	}

	storeCmd = &cobra.Command{
		Use:   "store",
		Short: "Per-member store operation counts from every configured endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			for result := range stats.Store(c) {
				if result.Err != nil {
					fmt.Printf("unreachable: %v\n", result.Err)
					continue
				}
				if err := printJSON(result.Response.Data); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	// Add common connection flags to the stats command
	util.SetupClientFlags(StatsCommands)

	// Add subcommands
	StatsCommands.AddCommand(leaderCmd)
	StatsCommands.AddCommand(selfCmd)
	StatsCommands.AddCommand(storeCmd)
}

// setupClient initializes the shared client
func setupClient(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	c, err = util.NewClient()
	return err
}

// printJSON prints a payload as indented JSON
func printJSON(payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
