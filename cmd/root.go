package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ValentinKolb/etcdc/cmd/auth"
	"github.com/ValentinKolb/etcdc/cmd/kv"
	"github.com/ValentinKolb/etcdc/cmd/members"
	"github.com/ValentinKolb/etcdc/cmd/stats"
	"github.com/ValentinKolb/etcdc/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "etcdc",
		Short: "client for etcd clusters",
		Long: fmt.Sprintf(`etcdc (v%s)

A command line client for etcd clusters speaking the v2 HTTP API,
with sequential failover across the configured endpoints.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of etcdc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("etcdc v%s\n", Version)
		},
	}

	healthCmd = &cobra.Command{
		Use:   "health",
		Short: "Query the health of every cluster member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.BindCommandFlags(cmd); err != nil {
				return err
			}
			c, err := util.NewClient()
			if err != nil {
				return err
			}
			for result := range c.Health() {
				if result.Err != nil {
					fmt.Printf("unreachable: %v\n", result.Err)
					continue
				}
				fmt.Printf("healthy=%s\n", result.Response.Data.Health)
			}
			return nil
		},
	}

	versionsCmd = &cobra.Command{
		Use:   "versions",
		Short: "Query the server version of every cluster member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.BindCommandFlags(cmd); err != nil {
				return err
			}
			c, err := util.NewClient()
			if err != nil {
				return err
			}
			for result := range c.Versions() {
				if result.Err != nil {
					fmt.Printf("unreachable: %v\n", result.Err)
					continue
				}
				data, _ := json.Marshal(result.Response.Data)
				fmt.Println(string(data))
			}
			return nil
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(members.MemberCommands)
	RootCmd.AddCommand(stats.StatsCommands)
	RootCmd.AddCommand(auth.AuthCommands)
	RootCmd.AddCommand(healthCmd)
	RootCmd.AddCommand(versionsCmd)
	RootCmd.AddCommand(versionCmd)

	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add connection flags to the commands that talk to the cluster
	util.SetupClientFlags(healthCmd)
	util.SetupClientFlags(versionsCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
