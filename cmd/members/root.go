package members

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/etcdc/client"
	"github.com/ValentinKolb/etcdc/cmd/util"
	"github.com/ValentinKolb/etcdc/members"
	"github.com/spf13/cobra"
)

var (
	c *client.Client

	// MemberCommands represents the members command group
	MemberCommands = &cobra.Command{
		Use:               "members",
		Short:             "Manage cluster membership",
		PersistentPreRunE: setupClient,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists all members of the cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := members.List(c)
			if err != nil {
				return err
			}
			for _, member := range resp.Data {
				fmt.Printf("%s: name=%s peerURLs=%s clientURLs=%s\n",
					member.ID, member.Name,
					strings.Join(member.PeerURLs, ","),
					strings.Join(member.ClientURLs, ","))
			}
			return nil
		},
	}

	addCmd = &cobra.Command{
		Use:   "add [peerURL]...",
		Short: "Registers a new member by its peer URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := members.Add(c, args)
			if err != nil {
				return err
			}
			fmt.Printf("added member %s\n", resp.Data.ID)
			return nil
		},
	}

	removeCmd = &cobra.Command{
		Use:   "remove [id]",
		Short: "Removes a member by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := members.Delete(c, args[0]); err != nil {
				return err
			}
			fmt.Println("member removed")
			return nil
		},
	}

	updateCmd = &cobra.Command{
		Use:   "update [id] [peerURL]...",
		Short: "Replaces the peer URLs of a member",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := members.Update(c, args[0], args[1:]); err != nil {
				return err
			}
			fmt.Println("member updated")
			return nil
		},
	}
)

func init() {
	// Add common connection flags to the members command
	util.SetupClientFlags(MemberCommands)

	// Add subcommands
	MemberCommands.AddCommand(listCmd)
	MemberCommands.AddCommand(addCmd)
	MemberCommands.AddCommand(removeCmd)
	MemberCommands.AddCommand(updateCmd)
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
