package auth

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/etcdc/auth"
	"github.com/ValentinKolb/etcdc/client"
	"github.com/ValentinKolb/etcdc/cmd/util"
	"github.com/spf13/cobra"
)

var (
	c *client.Client

	// AuthCommands represents the auth command group
	AuthCommands = &cobra.Command{
		Use:               "auth",
		Short:             "Manage authentication and authorization",
		PersistentPreRunE: setupClient,
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Shows whether the auth system is enabled",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := auth.Status(c)
			if err != nil {
				return err
			}
			fmt.Printf("enabled=%t\n", resp.Data.Enabled)
			return nil
		},
	}

	enableCmd = &cobra.Command{
		Use:   "enable",
		Short: "Enables the auth system",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := auth.Enable(c); err != nil {
				return err
			}
			fmt.Println("auth enabled")
			return nil
		},
	}

	disableCmd = &cobra.Command{
		Use:   "disable",
		Short: "Disables the auth system",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := auth.Disable(c); err != nil {
				return err
			}
			fmt.Println("auth disabled")
			return nil
		},
	}

	userAddCmd = &cobra.Command{
		Use:   "user-add [name] [password]",
		Short: "Creates a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roles, _ := cmd.Flags().GetString("roles")
			user := auth.NewUser{User: args[0], Password: args[1]}
			if roles != "" {
				user.Roles = strings.Split(roles, ",")
			}
			if _, err := auth.CreateUser(c, user); err != nil {
				return err
			}
			fmt.Println("user created")
			return nil
		},
	}

	userListCmd = &cobra.Command{
		Use:   "user-list",
		Short: "Lists all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := auth.ListUsers(c)
			if err != nil {
				return err
			}
			for _, user := range resp.Data {
				fmt.Printf("%s: roles=%s\n", user.User, strings.Join(user.Roles, ","))
			}
			return nil
		},
	}

	userDelCmd = &cobra.Command{
		Use:   "user-del [name]",
		Short: "Deletes a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := auth.DeleteUser(c, args[0]); err != nil {
				return err
			}
			fmt.Println("user deleted")
			return nil
		},
	}

	roleListCmd = &cobra.Command{
		Use:   "role-list",
		Short: "Lists all roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := auth.ListRoles(c)
			if err != nil {
				return err
			}
			for _, role := range resp.Data {
				fmt.Printf("%s: read=%s write=%s\n", role.Role,
					strings.Join(role.Permissions.KV.Read, ","),
					strings.Join(role.Permissions.KV.Write, ","))
			}
			return nil
		},
	}

	roleDelCmd = &cobra.Command{
		Use:   "role-del [name]",
		Short: "Deletes a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := auth.DeleteRole(c, args[0]); err != nil {
				return err
			}
			fmt.Println("role deleted")
			return nil
		},
	}
)

func init() {
	// Add common connection flags to the auth command
	util.SetupClientFlags(AuthCommands)

	// Add flags
	userAddCmd.Flags().String("roles", "", "roles to grant to the new user (comma separated)")

	// Add subcommands
	AuthCommands.AddCommand(statusCmd)
	AuthCommands.AddCommand(enableCmd)
	AuthCommands.AddCommand(disableCmd)
	AuthCommands.AddCommand(userAddCmd)
	AuthCommands.AddCommand(userListCmd)
	AuthCommands.AddCommand(userDelCmd)
	AuthCommands.AddCommand(roleListCmd)
	AuthCommands.AddCommand(roleDelCmd)
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
