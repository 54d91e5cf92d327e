package kv

import (
	"fmt"

	"github.com/ValentinKolb/etcdc/kv"
	"github.com/spf13/cobra"
)

var (
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			recursive, _ := cmd.Flags().GetBool("recursive")
			sorted, _ := cmd.Flags().GetBool("sort")
			quorum, _ := cmd.Flags().GetBool("quorum")

			resp, err := kv.Get(c, key, kv.GetOptions{Recursive: recursive, Sort: sorted, Quorum: quorum})
			if err != nil {
				return err
			}
			printNode(resp.Data.Node, "")
			return nil
		},
	}
	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := kv.Set(c, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("set successfully")
			return nil
		},
	}
	createCmd = &cobra.Command{
		Use:   "create [key] [value]",
		Short: "Sets the value for a key that must not exist yet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := kv.Create(c, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("created successfully")
			return nil
		},
	}
	updateCmd = &cobra.Command{
		Use:   "update [key] [value]",
		Short: "Updates the value for a key that must already exist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := kv.Update(c, args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("updated successfully")
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [key]",
		Short: "Deletes a key value pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := kv.Delete(c, args[0]); err != nil {
				return err
			}
			fmt.Println("delete successfully")
			return nil
		},
	}
	mkdirCmd = &cobra.Command{
		Use:   "mkdir [key]",
		Short: "Creates an empty directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := kv.CreateDir(c, args[0]); err != nil {
				return err
			}
			fmt.Println("directory created successfully")
			return nil
		},
	}
	rmdirCmd = &cobra.Command{
		Use:   "rmdir [key]",
		Short: "Deletes a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recursive, _ := cmd.Flags().GetBool("recursive")
			if _, err := kv.DeleteDir(c, args[0], recursive); err != nil {
				return err
			}
			fmt.Println("directory deleted successfully")
			return nil
		},
	}
)

func init() {
	getCmd.Flags().Bool("recursive", false, "list the whole subtree of a directory")
	getCmd.Flags().Bool("sort", false, "return directory listings sorted")
	getCmd.Flags().Bool("quorum", false, "route the read through the leader")
	rmdirCmd.Flags().Bool("recursive", false, "delete non-empty directories")
}

// printNode prints a node and, for directories, its children
func printNode(node *kv.Node, indent string) {
	if node == nil {
		return
	}
	if node.Dir {
		fmt.Printf("%s%s/ (modifiedIndex=%d)\n", indent, node.Key, node.ModifiedIndex)
		for i := range node.Nodes {
			printNode(&node.Nodes[i], indent+"  ")
		}
		return
	}

	value := ""
	if node.Value != nil {
		value = *node.Value
	}
	fmt.Printf("%s%s=%s (modifiedIndex=%d)\n", indent, node.Key, value, node.ModifiedIndex)
}
