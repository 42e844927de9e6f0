package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tools "github.com/synapticlabs/synaptic/providers/tool"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the built-in tools",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range tools.Builtins().All() {
			fmt.Printf("%-12s %s\n", t.Name, t.Declaration.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
