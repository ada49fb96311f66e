package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"autonews/internal/categorization"
)

// NewCategoriesCmd creates the command that lists the fixed categories.
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the fixed article categories in canonical order",
		Run: func(cmd *cobra.Command, args []string) {
			for i, name := range categorization.Names() {
				fmt.Printf("%d. %s\n", i+1, name)
			}
		},
	}
}
