// cmd/list.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/surveillance-tools/panoramix/asterix"
	"github.com/surveillance-tools/panoramix/internal/config"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List ASTERIX categories this build can decode",
		Long: `Display every ASTERIX category panoramix has a UAP for, with its
pinned edition. Use -vsnCCC=EDITION on the decode command to override a
category's default edition.`,
		Run: runList,
	}

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	logger := ConfigureLogger(Verbose, JsonLogs)

	logger.Info("Available ASTERIX categories")

	for _, cat := range config.KnownCategories() {
		c := asterix.Category(cat)
		logger.Info("Category",
			"name", c.String(),
			"blockable", c.IsBlockable(),
		)
	}
}
