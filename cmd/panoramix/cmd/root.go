// cmd/root.go
package cmd

import (
	"github.com/spf13/cobra"
)

// Global flags
var (
	Verbose  bool
	JsonLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "panoramix",
	Short: "ASTERIX surveillance recording decoder and lister",
	Long: `panoramix decodes EUROCONTROL ASTERIX surveillance recordings and lists
their contents. It reads sequence-of-records, Netto, IOSS Final Format,
and RFF recording files, decodes the ASTERIX data blocks they carry, and
writes a human-readable listing or a structured event stream.
https://github.com/surveillance-tools/panoramix
`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&JsonLogs, "json", false, "Log in JSON format")

	rootCmd.Flags().BoolP("version", "V", false, "Print version information")
	rootCmd.SetVersionTemplate("panoramix v{{.Version}} - ASTERIX recording decoder\n")
	rootCmd.Version = "0.1.0"
}
