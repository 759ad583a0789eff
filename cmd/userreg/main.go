// Command userreg is an interactive registry of user records kept in a JSON file.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"user-registry/internal/i18n"
)

// version is set by build flags during release
var version = "dev"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "userreg",
	Short: "Interactive user registry backed by a JSON file",
	Long: `userreg opens a numbered menu to register, look up, list and delete
user records. Records are kept in a single JSON document (usuarios.json by default).

Menu language is set with USERREG_LOCALE or "locale" in the config file.
Supported locales: ` + strings.Join(i18n.Locales(), ", ") + ` (default ` + i18n.DefaultLocale + `).`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Upload a snapshot of the registry to object storage",
	Args:  cobra.NoArgs,
	RunE:  runBackup,
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registry snapshots in object storage",
	Args:  cobra.NoArgs,
	RunE:  runBackupList,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "userreg version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.{yaml,json,toml} if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	backupCmd.AddCommand(backupListCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "userreg: %v\n", err)
		os.Exit(1)
	}
}
