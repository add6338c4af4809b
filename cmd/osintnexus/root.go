package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/osintnexus/internal/config"
)

// NewRootCmd creates the root command for OSINT Nexus.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "osintnexus",
		Short: "Mock intelligence dashboard for the terminal",
		Long: `OSINT Nexus is a mock intelligence dashboard. It presents intelligence
modules (OSINT, GEOINT, SIGINT, ...) and their tools, and runs tools against
targets through an HTTP backend.

There is no real tool execution. Start the bundled mock backend with
'osintnexus serve', then open the dashboard with 'osintnexus dashboard'.
When the backend is unreachable, sample data is shown instead.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.StringP("config", "c", "",
		"Configuration file path (default: .osintnexus in current or home directory)")
	flags.String("backend", config.DefaultBackendURL,
		"Backend base URL (overrides "+config.BackendURLEnv+")")
	flags.String("proxy", "",
		"Route API requests through a SOCKS5 proxy (e.g., 127.0.0.1:9050)")
	flags.Bool("tor", false,
		"Route API requests through an embedded Tor daemon")
	flags.Duration("timeout", config.DefaultTimeout,
		"Request timeout for API calls (0 means none)")

	cmd.AddCommand(NewDashboardCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewModulesCmd())
	cmd.AddCommand(NewExecCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewPrefsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
