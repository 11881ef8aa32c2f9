package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ethaddr",
	Short: "Derive Ethereum addresses from secp256k1 private keys",
	Long: `ethaddr converts a secp256k1 private key into its public key and
EIP-55 checksummed Ethereum address. The key is validated against the
secp256k1 group order before any derivation happens; nothing is ever
written to disk or sent over the network.`,
	Version: "1.0.0",

	// Execute reports RunE failures itself; without these cobra would
	// print the error a second time along with the full usage text.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}

// initConfig initializes configuration
func initConfig() {
	// Set up logging
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
