package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kuly14/ethereum-private-key-to-address/address"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum [address-hex]",
	Short: "re-checksum an address per EIP-55",
	Long: `checksum applies the EIP-55 mixed-case transform to a 40-character hex
address in any casing and prints the canonical checksummed form.`,
	Args: cobra.ExactArgs(1),
	RunE: runChecksum,
}

func init() {
	rootCmd.AddCommand(checksumCmd)
}

func runChecksum(cmd *cobra.Command, args []string) error {
	checksummed, err := address.Checksum(args[0])
	if err != nil {
		return fmt.Errorf("failed to checksum address: %w", err)
	}
	fmt.Println(checksummed)
	return nil
}
