package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kuly14/ethereum-private-key-to-address/address"
	"github.com/Kuly14/ethereum-private-key-to-address/keys"
)

type deriveCmdArgType struct {
	showPublicKey bool
	fromStdin     bool
}

var deriveCmdArgs deriveCmdArgType = deriveCmdArgType{}

var deriveCmd = &cobra.Command{
	Use:   "derive [private-key-hex]",
	Short: "derive the EIP-55 address for a private key",
	Long: `derive parses a 64-character hex private key (optionally "0x"-prefixed),
derives its uncompressed secp256k1 public key, and prints the EIP-55
checksummed Ethereum address. Pass --stdin to read the key from standard
input instead of an argument so it does not end up in shell history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDerive,
}

func init() {
	rootCmd.AddCommand(deriveCmd)

	deriveCmd.Flags().BoolVar(&deriveCmdArgs.showPublicKey, "public-key", false, "Also print the uncompressed public key forms")
	deriveCmd.Flags().BoolVar(&deriveCmdArgs.fromStdin, "stdin", false, "Read the private key from standard input")
}

func runDerive(cmd *cobra.Command, args []string) error {
	var input string
	switch {
	case deriveCmdArgs.fromStdin:
		if len(args) != 0 {
			return fmt.Errorf("--stdin and a key argument are mutually exclusive")
		}
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read private key from stdin: %w", err)
		}
		input = strings.TrimSpace(line)
	case len(args) == 1:
		input = args[0]
	default:
		return fmt.Errorf("provide a private key argument or --stdin")
	}

	priv, err := keys.FromHex(input)
	if err != nil {
		return fmt.Errorf("failed to parse private key: %w", err)
	}
	logrus.Debug("private key parsed and range-checked")

	pub, err := priv.PublicKey()
	if err != nil {
		return fmt.Errorf("failed to derive public key: %w", err)
	}
	logrus.Debugf("derived public key %s", pub.Hex())

	fmt.Println(address.FromPublicKey(pub).Hex())

	if deriveCmdArgs.showPublicKey {
		fmt.Printf("public key (uncompressed): %s\n", pub.FullHex())
		fmt.Printf("public key (no prefix):    %s\n", pub.Hex())
		fmt.Printf("x coordinate:              %s\n", pub.XHex())
		fmt.Printf("y coordinate:              %s\n", pub.YHex())
	}
	return nil
}
