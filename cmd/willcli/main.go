package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// cmdFunc is a single command implementation. It is given stdin, stdout and
// the command line arguments that follow the command name. It is the
// responsibility of the command function to parse the arguments.
//
// Keep a command simple and use a unix pipe to construct a pipeline. For
// example, there are separate commands for creating a transaction, signing
// and submitting it:
//
//   $ willcli record-activity \
//       | willcli sign \
//       | willcli submit
//
type cmdFunc func(input io.Reader, output io.Writer, args []string) error

func leaf(use, short string, run cmdFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		// Each command parses its own flags.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(c *cobra.Command, args []string) error {
			return run(c.InOrStdin(), c.OutOrStdout(), args)
		},
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "willcli",
		Short: "willcli is a command line client for the will registry.",
		Long: `willcli is a command line client for the will registry.

Run 'willcli <command> -help' to learn more about each command.`,
		SilenceErrors: true,
	}
	root.AddCommand(
		leaf("keygen", "Generate a new private key", cmdKeygen),
		leaf("keyaddr", "Print the address of a private key", cmdKeyaddr),
		leaf("create", "Create a will registration transaction", cmdCreateWill),
		leaf("add-beneficiary", "Create a beneficiary declaration transaction", cmdAddBeneficiary),
		leaf("update-period", "Create an inactivity period update transaction", cmdUpdatePeriod),
		leaf("record-activity", "Create a proof of life transaction", cmdRecordActivity),
		leaf("update-document", "Create a document reference update transaction", cmdUpdateDocument),
		leaf("execute", "Create a will execution transaction", cmdExecute),
		leaf("send", "Create a token transfer transaction", cmdSendTokens),
		leaf("update-config", "Create a configuration update transaction", cmdUpdateConfiguration),
		leaf("with-fee", "Attach a fee to a transaction", cmdWithFee),
		leaf("sign", "Sign a transaction", cmdSignTransaction),
		leaf("submit", "Submit a signed transaction", cmdSubmitTransaction),
		leaf("view", "Display a transaction summary", cmdTransactionView),
		leaf("version", "Print the version", cmdVersion),
	)

	query := &cobra.Command{
		Use:   "query",
		Short: "Query the will registry state",
	}
	query.AddCommand(
		leaf("will", "Print a will", cmdQueryWill),
		leaf("beneficiary", "Print a single beneficiary of a will", cmdQueryBeneficiary),
		leaf("beneficiaries", "Print all beneficiaries of a will", cmdQueryBeneficiaries),
		leaf("count", "Print the number of beneficiaries of a will", cmdQueryCount),
		leaf("custody", "Print the custody account of a will", cmdQueryCustody),
	)

	doc := &cobra.Command{
		Use:   "doc",
		Short: "Store and retrieve will documents",
	}
	doc.AddCommand(
		leaf("upload", "Upload a document and print its reference", cmdDocUpload),
		leaf("fetch", "Fetch a document content", cmdDocFetch),
	)

	root.AddCommand(query, doc)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, gitHash)
	return nil
}

// gitHash is set during the compilation time.
var gitHash string = "dev"
