package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"time"

	willd "github.com/iov-one/digiheir/cmd/willd/app"
	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave"
)

const ownerUsage = "Address of the will owner. If not provided, the only signer of the transaction is used."

const maxPeriod = math.MaxInt32 * time.Second

// unixPeriod converts d to whole seconds as stored on chain. A period that
// does not fit is rejected instead of being wrapped.
func unixPeriod(d time.Duration) (weave.UnixDuration, error) {
	if d < time.Second || d > maxPeriod {
		return 0, fmt.Errorf("period must be between 1s and %s, got %s", maxPeriod, d)
	}
	return weave.AsUnixDuration(d), nil
}

// int32Value returns n if it fits in [min, max].
func int32Value(name string, n int, min, max int32) (int32, error) {
	if n < int(min) || n > int(max) {
		return 0, fmt.Errorf("%s must be between %d and %d, got %d", name, min, max, n)
	}
	return int32(n), nil
}

func cmdCreateWill(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for registering a new will.

The document reference is usually the value printed by the "doc upload"
command.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl  = flAddress(fl, "owner", "", ownerUsage)
		docFl    = fl.String("doc", "", "Document reference.")
		periodFl = fl.Duration("period", 365*24*time.Hour, "Inactivity period after which the will can be executed.")
	)
	fl.Parse(args)

	period, err := unixPeriod(*periodFl)
	if err != nil {
		return err
	}

	tx := &willd.Tx{
		Sum: &willd.Tx_WillCreateMsg{
			WillCreateMsg: &will.CreateMsg{
				Metadata:         &weave.Metadata{Schema: 1},
				Owner:            *ownerFl,
				DocumentRef:      *docFl,
				InactivityPeriod: period,
			},
		},
	}
	_, err = writeTx(output, tx)
	return err
}

func cmdAddBeneficiary(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for declaring a beneficiary of a will. If the beneficiary
is already declared, its share is replaced.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl = flAddress(fl, "owner", "", ownerUsage)
		benefFl = flAddress(fl, "beneficiary", "", "Address that receives the share.")
		shareFl = fl.Int("share", 0, "Percentage of the custody funds, between 1 and 100.")
	)
	fl.Parse(args)

	share, err := int32Value("share", *shareFl, 1, 100)
	if err != nil {
		return err
	}

	tx := &willd.Tx{
		Sum: &willd.Tx_WillAddBeneficiaryMsg{
			WillAddBeneficiaryMsg: &will.AddBeneficiaryMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Owner:       *ownerFl,
				Beneficiary: *benefFl,
				Share:       share,
			},
		},
	}
	_, err = writeTx(output, tx)
	return err
}

func cmdUpdatePeriod(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for changing the inactivity period of a will. This does
not count as an owner activity.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl  = flAddress(fl, "owner", "", ownerUsage)
		periodFl = fl.Duration("period", 0, "New inactivity period.")
	)
	fl.Parse(args)

	period, err := unixPeriod(*periodFl)
	if err != nil {
		return err
	}

	tx := &willd.Tx{
		Sum: &willd.Tx_WillUpdateInactivityPeriodMsg{
			WillUpdateInactivityPeriodMsg: &will.UpdateInactivityPeriodMsg{
				Metadata:         &weave.Metadata{Schema: 1},
				Owner:            *ownerFl,
				InactivityPeriod: period,
			},
		},
	}
	_, err = writeTx(output, tx)
	return err
}

func cmdRecordActivity(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a proof of life transaction. It resets the inactivity window of a will.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl = flAddress(fl, "owner", "", ownerUsage)
	)
	fl.Parse(args)

	tx := &willd.Tx{
		Sum: &willd.Tx_WillRecordActivityMsg{
			WillRecordActivityMsg: &will.RecordActivityMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    *ownerFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdUpdateDocument(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for replacing the document reference of a will.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl = flAddress(fl, "owner", "", ownerUsage)
		docFl   = fl.String("doc", "", "New document reference.")
	)
	fl.Parse(args)

	tx := &willd.Tx{
		Sum: &willd.Tx_WillUpdateDocumentMsg{
			WillUpdateDocumentMsg: &will.UpdateDocumentMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Owner:       *ownerFl,
				DocumentRef: *docFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdExecute(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for executing a will. Anyone can sign it. Execution
succeeds only once the owner was inactive for the whole inactivity period.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl = flAddress(fl, "owner", "", "Address of the will owner.")
	)
	fl.Parse(args)

	if len(*ownerFl) == 0 {
		flagDie("owner address is required")
	}

	tx := &willd.Tx{
		Sum: &willd.Tx_WillExecuteMsg{
			WillExecuteMsg: &will.ExecuteMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    *ownerFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdUpdateConfiguration(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for updating the will registry configuration. The whole
configuration must be provided. The transaction must be signed by the current
configuration owner.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl  = flAddress(fl, "owner", "", "New configuration owner.")
		tickerFl = fl.String("ticker", "", "Ticker of the currency distributed on execution.")
		maxBenFl = fl.Int("max-beneficiaries", 0, "Highest number of beneficiaries a will can declare.")
		maxDocFl = fl.Int("max-doc-ref-length", 0, "Maximum length of a document reference.")
	)
	fl.Parse(args)

	maxBen, err := int32Value("max-beneficiaries", *maxBenFl, 1, 100)
	if err != nil {
		return err
	}
	maxDoc, err := int32Value("max-doc-ref-length", *maxDocFl, 1, math.MaxInt32)
	if err != nil {
		return err
	}

	tx := &willd.Tx{
		Sum: &willd.Tx_WillUpdateConfigurationMsg{
			WillUpdateConfigurationMsg: &will.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &will.Configuration{
					Metadata:             &weave.Metadata{Schema: 1},
					Owner:                *ownerFl,
					Ticker:               *tickerFl,
					MaxBeneficiaries:     maxBen,
					MaxDocumentRefLength: maxDoc,
				},
			},
		},
	}
	_, err = writeTx(output, tx)
	return err
}
