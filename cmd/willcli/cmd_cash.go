package main

import (
	"flag"
	"fmt"
	"io"

	willd "github.com/iov-one/digiheir/cmd/willd/app"
	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/x/cash"
)

func cmdSendTokens(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for transfering funds from the source account to the
destination account.

Use -custody-of instead of -dst to fund the will of given owner.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl     = flAddress(fl, "src", "", "A source account address that the funds are send from.")
		dstFl     = flAddress(fl, "dst", "", "A destination account address that the funds are send to.")
		custodyFl = flAddress(fl, "custody-of", "", "Owner address of a will that the funds are send to.")
		amountFl  = flCoin(fl, "amount", "1 DGH", "An amount that is to be transferred.")
		memoFl    = fl.String("memo", "", "A short message attached to the transfer operation.")
	)
	fl.Parse(args)

	dst := *dstFl
	if len(*custodyFl) != 0 {
		if len(dst) != 0 {
			flagDie("-dst and -custody-of cannot be used together")
		}
		dst = will.CustodyAddress(*custodyFl)
	}

	tx := &willd.Tx{
		Sum: &willd.Tx_CashSendMsg{
			CashSendMsg: &cash.SendMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Source:      *srcFl,
				Destination: dst,
				Amount:      amountFl,
				Memo:        *memoFl,
			},
		},
	}
	_, err := writeTx(output, tx)
	return err
}

func cmdWithFee(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Modify given transaction and attach a fee as specified to it. If a transaction
already has a fee set, overwrite it with a new value.
`)
		fl.PrintDefaults()
	}
	var (
		payerFl  = flAddress(fl, "payer", "", "Optional address of a payer. If not provided the main signer will be used.")
		amountFl = flCoin(fl, "amount", "1 DGH", "Fee value that should be attached to the transaction.")
	)
	fl.Parse(args)

	if coin.IsEmpty(amountFl) || !amountFl.IsPositive() {
		flagDie("fee value must be greater than zero.")
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	tx.Fees = &cash.FeeInfo{
		Payer: *payerFl,
		Fees:  amountFl,
	}

	_, err = writeTx(output, tx)
	return err
}
