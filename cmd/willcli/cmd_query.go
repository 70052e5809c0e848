package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/digiheir/cmd/willd/client"
	"github.com/iov-one/weave"
)

// queryCmd wraps a query function with the flags common to all will queries.
// Each query prints a JSON encoded result.
func queryCmd(description string, needBeneficiary bool, query func(wc *client.WillClient, owner, beneficiary weave.Address) (interface{}, error)) func(io.Reader, io.Writer, []string) error {
	return func(input io.Reader, output io.Writer, args []string) error {
		fl := flag.NewFlagSet("", flag.ExitOnError)
		fl.Usage = func() {
			fmt.Fprint(flag.CommandLine.Output(), description)
			fl.PrintDefaults()
		}
		var (
			tmAddrFl = fl.String("tm", defaultTmAddr(),
				"Tendermint node address. You can use WILLCLI_TM_ADDR environment variable to set it.")
			ownerFl = flAddress(fl, "owner", "", "Address of the will owner.")
			benefFl *weave.Address
		)
		if needBeneficiary {
			benefFl = flAddress(fl, "beneficiary", "", "Address of the beneficiary.")
		}
		fl.Parse(args)

		if len(*ownerFl) == 0 {
			flagDie("owner address is required")
		}
		var beneficiary weave.Address
		if needBeneficiary {
			if len(*benefFl) == 0 {
				flagDie("beneficiary address is required")
			}
			beneficiary = *benefFl
		}

		wc := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
		res, err := query(wc, *ownerFl, beneficiary)
		if err != nil {
			return fmt.Errorf("failed to run query: %s", err)
		}
		pretty, err := json.MarshalIndent(res, "", "\t")
		if err != nil {
			return fmt.Errorf("cannot JSON serialize: %s", err)
		}
		_, err = fmt.Fprintln(output, string(pretty))
		return err
	}
}

var cmdQueryWill = queryCmd(`
Print the will of given owner.
`, false, func(wc *client.WillClient, owner, _ weave.Address) (interface{}, error) {
	res, err := wc.GetWill(owner)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("no will for %s", owner)
	}
	return res.Will, nil
})

var cmdQueryBeneficiary = queryCmd(`
Print a single beneficiary entry of a will.
`, true, func(wc *client.WillClient, owner, beneficiary weave.Address) (interface{}, error) {
	res, err := wc.GetBeneficiary(owner, beneficiary)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%s is not a beneficiary of %s", beneficiary, owner)
	}
	return res, nil
})

var cmdQueryBeneficiaries = queryCmd(`
Print all beneficiaries of a will in the order they were added.
`, false, func(wc *client.WillClient, owner, _ weave.Address) (interface{}, error) {
	res, err := wc.Beneficiaries(owner)
	if err != nil {
		return nil, err
	}
	return res.Beneficiaries, nil
})

var cmdQueryCount = queryCmd(`
Print the number of beneficiaries declared by a will.
`, false, func(wc *client.WillClient, owner, _ weave.Address) (interface{}, error) {
	return wc.BeneficiaryCount(owner)
})

var cmdQueryCustody = queryCmd(`
Print the custody address of a will and the funds it holds.
`, false, func(wc *client.WillClient, owner, _ weave.Address) (interface{}, error) {
	funds, err := wc.CustodyBalance(owner)
	if err != nil {
		return nil, err
	}
	return struct {
		Address weave.Address
		Funds   interface{}
	}{
		Address: wc.CustodyAddress(owner),
		Funds:   funds,
	}, nil
})
