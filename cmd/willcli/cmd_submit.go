package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/digiheir/cmd/willd/client"
	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave"
	"github.com/tendermint/tendermint/libs/log"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it.

For certain transactions response is written out. Make sure to collect enough
signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use WILLCLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	logger := newLogger(os.Stderr)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return fmt.Errorf("cannot extract message from transaction: %s", err)
	}

	wc := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	resp := wc.BroadcastTx(tx)
	if err := resp.IsError(); err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}
	logger.Debug("transaction committed",
		"path", msg.Path(),
		"height", resp.Response.Height,
		"hash", resp.Response.Hash)

	res, err := extractResponse(msg, resp.Response.DeliverTx.Data, formatters)
	if err != nil {
		return fmt.Errorf("cannot extract response: %s", err)
	}
	if res != "" {
		fmt.Fprintln(output, res)
	}
	return nil
}

// extractResponse parse given raw response data bytes according to what is
// expected considering the submitted message. It can return no data (and no
// error) if response does not contain anything worth showing to the user.
func extractResponse(msg weave.Msg, respData []byte, fmts map[string]func([]byte) (string, error)) (string, error) {
	format, ok := fmts[msg.Path()]
	if !ok {
		return "", nil
	}
	pretty, err := format(respData)
	if err != nil {
		return "", fmt.Errorf("cannot format result data %x: %s", respData, err)
	}
	return pretty, nil
}

// formatters contains a mapping of a message path to response parser.
//
// Do not register a message if you want response returned after its submission
// to be ignored (not printed to the user).
var formatters = map[string]func([]byte) (string, error){
	will.CreateMsg{}.Path():  fmtAddress,
	will.ExecuteMsg{}.Path(): fmtExecuteResult,
}

func fmtAddress(raw []byte) (string, error) {
	addr := weave.Address(raw)
	if err := addr.Validate(); err != nil {
		return "", err
	}
	return addr.String(), nil
}

func fmtExecuteResult(raw []byte) (string, error) {
	var res will.ExecuteResult
	if err := res.Unmarshal(raw); err != nil {
		return "", fmt.Errorf("cannot unmarshal execute result: %s", err)
	}
	pretty, err := json.MarshalIndent(res.Payouts, "", "\t")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}

// newLogger returns a logger writing to given output. The level is read from
// the WILLCLI_LOG environment variable.
func newLogger(w io.Writer) log.Logger {
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	opt, err := log.AllowLevel(env("WILLCLI_LOG", "info"))
	if err != nil {
		opt = log.AllowInfo()
	}
	return log.NewFilter(logger, opt).With("module", "willcli")
}
