package main

import (
	"bytes"
	"testing"

	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
)

func TestCmdSendTokensHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-src", ownerHex,
		"-dst", benefHex,
		"-amount", "5 DGH",
		"-memo", "a memo",
	}
	if err := cmdSendTokens(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new token transfer transaction: %s", err)
	}
	msg := readMsg(t, &output).(*cash.SendMsg)

	assert.Equal(t, fromHex(t, ownerHex), []byte(msg.Source))
	assert.Equal(t, fromHex(t, benefHex), []byte(msg.Destination))
	assert.Equal(t, "a memo", msg.Memo)
	assert.Equal(t, coin.NewCoinp(5, 0, "DGH"), msg.Amount)
}

func TestCmdSendTokensToCustody(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-src", benefHex,
		"-custody-of", ownerHex,
		"-amount", "7 DGH",
	}
	if err := cmdSendTokens(nil, &output, args); err != nil {
		t.Fatalf("cannot create a new token transfer transaction: %s", err)
	}
	msg := readMsg(t, &output).(*cash.SendMsg)
	assert.Equal(t, will.CustodyAddress(fromHex(t, ownerHex)), msg.Destination)
}

func TestCmdWithFeeHappyPath(t *testing.T) {
	var input bytes.Buffer
	if err := cmdRecordActivity(nil, &input, nil); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}

	var output bytes.Buffer
	args := []string{
		"-payer", ownerHex,
		"-amount", "0.5 DGH",
	}
	if err := cmdWithFee(&input, &output, args); err != nil {
		t.Fatalf("cannot attach a fee to transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	assert.Equal(t, fromHex(t, ownerHex), []byte(tx.Fees.Payer))
	assert.Equal(t, coin.NewCoinp(0, 500000000, "DGH"), tx.Fees.Fees)
	if tx.GetWillRecordActivityMsg() == nil {
		t.Fatal("message must be preserved")
	}
}
