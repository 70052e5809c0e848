package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	willd "github.com/iov-one/digiheir/cmd/willd/app"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
)

func fromHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("cannot decode %q hex encoded data: %s", s, err)
	}
	return b
}

func readMsg(t testing.TB, r io.Reader) weave.Msg {
	t.Helper()
	tx, _, err := readTx(r)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	msg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	return msg
}

func TestWriteReadTxStream(t *testing.T) {
	txs := []*willd.Tx{
		{Sum: &willd.Tx_CashSendMsg{CashSendMsg: &cash.SendMsg{Memo: "first"}}},
		{Sum: &willd.Tx_CashSendMsg{CashSendMsg: &cash.SendMsg{Memo: "second"}}},
	}
	var buf bytes.Buffer
	for _, tx := range txs {
		_, err := writeTx(&buf, tx)
		assert.Nil(t, err)
	}

	for _, want := range txs {
		got, _, err := readTx(&buf)
		assert.Nil(t, err)
		assert.Equal(t, want.GetCashSendMsg().Memo, got.GetCashSendMsg().Memo)
	}
	if _, _, err := readTx(&buf); err != io.EOF {
		t.Fatalf("want EOF, got %v", err)
	}
}
