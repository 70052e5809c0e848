package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCmdTransactionView(t *testing.T) {
	var input bytes.Buffer
	args := []string{"-owner", ownerHex, "-doc", "sha256:abcd"}
	if err := cmdCreateWill(nil, &input, args); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}

	var output bytes.Buffer
	if err := cmdTransactionView(&input, &output, nil); err != nil {
		t.Fatalf("cannot view transaction: %s", err)
	}
	got := output.String()
	for _, want := range []string{"WillCreateMsg", "sha256:abcd"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q not found in view output:\n%s", want, got)
		}
	}
}

func TestCmdTransactionViewNoInput(t *testing.T) {
	if err := cmdTransactionView(&bytes.Buffer{}, &bytes.Buffer{}, nil); err == nil {
		t.Fatal("empty input must fail")
	}
}
