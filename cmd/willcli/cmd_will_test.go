package main

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest/assert"
)

const (
	ownerHex = "b1ca7e78f74423ae01da3b51e676934d9105f282"
	benefHex = "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"
)

func TestCmdCreateWillHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-owner", ownerHex,
		"-doc", "sha256:0102",
		"-period", "48h",
	}
	if err := cmdCreateWill(nil, &output, args); err != nil {
		t.Fatalf("cannot create a will transaction: %s", err)
	}
	msg := readMsg(t, &output).(*will.CreateMsg)

	assert.Equal(t, fromHex(t, ownerHex), []byte(msg.Owner))
	assert.Equal(t, "sha256:0102", msg.DocumentRef)
	assert.Equal(t, weave.AsUnixDuration(48*time.Hour), msg.InactivityPeriod)
	assert.Nil(t, msg.Validate())
}

func TestCmdWillMessages(t *testing.T) {
	cases := map[string]struct {
		cmd   cmdFunc
		args  []string
		check func(t *testing.T, msg weave.Msg)
	}{
		"add beneficiary": {
			cmd:  cmdAddBeneficiary,
			args: []string{"-owner", ownerHex, "-beneficiary", benefHex, "-share", "40"},
			check: func(t *testing.T, m weave.Msg) {
				msg := m.(*will.AddBeneficiaryMsg)
				assert.Equal(t, fromHex(t, benefHex), []byte(msg.Beneficiary))
				assert.Equal(t, int32(40), msg.Share)
			},
		},
		"update period": {
			cmd:  cmdUpdatePeriod,
			args: []string{"-period", "1h"},
			check: func(t *testing.T, m weave.Msg) {
				msg := m.(*will.UpdateInactivityPeriodMsg)
				assert.Equal(t, 0, len(msg.Owner))
				assert.Equal(t, weave.UnixDuration(3600), msg.InactivityPeriod)
			},
		},
		"record activity": {
			cmd:  cmdRecordActivity,
			args: []string{"-owner", ownerHex},
			check: func(t *testing.T, m weave.Msg) {
				msg := m.(*will.RecordActivityMsg)
				assert.Equal(t, fromHex(t, ownerHex), []byte(msg.Owner))
			},
		},
		"update document": {
			cmd:  cmdUpdateDocument,
			args: []string{"-doc", "sha256:ff"},
			check: func(t *testing.T, m weave.Msg) {
				msg := m.(*will.UpdateDocumentMsg)
				assert.Equal(t, "sha256:ff", msg.DocumentRef)
			},
		},
		"execute": {
			cmd:  cmdExecute,
			args: []string{"-owner", ownerHex},
			check: func(t *testing.T, m weave.Msg) {
				msg := m.(*will.ExecuteMsg)
				assert.Equal(t, fromHex(t, ownerHex), []byte(msg.Owner))
			},
		},
		"update configuration": {
			cmd:  cmdUpdateConfiguration,
			args: []string{
				"-owner", ownerHex,
				"-ticker", "DGH",
				"-max-beneficiaries", "10",
				"-max-doc-ref-length", "256",
			},
			check: func(t *testing.T, m weave.Msg) {
				msg := m.(*will.UpdateConfigurationMsg)
				assert.Equal(t, fromHex(t, ownerHex), []byte(msg.Patch.Owner))
				assert.Equal(t, "DGH", msg.Patch.Ticker)
				assert.Equal(t, int32(10), msg.Patch.MaxBeneficiaries)
				assert.Equal(t, int32(256), msg.Patch.MaxDocumentRefLength)
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var output bytes.Buffer
			if err := tc.cmd(nil, &output, tc.args); err != nil {
				t.Fatalf("cannot create transaction: %s", err)
			}
			msg := readMsg(t, &output)
			assert.Nil(t, msg.Validate())
			tc.check(t, msg)
		})
	}
}

func TestCmdWillRejectsOutOfRangeValues(t *testing.T) {
	cases := map[string]struct {
		cmd  cmdFunc
		args []string
	}{
		"period longer than int32 seconds": {
			cmd:  cmdCreateWill,
			args: []string{"-period", "1192000h"},
		},
		"period shorter than a second": {
			cmd:  cmdCreateWill,
			args: []string{"-period", "500ms"},
		},
		"update with a wrapping period": {
			cmd:  cmdUpdatePeriod,
			args: []string{"-period", "1192000h"},
		},
		"share wrapping to a valid value": {
			cmd:  cmdAddBeneficiary,
			args: []string{"-beneficiary", benefHex, "-share", "4294967346"},
		},
		"share above one hundred": {
			cmd:  cmdAddBeneficiary,
			args: []string{"-beneficiary", benefHex, "-share", "101"},
		},
		"beneficiary limit wrapping": {
			cmd: cmdUpdateConfiguration,
			args: []string{
				"-owner", ownerHex,
				"-ticker", "DGH",
				"-max-beneficiaries", "4294967306",
				"-max-doc-ref-length", "256",
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var output bytes.Buffer
			if err := tc.cmd(nil, &output, tc.args); err == nil {
				t.Fatal("want an error")
			}
			assert.Equal(t, 0, output.Len())
		})
	}
}

func TestCmdCreateWillLongestPeriod(t *testing.T) {
	var output bytes.Buffer
	args := []string{"-period", maxPeriod.String()}
	if err := cmdCreateWill(nil, &output, args); err != nil {
		t.Fatalf("cannot create a will transaction: %s", err)
	}
	msg := readMsg(t, &output).(*will.CreateMsg)
	assert.Equal(t, weave.UnixDuration(math.MaxInt32), msg.InactivityPeriod)
}
