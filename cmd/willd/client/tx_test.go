package client

import (
	"testing"

	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

func TestSendTx(t *testing.T) {
	source := GenPrivateKey()
	sourceAddr := source.PublicKey().Address()
	owner := GenPrivateKey().PublicKey().Address()
	amount := coin.Coin{Whole: 59, Fractional: 42, Ticker: "DGH"}

	chainID := "ding-dong"
	tx := BuildSendTx(sourceAddr, will.CustodyAddress(owner), amount, "funding")
	// if we sign with 0, we can validate against an empty db
	assert.Nil(t, SignTx(tx, source, chainID, 0))
	assert.Equal(t, 1, len(tx.GetSignatures()))

	db := store.MemStore()
	migration.MustInitPkg(db, "sigs")
	conds, err := sigs.VerifyTxSignatures(db, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(conds))
	assert.Equal(t, source.PublicKey().Condition(), conds[0])

	// make sure other chain doesn't validate
	db = store.MemStore()
	migration.MustInitPkg(db, "sigs")
	if _, err := sigs.VerifyTxSignatures(db, tx, "foobar"); err == nil {
		t.Fatal("signature must not be valid for another chain")
	}

	data, err := tx.Marshal()
	assert.Nil(t, err)
	parsed, err := ParseTx(data)
	assert.Nil(t, err)
	msg, err := parsed.GetMsg()
	assert.Nil(t, err)
	send, ok := msg.(*cash.SendMsg)
	assert.Equal(t, true, ok)
	assert.Equal(t, "funding", send.Memo)
	assert.Equal(t, will.CustodyAddress(owner), send.Destination)
	assert.Equal(t, sourceAddr, send.Source)
	assert.Equal(t, int64(59), send.Amount.Whole)
}

func TestWillTxBuilders(t *testing.T) {
	owner := GenPrivateKey()
	ownerAddr := owner.PublicKey().Address()
	benef := GenPrivateKey().PublicKey().Address()

	cases := map[string]struct {
		tx   Tx
		path string
	}{
		"create": {
			tx:   BuildCreateTx(ownerAddr, "sha256:aa", 3600),
			path: "will/create",
		},
		"add beneficiary": {
			tx:   BuildAddBeneficiaryTx(ownerAddr, benef, 50),
			path: "will/add_beneficiary",
		},
		"update period": {
			tx:   BuildUpdateInactivityPeriodTx(ownerAddr, 7200),
			path: "will/update_inactivity_period",
		},
		"record activity": {
			tx:   BuildRecordActivityTx(ownerAddr),
			path: "will/record_activity",
		},
		"update document": {
			tx:   BuildUpdateDocumentTx(ownerAddr, "sha256:bb"),
			path: "will/update_document",
		},
		"execute": {
			tx:   BuildExecuteTx(ownerAddr),
			path: "will/execute",
		},
		"update configuration": {
			tx: BuildUpdateConfigurationTx(&will.Configuration{
				MaxBeneficiaries: 7,
			}),
			path: "will/update_configuration",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			tc.tx.SetFee(ownerAddr, coin.NewCoin(0, 10, "DGH"))
			assert.Nil(t, SignTx(tc.tx, owner, "test-chain", 3))

			raw, err := tc.tx.Marshal()
			assert.Nil(t, err)
			parsed, err := ParseTx(raw)
			assert.Nil(t, err)
			msg, err := parsed.GetMsg()
			assert.Nil(t, err)
			assert.Equal(t, tc.path, msg.Path())
			assert.Equal(t, 1, len(parsed.Signatures))
			assert.Equal(t, int64(3), parsed.Signatures[0].Sequence)
			assert.Equal(t, ownerAddr, parsed.Fees.Payer)
		})
	}
}
