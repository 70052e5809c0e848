package client

import (
	willd "github.com/iov-one/digiheir/cmd/willd/app"
	"github.com/iov-one/digiheir/x/will"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// Tx is all the interfaces we need rolled into one
type Tx interface {
	weave.Tx
	sigs.SignedTx
	AppendSignature(sig *sigs.StdSignature)
	SetFee(payer weave.Address, fee coin.Coin)
}

type willTx struct {
	*willd.Tx
}

var _ Tx = willTx{}

func (t willTx) AppendSignature(sig *sigs.StdSignature) {
	t.Tx.Signatures = append(t.Tx.Signatures, sig)
}

func (t willTx) SetFee(payer weave.Address, fee coin.Coin) {
	t.Tx.Fees = &cash.FeeInfo{
		Payer: payer,
		Fees:  &fee,
	}
}

// BuildSendTx will create an unsigned tx to move tokens. Sending tokens to
// the custody address of a will funds it.
func BuildSendTx(src, dest weave.Address, amount coin.Coin, memo string) Tx {
	return willTx{&willd.Tx{Sum: &willd.Tx_CashSendMsg{CashSendMsg: &cash.SendMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Source:      src,
		Destination: dest,
		Amount:      &amount,
		Memo:        memo,
	}}}}
}

// BuildCreateTx will create an unsigned tx to register a new will.
func BuildCreateTx(owner weave.Address, documentRef string, period weave.UnixDuration) Tx {
	return willTx{&willd.Tx{Sum: &willd.Tx_WillCreateMsg{WillCreateMsg: &will.CreateMsg{
		Metadata:         &weave.Metadata{Schema: 1},
		Owner:            owner,
		DocumentRef:      documentRef,
		InactivityPeriod: period,
	}}}}
}

// BuildAddBeneficiaryTx will create an unsigned tx to declare or update a
// beneficiary share.
func BuildAddBeneficiaryTx(owner, beneficiary weave.Address, share int32) Tx {
	return willTx{&willd.Tx{Sum: &willd.Tx_WillAddBeneficiaryMsg{WillAddBeneficiaryMsg: &will.AddBeneficiaryMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Owner:       owner,
		Beneficiary: beneficiary,
		Share:       share,
	}}}}
}

// BuildUpdateInactivityPeriodTx will create an unsigned tx to change the
// inactivity period of a will.
func BuildUpdateInactivityPeriodTx(owner weave.Address, period weave.UnixDuration) Tx {
	return willTx{&willd.Tx{Sum: &willd.Tx_WillUpdateInactivityPeriodMsg{WillUpdateInactivityPeriodMsg: &will.UpdateInactivityPeriodMsg{
		Metadata:         &weave.Metadata{Schema: 1},
		Owner:            owner,
		InactivityPeriod: period,
	}}}}
}

// BuildRecordActivityTx will create an unsigned proof of life tx.
func BuildRecordActivityTx(owner weave.Address) Tx {
	return willTx{&willd.Tx{Sum: &willd.Tx_WillRecordActivityMsg{WillRecordActivityMsg: &will.RecordActivityMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
	}}}}
}

// BuildUpdateDocumentTx will create an unsigned tx to replace the document
// reference of a will.
func BuildUpdateDocumentTx(owner weave.Address, documentRef string) Tx {
	return willTx{&willd.Tx{Sum: &willd.Tx_WillUpdateDocumentMsg{WillUpdateDocumentMsg: &will.UpdateDocumentMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Owner:       owner,
		DocumentRef: documentRef,
	}}}}
}

// BuildExecuteTx will create an unsigned tx to distribute the custody funds
// of given owner. Anyone can sign it.
func BuildExecuteTx(owner weave.Address) Tx {
	return willTx{&willd.Tx{Sum: &willd.Tx_WillExecuteMsg{WillExecuteMsg: &will.ExecuteMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
	}}}}
}

// BuildUpdateConfigurationTx will create an unsigned tx to patch the will
// registry configuration. Only the configuration owner can sign it.
func BuildUpdateConfigurationTx(patch *will.Configuration) Tx {
	return willTx{&willd.Tx{Sum: &willd.Tx_WillUpdateConfigurationMsg{WillUpdateConfigurationMsg: &will.UpdateConfigurationMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Patch:    patch,
	}}}}
}

// SignTx modifies the tx in-place, adding signatures
func SignTx(tx Tx, signer *PrivateKey, chainID string, nonce int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, nonce)
	if err != nil {
		return err
	}
	tx.AppendSignature(sig)
	return nil
}

// ParseTx will load a serialized tx into a format we can read
func ParseTx(data []byte) (*willd.Tx, error) {
	var tx willd.Tx
	if err := tx.Unmarshal(data); err != nil {
		return nil, err
	}
	return &tx, nil
}
