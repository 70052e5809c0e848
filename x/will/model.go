package will

import (
	"sort"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Will{}, migration.NoModification)
	migration.MustRegister(1, &Beneficiary{}, migration.NoModification)
}

const (
	minShare = 1
	maxShare = 100
)

var _ orm.Model = (*Will)(nil)

func (m *Will) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "LastActivity", m.LastActivity.Validate())
	if m.InactivityPeriod <= 0 {
		errs = errors.AppendField(errs, "InactivityPeriod", ErrInvalidPeriod)
	}
	if m.BeneficiaryCount < 0 {
		errs = errors.AppendField(errs, "BeneficiaryCount", errors.Wrap(errors.ErrState, "must not be negative"))
	}
	if m.LastExecuted != 0 {
		errs = errors.AppendField(errs, "LastExecuted", m.LastExecuted.Validate())
	}
	if m.ExecutionCount < 0 {
		errs = errors.AppendField(errs, "ExecutionCount", errors.Wrap(errors.ErrState, "must not be negative"))
	}
	if m.Retained != nil {
		errs = errors.AppendField(errs, "Retained", m.Retained.Validate())
	}
	return errs
}

// ExecutableAt returns the earliest time when this will can be executed.
func (m *Will) ExecutableAt() weave.UnixTime {
	return m.LastActivity.Add(m.InactivityPeriod.Duration())
}

// NewWillBucket returns a bucket for storing wills. Each will is stored under
// its owner address.
func NewWillBucket() orm.ModelBucket {
	b := orm.NewModelBucket("will", &Will{})
	return migration.NewModelBucket("will", b)
}

var _ orm.Model = (*Beneficiary)(nil)

func (m *Beneficiary) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "Address", m.Address.Validate())
	errs = errors.AppendField(errs, "Share", validateShare(m.Share))
	if m.Position < 0 {
		errs = errors.AppendField(errs, "Position", errors.Wrap(errors.ErrState, "must not be negative"))
	}
	return errs
}

// validateBeneficiaryAddress returns an error if the address cannot be a
// beneficiary of the will of given owner.
func validateBeneficiaryAddress(owner, beneficiary weave.Address) error {
	if beneficiary.Equals(owner) {
		return errors.Wrap(errors.ErrInput, "owner cannot be its own beneficiary")
	}
	if beneficiary.Equals(CustodyAddress(owner)) {
		return errors.Wrap(errors.ErrInput, "custody account cannot be a beneficiary")
	}
	return nil
}

func validateShare(share int32) error {
	if share < minShare || share > maxShare {
		return errors.Wrapf(ErrInvalidShare, "share must be between %d and %d", minShare, maxShare)
	}
	return nil
}

// NewBeneficiaryBucket returns a bucket for storing beneficiaries. A
// beneficiary is stored under a key built from both the owner and the
// beneficiary address. Use the "owner" index to list all beneficiaries of a
// given will.
func NewBeneficiaryBucket() orm.ModelBucket {
	b := orm.NewModelBucket("benef", &Beneficiary{},
		orm.WithNativeIndex("owner", beneficiaryOwner),
	)
	return migration.NewModelBucket("will", b)
}

func beneficiaryOwner(o orm.Object) ([][]byte, error) {
	b, ok := o.Value().(*Beneficiary)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Beneficiary")
	}
	return [][]byte{b.Owner}, nil
}

// BeneficiaryKey returns the key under which a beneficiary of given owner is
// stored.
func BeneficiaryKey(owner, beneficiary weave.Address) []byte {
	key := make([]byte, 0, len(owner)+len(beneficiary))
	key = append(key, owner...)
	return append(key, beneficiary...)
}

// ownerBeneficiaries returns all beneficiaries of given owner in the order
// they were added.
func ownerBeneficiaries(db weave.ReadOnlyKVStore, b orm.ModelBucket, owner weave.Address) ([]*Beneficiary, error) {
	var beneficiaries []*Beneficiary
	if _, err := b.ByIndex(db, "owner", owner, &beneficiaries); err != nil {
		return nil, errors.Wrap(err, "beneficiaries by owner")
	}
	sort.Slice(beneficiaries, func(i, j int) bool {
		return beneficiaries[i].Position < beneficiaries[j].Position
	})
	return beneficiaries, nil
}

// CustodyAddress returns the address of an account that holds funds
// distributed when the will of given owner is executed.
func CustodyAddress(owner weave.Address) weave.Address {
	return weave.NewCondition("will", "custody", owner).Address()
}
