package will

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse the will configuration from genesis and save it to
// the database. Wills with their beneficiaries can be imported as well.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, "will", &conf); {
	default:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	var wills []struct {
		Owner            weave.Address      `json:"owner"`
		DocumentRef      string             `json:"document_ref"`
		LastActivity     weave.UnixTime     `json:"last_activity"`
		InactivityPeriod weave.UnixDuration `json:"inactivity_period"`
		Beneficiaries    []struct {
			Address weave.Address `json:"address"`
			Share   int32         `json:"share"`
		} `json:"beneficiaries"`
	}
	if err := opts.ReadOptions("will", &wills); err != nil {
		return err
	}

	willBucket := NewWillBucket()
	benefBucket := NewBeneficiaryBucket()
	for i, w := range wills {
		if len(w.Beneficiaries) > int(conf.MaxBeneficiaries) {
			return errors.Wrapf(errors.ErrState, "will %d has too many beneficiaries", i)
		}
		will := Will{
			Metadata:         &weave.Metadata{Schema: 1},
			Owner:            w.Owner,
			DocumentRef:      w.DocumentRef,
			LastActivity:     w.LastActivity,
			InactivityPeriod: w.InactivityPeriod,
		}
		switch err := willBucket.Has(db, w.Owner); {
		case err == nil:
			return errors.Wrapf(errors.ErrDuplicate, "will %d of %s declared twice", i, w.Owner)
		case errors.ErrNotFound.Is(err):
			// All good.
		default:
			return errors.Wrapf(err, "will %d", i)
		}
		var total int32
		seen := make(map[string]struct{}, len(w.Beneficiaries))
		for pos, b := range w.Beneficiaries {
			if _, ok := seen[string(b.Address)]; ok {
				return errors.Wrapf(errors.ErrDuplicate, "will %d beneficiary %d declared twice", i, pos)
			}
			seen[string(b.Address)] = struct{}{}
			if err := validateBeneficiaryAddress(w.Owner, b.Address); err != nil {
				return errors.Wrapf(err, "will %d beneficiary %d", i, pos)
			}
			benef := Beneficiary{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    w.Owner,
				Address:  b.Address,
				Share:    b.Share,
				Position: int32(pos),
			}
			if err := benef.Validate(); err != nil {
				return errors.Wrapf(err, "will %d beneficiary %d", i, pos)
			}
			if total += b.Share; total > maxShare {
				return errors.Wrapf(ErrInvalidShare, "will %d total share exceeds %d", i, maxShare)
			}
			if _, err := benefBucket.Put(db, BeneficiaryKey(w.Owner, b.Address), &benef); err != nil {
				return errors.Wrapf(err, "store will %d beneficiary %d", i, pos)
			}
			will.BeneficiaryCount++
		}
		if err := will.Validate(); err != nil {
			return errors.Wrapf(err, "will %d is invalid", i)
		}
		if _, err := willBucket.Put(db, w.Owner, &will); err != nil {
			return errors.Wrapf(err, "store will %d", i)
		}
	}
	return nil
}
