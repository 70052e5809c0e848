package will

import (
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if !coin.IsCC(c.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrap(errors.ErrCurrency, "invalid ticker"))
	}
	if c.MaxBeneficiaries <= 0 || c.MaxBeneficiaries > maxShare {
		errs = errors.AppendField(errs, "MaxBeneficiaries",
			errors.Wrapf(errors.ErrInput, "must be between 1 and %d", maxShare))
	}
	if c.MaxDocumentRefLength <= 0 {
		errs = errors.AppendField(errs, "MaxDocumentRefLength", errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "will", &conf); err != nil {
		return nil, errors.Wrap(err, "load")
	}
	return &conf, nil
}
