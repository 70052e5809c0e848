package will

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateMsg{}, migration.NoModification)
	migration.MustRegister(1, &AddBeneficiaryMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateInactivityPeriodMsg{}, migration.NoModification)
	migration.MustRegister(1, &RecordActivityMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateDocumentMsg{}, migration.NoModification)
	migration.MustRegister(1, &ExecuteMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

// validateOptionalOwner returns an error if an owner address was declared
// and it is not valid. An empty owner means the only signer.
func validateOptionalOwner(owner weave.Address) error {
	if len(owner) == 0 {
		return nil
	}
	return owner.Validate()
}

func validatePeriod(p weave.UnixDuration) error {
	if p <= 0 {
		return errors.Wrap(ErrInvalidPeriod, "must be greater than zero")
	}
	return nil
}

var _ weave.Msg = (*CreateMsg)(nil)

func (CreateMsg) Path() string {
	return "will/create"
}

func (m *CreateMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", validateOptionalOwner(m.Owner))
	errs = errors.AppendField(errs, "InactivityPeriod", validatePeriod(m.InactivityPeriod))
	return errs
}

var _ weave.Msg = (*AddBeneficiaryMsg)(nil)

func (AddBeneficiaryMsg) Path() string {
	return "will/add_beneficiary"
}

func (m *AddBeneficiaryMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", validateOptionalOwner(m.Owner))
	errs = errors.AppendField(errs, "Beneficiary", m.Beneficiary.Validate())
	errs = errors.AppendField(errs, "Share", validateShare(m.Share))
	return errs
}

var _ weave.Msg = (*UpdateInactivityPeriodMsg)(nil)

func (UpdateInactivityPeriodMsg) Path() string {
	return "will/update_inactivity_period"
}

func (m *UpdateInactivityPeriodMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", validateOptionalOwner(m.Owner))
	errs = errors.AppendField(errs, "InactivityPeriod", validatePeriod(m.InactivityPeriod))
	return errs
}

var _ weave.Msg = (*RecordActivityMsg)(nil)

func (RecordActivityMsg) Path() string {
	return "will/record_activity"
}

func (m *RecordActivityMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", validateOptionalOwner(m.Owner))
	return errs
}

var _ weave.Msg = (*UpdateDocumentMsg)(nil)

func (UpdateDocumentMsg) Path() string {
	return "will/update_document"
}

func (m *UpdateDocumentMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", validateOptionalOwner(m.Owner))
	return errs
}

var _ weave.Msg = (*ExecuteMsg)(nil)

func (ExecuteMsg) Path() string {
	return "will/execute"
}

func (m *ExecuteMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "will/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Patch", m.Patch.Validate())
	return errs
}
