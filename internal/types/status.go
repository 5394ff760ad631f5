package types

import "strings"

// Status is the UN/LOCODE entry status.
type Status string

const (
	StatusApprovedByGovernmentAgency    Status = "approved_by_government_agency"
	StatusApprovedByCustomsAuthority    Status = "approved_by_customs_authority"
	StatusApprovedByFacilitationBody    Status = "approved_by_facilitation_body"
	StatusAdoptedByInternationalOrg     Status = "adopted_by_international_organisation"
	StatusApprovedByMaintenanceAgency   Status = "approved_by_maintenance_agency"
	StatusApprovedFunctionsNotVerified  Status = "approved_functions_not_verified"
	StatusApprovedByStandardisationBody Status = "approved_by_standardisation_body"
	StatusRecognisedLocation            Status = "recognised_location"
	StatusRequestFromNationalSources    Status = "request_from_national_sources"
	StatusRequestUnderConsideration     Status = "request_under_consideration"
	StatusIncludedOnUserRequest         Status = "included_on_user_request"
	StatusRequestRejected               Status = "request_rejected"
	StatusOriginalEntryNotVerified      Status = "original_entry_not_verified"
	StatusToBeRemoved                   Status = "to_be_removed"
	StatusUnknown                       Status = "unknown"
)

var statusByCode = map[string]Status{
	"AA": StatusApprovedByGovernmentAgency,
	"AC": StatusApprovedByCustomsAuthority,
	"AF": StatusApprovedByFacilitationBody,
	"AI": StatusAdoptedByInternationalOrg,
	"AM": StatusApprovedByMaintenanceAgency,
	"AQ": StatusApprovedFunctionsNotVerified,
	"AS": StatusApprovedByStandardisationBody,
	"RL": StatusRecognisedLocation,
	"RN": StatusRequestFromNationalSources,
	"RQ": StatusRequestUnderConsideration,
	"UR": StatusIncludedOnUserRequest,
	"RR": StatusRequestRejected,
	"QQ": StatusOriginalEntryNotVerified,
	"XX": StatusToBeRemoved,
}

// ParseStatus maps the two-letter status column to a Status. The match is
// case-insensitive; anything outside the fourteen known codes, including an
// empty column, is StatusUnknown. Source data is not guaranteed clean, so an
// unrecognized code is a value, never an error.
func ParseStatus(raw string) Status {
	if s, ok := statusByCode[strings.ToUpper(raw)]; ok {
		return s
	}
	return StatusUnknown
}
