package orgunit

import "errors"

var (
	ErrOrgUnitNotFound     = errors.New("organizational unit not found")
	ErrOrgUnitHasChildren  = errors.New("organizational unit has child units")
	ErrOrgUnitHasPersonnel = errors.New("organizational unit has assigned personnel")
)
