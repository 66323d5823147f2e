package orgunit

import "context"

type OrgUnitRepository interface {
	Create(ctx context.Context, unit OrgUnit) (OrgUnit, error)
	GetByID(ctx context.Context, id string) (OrgUnit, error)
	List(ctx context.Context) ([]OrgUnit, error)
	Update(ctx context.Context, unit OrgUnit) error
	Delete(ctx context.Context, id string) error
	CountChildren(ctx context.Context, id string) (int64, error)
	CountPersonnel(ctx context.Context, id string) (int64, error)
}
