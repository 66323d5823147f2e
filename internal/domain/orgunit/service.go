package orgunit

import "context"

type OrgUnitService interface {
	Create(ctx context.Context, req CreateOrgUnitRequest) (OrgUnitResponse, error)
	Get(ctx context.Context, id string) (OrgUnitResponse, error)
	List(ctx context.Context) ([]OrgUnitResponse, error)
	Tree(ctx context.Context) ([]TreeNodeResponse, error)
	Update(ctx context.Context, req UpdateOrgUnitRequest) (OrgUnitResponse, error)
	Delete(ctx context.Context, id string) error
}
