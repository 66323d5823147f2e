package personnel

import "context"

type PersonnelRepository interface {
	Create(ctx context.Context, p Personnel) (Personnel, error)
	GetByID(ctx context.Context, id string) (Personnel, error)
	GetByCardNumber(ctx context.Context, cardNumber string) (Personnel, error)
	GetByPersonnelNumber(ctx context.Context, personnelNumber string) (Personnel, error)
	List(ctx context.Context, filter PersonnelFilter) ([]Personnel, int64, error)
	ListActiveIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, p Personnel) error
	Deactivate(ctx context.Context, id string) error
}
