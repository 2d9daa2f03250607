package label

import "context"

// Repository is the storage surface for labels and promoters. Deletes are
// plain single-row deletes: albums referencing a removed row keep their
// id and simply stop resolving.
type Repository interface {
	ListLabels(context context.Context) ([]*Label, error)
	GetLabel(context context.Context, id int) (*Label, error)
	CreateLabel(context context.Context, l *Label) error
	UpdateLabel(context context.Context, l *Label) error
	DeleteLabel(context context.Context, id int) error

	ListPromoters(context context.Context) ([]*Promoter, error)
	GetPromoter(context context.Context, id int) (*Promoter, error)
	CreatePromoter(context context.Context, p *Promoter) error
	UpdatePromoter(context context.Context, p *Promoter) error
	DeletePromoter(context context.Context, id int) error
}
