package queries

import (
	"context"
	"sort"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfficeNotFound = errs.ErrOfficeNotFound
	ErrOfficeLoad     = errs.New("failed to load offices")
)

// OfficeReadStore returns the catalog ordered by location.
type OfficeReadStore interface {
	List(ctx context.Context) ([]*office.Office, error)
	FindByID(ctx context.Context, id uuid.UUID) (*office.Office, error)
}

type OfficeQueries interface {
	List(ctx context.Context) ([]*OfficeView, error)
	Search(ctx context.Context, criteria office.SearchCriteria) ([]*OfficeView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OfficeView, error)
	Cities(ctx context.Context) ([]string, error)
	Quote(ctx context.Context, id uuid.UUID, d booking.Duration) (*QuoteView, error)
	DurationPackages(ctx context.Context) []*DurationPackageView
}

type officeQueriesImpl struct {
	store      OfficeReadStore
	calculator booking.PriceCalculator
}

func NewOfficeQueries(store OfficeReadStore, calculator booking.PriceCalculator) OfficeQueries {
	return &officeQueriesImpl{
		store:      store,
		calculator: calculator,
	}
}

func (q *officeQueriesImpl) List(ctx context.Context) ([]*OfficeView, error) {
	return q.Search(ctx, office.SearchCriteria{})
}

func (q *officeQueriesImpl) Search(ctx context.Context, criteria office.SearchCriteria) ([]*OfficeView, error) {
	offices, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrOfficeLoad)
	}

	matched := office.Filter(offices, criteria)
	views := make([]*OfficeView, len(matched))
	for i, o := range matched {
		views[i] = ToOfficeView(o)
	}
	return views, nil
}

func (q *officeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OfficeView, error) {
	o, err := q.findOffice(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOfficeView(o), nil
}

// Cities derives the distinct, sorted city names from the catalog locations.
func (q *officeQueriesImpl) Cities(ctx context.Context) ([]string, error) {
	offices, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrOfficeLoad)
	}

	seen := make(map[string]struct{}, len(offices))
	cities := make([]string, 0, len(offices))
	for _, o := range offices {
		city := o.City()
		if city == "" {
			continue
		}
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities, nil
}

func (q *officeQueriesImpl) Quote(ctx context.Context, id uuid.UUID, d booking.Duration) (*QuoteView, error) {
	o, err := q.findOffice(ctx, id)
	if err != nil {
		return nil, err
	}

	total := q.calculator.CalculatePrice(o.BasePricePerHour(), d)
	return &QuoteView{
		OfficeID:         o.ID(),
		BasePricePerHour: o.BasePricePerHour(),
		DurationKind:     string(d.Kind()),
		Duration:         d.String(),
		TotalPrice:       total,
		Priceable:        total > 0,
	}, nil
}

func (q *officeQueriesImpl) DurationPackages(_ context.Context) []*DurationPackageView {
	pkgs := booking.Packages()
	views := make([]*DurationPackageView, len(pkgs))
	for i, p := range pkgs {
		views[i] = &DurationPackageView{
			ID:          string(p.ID),
			Name:        p.Name,
			Hours:       p.Hours,
			Multiplier:  p.Multiplier(),
			Description: p.Description,
		}
	}
	return views
}

func (q *officeQueriesImpl) findOffice(ctx context.Context, id uuid.UUID) (*office.Office, error) {
	o, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfficeNotFound
		}
		return nil, errs.Mark(err, ErrOfficeLoad)
	}
	return o, nil
}

func ToOfficeView(o *office.Office) *OfficeView {
	return &OfficeView{
		ID:                 o.ID(),
		Name:               o.Name(),
		Type:               o.Type().String(),
		Location:           o.Location(),
		Address:            o.Address(),
		City:               o.City(),
		Latitude:           o.Latitude(),
		Longitude:          o.Longitude(),
		BasePricePerHour:   o.BasePricePerHour(),
		Capacity:           o.Capacity(),
		Amenities:          o.Amenities(),
		Description:        o.Description(),
		AvailabilityStatus: o.AvailabilityStatus().String(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}
