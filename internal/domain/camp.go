package domain

import (
	"context"
	"time"
)

// Location is the venue of a camp. It is owned by the camp and stored with it.
type Location struct {
	VenueName     string `json:"venue_name"`
	Address1      string `json:"address1"`
	Address2      string `json:"address2"`
	Address3      string `json:"address3"`
	CityTown      string `json:"city_town"`
	StateProvince string `json:"state_province"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// Camp represents a code camp conference event. Moniker is its only external identity.
type Camp struct {
	ID          int64     `json:"id"`
	Moniker     string    `json:"moniker"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    Location  `json:"location"`
	Talks       []*Talk   `json:"talks,omitempty"`
}

// NewCamp returns a new Camp with the given fields. ID is set by the repository on create.
func NewCamp(moniker, name, description string, startDate, endDate time.Time, location Location) *Camp {
	return &Camp{
		Moniker:     moniker,
		Name:        name,
		Description: description,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    location,
	}
}

// RunsOn reports whether the camp takes place on the calendar day of date.
func (c *Camp) RunsOn(date time.Time) bool {
	day := truncateDay(date)
	start := truncateDay(c.StartDate)
	end := truncateDay(c.EndDate)
	if end.Before(start) {
		end = start
	}
	return !day.Before(start) && !day.After(end)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CampPatch carries the fields of an update. Nil fields are left unchanged.
type CampPatch struct {
	Moniker       *string
	Name          *string
	Description   *string
	StartDate     *time.Time
	EndDate       *time.Time
	VenueName     *string
	Address1      *string
	Address2      *string
	Address3      *string
	CityTown      *string
	StateProvince *string
	PostalCode    *string
	Country       *string
}

// Apply returns a copy of c with the patch applied. Talks are carried over untouched.
func (p CampPatch) Apply(c *Camp) *Camp {
	out := *c
	setString(&out.Name, p.Name)
	setString(&out.Description, p.Description)
	if p.StartDate != nil {
		out.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		out.EndDate = *p.EndDate
	}
	setString(&out.Location.VenueName, p.VenueName)
	setString(&out.Location.Address1, p.Address1)
	setString(&out.Location.Address2, p.Address2)
	setString(&out.Location.Address3, p.Address3)
	setString(&out.Location.CityTown, p.CityTown)
	setString(&out.Location.StateProvince, p.StateProvince)
	setString(&out.Location.PostalCode, p.PostalCode)
	setString(&out.Location.Country, p.Country)
	return &out
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// SameFields reports whether a and b hold the same persisted camp fields.
// Talks and ID are not compared.
func SameFields(a, b *Camp) bool {
	return a.Moniker == b.Moniker &&
		a.Name == b.Name &&
		a.Description == b.Description &&
		truncateDay(a.StartDate).Equal(truncateDay(b.StartDate)) &&
		truncateDay(a.EndDate).Equal(truncateDay(b.EndDate)) &&
		a.Location == b.Location
}

// CampRepository defines the interface for camp and talk storage.
type CampRepository interface {
	List(ctx context.Context) ([]*Camp, error)
	// ListByEventDate returns camps running on the calendar day of date.
	ListByEventDate(ctx context.Context, date time.Time) ([]*Camp, error)
	GetByMoniker(ctx context.Context, moniker string) (*Camp, error)
	// Create inserts the camp and sets its ID. Returns ErrMonikerTaken on a unique violation.
	Create(ctx context.Context, camp *Camp) error
	// Update persists the camp by ID. Returns ErrNoChanges when no row was written.
	Update(ctx context.Context, camp *Camp) error
	// Delete removes the camp by ID. Returns ErrNoChanges when no row was removed and
	// ErrCampHasTalks when talks still reference it.
	Delete(ctx context.Context, id int64) error
	// ListTalksByCampIDs returns the talks (with speakers) of the given camps in a single query.
	ListTalksByCampIDs(ctx context.Context, campIDs []int64) ([]*Talk, error)
	GetTalk(ctx context.Context, campID, talkID int64) (*Talk, error)
}

// CampService defines the business logic for camp resources.
type CampService interface {
	ListCamps(ctx context.Context, includeTalks bool) ([]*Camp, error)
	SearchCampsByDate(ctx context.Context, date time.Time, includeTalks bool) ([]*Camp, error)
	GetCamp(ctx context.Context, moniker string, includeTalks bool) (*Camp, error)
	CreateCamp(ctx context.Context, camp *Camp) error
	UpdateCamp(ctx context.Context, moniker string, patch CampPatch) (*Camp, error)
	DeleteCamp(ctx context.Context, moniker string) error
	ListTalks(ctx context.Context, moniker string) ([]*Talk, error)
	GetTalk(ctx context.Context, moniker string, talkID int64) (*Talk, error)
}
