package controllers

import (
	"net/url"
	"regexp"
	"time"

	"corecodecamp/internal/domain"
)

// monikerRegex limits monikers to characters that form a clean URL path segment.
var monikerRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

const campsBasePath = "/api/camps"

// reservedMonikers are literal routes under campsBasePath. The mux matches them
// case-sensitively ahead of /api/camps/{moniker}.
var reservedMonikers = map[string]struct{}{
	"search": {},
}

// CampLocation returns the resource path of the camp with the given moniker.
// ok is false when the moniker cannot form a location that resolves to the camp.
func CampLocation(moniker string) (location string, ok bool) {
	if !monikerRegex.MatchString(moniker) {
		return "", false
	}
	if _, reserved := reservedMonikers[moniker]; reserved {
		return "", false
	}
	return campsBasePath + "/" + url.PathEscape(moniker), true
}

// CampModel is the transport shape of a camp. The nested location is flattened:
// venue carries Location.VenueName and location_* carry the address fields.
// swagger:model CampModel
type CampModel struct {
	Moniker               string      `json:"moniker"`
	Name                  string      `json:"name"`
	Description           string      `json:"description"`
	StartDate             string      `json:"start_date"`
	EndDate               string      `json:"end_date"`
	Venue                 string      `json:"venue"`
	LocationAddress1      string      `json:"location_address1"`
	LocationAddress2      string      `json:"location_address2"`
	LocationAddress3      string      `json:"location_address3"`
	LocationCityTown      string      `json:"location_city_town"`
	LocationStateProvince string      `json:"location_state_province"`
	LocationPostalCode    string      `json:"location_postal_code"`
	LocationCountry       string      `json:"location_country"`
	Talks                 []TalkModel `json:"talks,omitzero"`
}

// TalkModel is the transport shape of a talk.
// swagger:model TalkModel
type TalkModel struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title"`
	Abstract string        `json:"abstract"`
	Level    int           `json:"level"`
	Speaker  *SpeakerModel `json:"speaker,omitempty"`
}

// SpeakerModel is the transport shape of a speaker.
// swagger:model SpeakerModel
type SpeakerModel struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company"`
	CompanyURL string `json:"company_url"`
	BlogURL    string `json:"blog_url"`
	Twitter    string `json:"twitter"`
	GitHub     string `json:"github"`
	Bio        string `json:"bio"`
}

// NewCampModel maps a camp to its transport shape. Talks are only included when
// includeTalks is set; an included but empty list is rendered as [].
func NewCampModel(c *domain.Camp, includeTalks bool) CampModel {
	m := CampModel{
		Moniker:               c.Moniker,
		Name:                  c.Name,
		Description:           c.Description,
		StartDate:             formatDate(c.StartDate),
		EndDate:               formatDate(c.EndDate),
		Venue:                 c.Location.VenueName,
		LocationAddress1:      c.Location.Address1,
		LocationAddress2:      c.Location.Address2,
		LocationAddress3:      c.Location.Address3,
		LocationCityTown:      c.Location.CityTown,
		LocationStateProvince: c.Location.StateProvince,
		LocationPostalCode:    c.Location.PostalCode,
		LocationCountry:       c.Location.Country,
	}
	if includeTalks {
		m.Talks = NewTalkModels(c.Talks)
	}
	return m
}

// NewCampModels maps a list of camps. The result is never nil.
func NewCampModels(camps []*domain.Camp, includeTalks bool) []CampModel {
	out := make([]CampModel, 0, len(camps))
	for _, c := range camps {
		out = append(out, NewCampModel(c, includeTalks))
	}
	return out
}

// NewTalkModel maps a talk and its speaker, if any.
func NewTalkModel(t *domain.Talk) TalkModel {
	m := TalkModel{
		ID:       t.ID,
		Title:    t.Title,
		Abstract: t.Abstract,
		Level:    t.Level,
	}
	if t.Speaker != nil {
		s := NewSpeakerModel(t.Speaker)
		m.Speaker = &s
	}
	return m
}

// NewTalkModels maps a list of talks. The result is never nil.
func NewTalkModels(talks []*domain.Talk) []TalkModel {
	out := make([]TalkModel, 0, len(talks))
	for _, t := range talks {
		out = append(out, NewTalkModel(t))
	}
	return out
}

func NewSpeakerModel(s *domain.Speaker) SpeakerModel {
	return SpeakerModel{
		ID:         s.ID,
		FirstName:  s.FirstName,
		MiddleName: s.MiddleName,
		LastName:   s.LastName,
		Company:    s.Company,
		CompanyURL: s.CompanyURL,
		BlogURL:    s.BlogURL,
		Twitter:    s.Twitter,
		GitHub:     s.GitHub,
		Bio:        s.Bio,
	}
}

// Validate implements Validator for create requests.
func (m CampModel) Validate() []string {
	var errs []string
	if m.Moniker == "" {
		errs = append(errs, "moniker is required")
	}
	if m.Name == "" {
		errs = append(errs, "name is required")
	} else if len(m.Name) > 100 {
		errs = append(errs, "name must be at most 100 characters")
	}
	start, startErr := time.Parse(time.DateOnly, m.StartDate)
	if m.StartDate == "" {
		errs = append(errs, "start_date is required")
	} else if startErr != nil {
		errs = append(errs, "start_date must be a date (YYYY-MM-DD)")
	}
	if m.EndDate != "" {
		end, err := time.Parse(time.DateOnly, m.EndDate)
		if err != nil {
			errs = append(errs, "end_date must be a date (YYYY-MM-DD)")
		} else if startErr == nil && end.Before(start) {
			errs = append(errs, "end_date must not be before start_date")
		}
	}
	if m.Talks != nil {
		errs = append(errs, "talks cannot be set when creating a camp")
	}
	return errs
}

// ToCamp builds a new camp entity from a validated create request.
// A missing end date makes a single-day camp.
func (m CampModel) ToCamp() *domain.Camp {
	start, _ := time.Parse(time.DateOnly, m.StartDate)
	end := start
	if m.EndDate != "" {
		end, _ = time.Parse(time.DateOnly, m.EndDate)
	}
	return domain.NewCamp(m.Moniker, m.Name, m.Description, start, end, domain.Location{
		VenueName:     m.Venue,
		Address1:      m.LocationAddress1,
		Address2:      m.LocationAddress2,
		Address3:      m.LocationAddress3,
		CityTown:      m.LocationCityTown,
		StateProvince: m.LocationStateProvince,
		PostalCode:    m.LocationPostalCode,
		Country:       m.LocationCountry,
	})
}

// UpdateCampRequest is the request body for PUT /api/camps/{moniker}. All fields are
// optional; omitted or null fields are unchanged. moniker, when present, must match the path.
type UpdateCampRequest struct {
	Moniker               *string `json:"moniker"`
	Name                  *string `json:"name"`
	Description           *string `json:"description"`
	StartDate             *string `json:"start_date"`
	EndDate               *string `json:"end_date"`
	Venue                 *string `json:"venue"`
	LocationAddress1      *string `json:"location_address1"`
	LocationAddress2      *string `json:"location_address2"`
	LocationAddress3      *string `json:"location_address3"`
	LocationCityTown      *string `json:"location_city_town"`
	LocationStateProvince *string `json:"location_state_province"`
	LocationPostalCode    *string `json:"location_postal_code"`
	LocationCountry       *string `json:"location_country"`
}

// Validate implements Validator. Only present fields are checked.
func (u UpdateCampRequest) Validate() []string {
	var errs []string
	if u.Name != nil {
		if *u.Name == "" {
			errs = append(errs, "name must not be empty")
		} else if len(*u.Name) > 100 {
			errs = append(errs, "name must be at most 100 characters")
		}
	}
	if u.StartDate != nil {
		if _, err := time.Parse(time.DateOnly, *u.StartDate); err != nil {
			errs = append(errs, "start_date must be a date (YYYY-MM-DD)")
		}
	}
	if u.EndDate != nil {
		if _, err := time.Parse(time.DateOnly, *u.EndDate); err != nil {
			errs = append(errs, "end_date must be a date (YYYY-MM-DD)")
		}
	}
	return errs
}

// Patch converts a validated request into a domain patch.
func (u UpdateCampRequest) Patch() domain.CampPatch {
	return domain.CampPatch{
		Moniker:       u.Moniker,
		Name:          u.Name,
		Description:   u.Description,
		StartDate:     parseDatePtr(u.StartDate),
		EndDate:       parseDatePtr(u.EndDate),
		VenueName:     u.Venue,
		Address1:      u.LocationAddress1,
		Address2:      u.LocationAddress2,
		Address3:      u.LocationAddress3,
		CityTown:      u.LocationCityTown,
		StateProvince: u.LocationStateProvince,
		PostalCode:    u.LocationPostalCode,
		Country:       u.LocationCountry,
	}
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
