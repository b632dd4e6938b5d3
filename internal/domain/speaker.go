package domain

// Speaker represents a person presenting talks. Speakers are shared across talks and camps.
type Speaker struct {
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

// FullName joins the non-empty name parts.
func (s *Speaker) FullName() string {
	name := s.FirstName
	for _, part := range []string{s.MiddleName, s.LastName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}
