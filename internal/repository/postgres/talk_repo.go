package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"corecodecamp/internal/domain"
)

const talkColumns = `t.id, t.camp_id, t.title, t.abstract, t.level,
		s.id, s.first_name, s.middle_name, s.last_name, s.company, s.company_url,
		s.blog_url, s.twitter, s.github, s.bio`

// speakerRow holds the nullable speaker columns of a talks LEFT JOIN speakers row.
type speakerRow struct {
	id                              sql.NullInt64
	firstName, middleName, lastName sql.NullString
	company, companyURL, blogURL    sql.NullString
	twitter, github, bio            sql.NullString
}

func (s *speakerRow) speaker() *domain.Speaker {
	if !s.id.Valid {
		return nil
	}
	return &domain.Speaker{
		ID:         s.id.Int64,
		FirstName:  s.firstName.String,
		MiddleName: s.middleName.String,
		LastName:   s.lastName.String,
		Company:    s.company.String,
		CompanyURL: s.companyURL.String,
		BlogURL:    s.blogURL.String,
		Twitter:    s.twitter.String,
		GitHub:     s.github.String,
		Bio:        s.bio.String,
	}
}

func scanTalk(row rowScanner) (*domain.Talk, error) {
	t := &domain.Talk{}
	var sp speakerRow
	err := row.Scan(
		&t.ID, &t.CampID, &t.Title, &t.Abstract, &t.Level,
		&sp.id, &sp.firstName, &sp.middleName, &sp.lastName, &sp.company, &sp.companyURL,
		&sp.blogURL, &sp.twitter, &sp.github, &sp.bio,
	)
	if err != nil {
		return nil, err
	}
	t.Speaker = sp.speaker()
	return t, nil
}

func (r *campRepository) ListTalksByCampIDs(ctx context.Context, campIDs []int64) ([]*domain.Talk, error) {
	talks := make([]*domain.Talk, 0)
	if len(campIDs) == 0 {
		return talks, nil
	}
	query := `
		SELECT ` + talkColumns + `
		FROM talks t
		LEFT JOIN speakers s ON s.id = t.speaker_id
		WHERE t.camp_id = ANY($1)
		ORDER BY t.camp_id, t.id
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(campIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanTalk(rows)
		if err != nil {
			return nil, err
		}
		talks = append(talks, t)
	}
	return talks, rows.Err()
}

func (r *campRepository) GetTalk(ctx context.Context, campID, talkID int64) (*domain.Talk, error) {
	query := `
		SELECT ` + talkColumns + `
		FROM talks t
		LEFT JOIN speakers s ON s.id = t.speaker_id
		WHERE t.camp_id = $1 AND t.id = $2
	`
	t, err := scanTalk(r.DB.QueryRowContext(ctx, query, campID, talkID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
