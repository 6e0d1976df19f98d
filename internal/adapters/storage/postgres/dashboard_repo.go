package postgres

import (
	"context"
	"database/sql"
	"time"

	"novellia-pets/internal/domain/dashboard"
	"novellia-pets/internal/domain/records"
)

type DashboardRepo struct {
	db *sql.DB
}

func NewDashboardRepo(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) CountPets(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n)
	return n, err
}

func (r *DashboardRepo) CountPetsByType(ctx context.Context) ([]dashboard.AnimalTypeCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT animal_type, COUNT(*) AS n
		FROM pets
		GROUP BY animal_type
		ORDER BY n DESC, animal_type ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.AnimalTypeCount, 0)
	for rows.Next() {
		var c dashboard.AnimalTypeCount
		if err := rows.Scan(&c.AnimalType, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) CountRecords(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM medical_records`).Scan(&n)
	return n, err
}

func (r *DashboardRepo) CountRecordsByType(ctx context.Context) ([]dashboard.RecordTypeCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT record_type, COUNT(*) AS n
		FROM medical_records
		GROUP BY record_type
		ORDER BY n DESC, record_type ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.RecordTypeCount, 0)
	for rows.Next() {
		var c dashboard.RecordTypeCount
		if err := rows.Scan(&c.RecordType, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) UpcomingVaccines(ctx context.Context, from, to time.Time, limit int) ([]dashboard.PetRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			mr.id, mr.pet_id, mr.record_type, mr.name, mr.date, mr.reactions, mr.severity,
			mr.created_at, mr.updated_at,
			p.name, p.animal_type
		FROM medical_records mr
		JOIN pets p ON p.id = mr.pet_id
		WHERE mr.record_type = 'vaccine'
		  AND mr.date BETWEEN $1 AND $2
		ORDER BY mr.date ASC, mr.id ASC
		LIMIT $3
	`, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPetRecords(rows)
}

func (r *DashboardRepo) RecentRecords(ctx context.Context, limit int) ([]dashboard.PetRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			mr.id, mr.pet_id, mr.record_type, mr.name, mr.date, mr.reactions, mr.severity,
			mr.created_at, mr.updated_at,
			p.name, p.animal_type
		FROM medical_records mr
		JOIN pets p ON p.id = mr.pet_id
		ORDER BY mr.created_at DESC, mr.id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPetRecords(rows)
}

func scanPetRecords(rows *sql.Rows) ([]dashboard.PetRecord, error) {
	out := make([]dashboard.PetRecord, 0)
	for rows.Next() {
		var pr dashboard.PetRecord
		var rt string
		var date sql.NullTime
		var reactions, severity sql.NullString

		if err := rows.Scan(
			&pr.Record.ID,
			&pr.Record.PetID,
			&rt,
			&pr.Record.Name,
			&date,
			&reactions,
			&severity,
			&pr.Record.CreatedAt,
			&pr.Record.UpdatedAt,
			&pr.PetName,
			&pr.AnimalType,
		); err != nil {
			return nil, err
		}

		pr.Record.RecordType = records.RecordType(rt)
		if date.Valid {
			t := date.Time
			pr.Record.Date = &t
		}
		if reactions.Valid {
			s := reactions.String
			pr.Record.Reactions = &s
		}
		if severity.Valid {
			s := records.Severity(severity.String)
			pr.Record.Severity = &s
		}

		out = append(out, pr)
	}
	return out, rows.Err()
}
