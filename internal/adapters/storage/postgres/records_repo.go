package postgres

import (
	"context"
	"database/sql"
	"time"

	"novellia-pets/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Create(ctx context.Context, rec records.MedicalRecord) (records.MedicalRecord, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medical_records (pet_id, record_type, name, date, reactions, severity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		rec.PetID,
		string(rec.RecordType),
		rec.Name,
		toNullDate(rec.Date),
		toNullString(rec.Reactions),
		severityToNull(rec.Severity),
		rec.CreatedAt,
		rec.UpdatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return records.MedicalRecord{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, record_type, name, date, reactions, severity, created_at, updated_at
		FROM medical_records
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return records.MedicalRecord{}, records.ErrNotFound
		}
		return records.MedicalRecord{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID int64) ([]records.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, record_type, name, date, reactions, severity, created_at, updated_at
		FROM medical_records
		WHERE pet_id = $1
		ORDER BY date DESC NULLS LAST, created_at DESC, id DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.MedicalRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func (r *RecordsRepo) Update(ctx context.Context, rec records.MedicalRecord) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_records
		SET
			record_type = $2,
			name = $3,
			date = $4,
			reactions = $5,
			severity = $6,
			updated_at = $7
		WHERE id = $1
	`,
		rec.ID,
		string(rec.RecordType),
		rec.Name,
		toNullDate(rec.Date),
		toNullString(rec.Reactions),
		severityToNull(rec.Severity),
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (r *RecordsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

// scanRecord maps one row through either sql.Row.Scan or sql.Rows.Scan.
func scanRecord(scan func(dest ...any) error) (records.MedicalRecord, error) {
	var rec records.MedicalRecord
	var rt string
	var date sql.NullTime
	var reactions, severity sql.NullString

	if err := scan(
		&rec.ID,
		&rec.PetID,
		&rt,
		&rec.Name,
		&date,
		&reactions,
		&severity,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return records.MedicalRecord{}, err
	}

	rec.RecordType = records.RecordType(rt)
	if date.Valid {
		t := date.Time
		rec.Date = &t
	}
	if reactions.Valid {
		s := reactions.String
		rec.Reactions = &s
	}
	if severity.Valid {
		s := records.Severity(severity.String)
		rec.Severity = &s
	}

	return rec, nil
}

// date is a DATE column; NullTime keeps the null round trip simple.
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func severityToNull(s *records.Severity) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*s), Valid: true}
}
