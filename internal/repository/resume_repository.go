package repository

import (
	"context"
	"database/sql"

	"github.com/smartprofile/backend/internal/model"
)

type ResumeRepo struct{ DB *sql.DB }

func NewResumeRepo(db *sql.DB) *ResumeRepo { return &ResumeRepo{DB: db} }

// Create inserts one generation record and returns its ID. The caller is
// expected to pass sanitized inputs and a clamped length.
func (r *ResumeRepo) Create(ctx context.Context, res *model.Resume) (uint64, error) {
	out, err := r.DB.ExecContext(ctx,
		"INSERT INTO resumes (user_id, skills, role, tone, experience, length, summary) VALUES (?,?,?,?,?,?,?)",
		res.UserID, res.Skills, res.Role, res.Tone, res.Experience, res.Length, res.Summary)
	if err != nil {
		return 0, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByUser returns all records owned by userID, newest first. An owner with
// no records gets an empty slice, not an error.
func (r *ResumeRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Resume, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,skills,role,tone,experience,length,summary,created_at FROM resumes WHERE user_id=? ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Resume, 0)
	for rows.Next() {
		var res model.Resume
		if err := rows.Scan(&res.ID, &res.UserID, &res.Skills, &res.Role, &res.Tone,
			&res.Experience, &res.Length, &res.Summary, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
