package students

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/students/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type UpsertStudent struct {
	WalletAddress string
	Name          string
	Email         string
	DepartmentID  int64
	InstitutionID int64
	Year          int
	Status        string
}

const studentCols = "id, wallet_address, name, email, department_id, institution_id, year, status, date_added"

func (r *Repo) Create(ctx context.Context, in UpsertStudent) (*domain.Student, error) {
	if in.WalletAddress == "" {
		return nil, fmt.Errorf("wallet_address required")
	}
	if in.Status == "" {
		in.Status = domain.StatusActive
	}
	if !domain.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}

	const q = `
insert into students (id, wallet_address, name, email, department_id, institution_id, year, status)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning ` + studentCols + `;
`
	var s domain.Student
	err := r.db.QueryRow(ctx, q,
		domain.NewStudentID(), in.WalletAddress, in.Name, in.Email,
		in.DepartmentID, in.InstitutionID, in.Year, in.Status,
	).Scan(&s.ID, &s.WalletAddress, &s.Name, &s.Email, &s.DepartmentID, &s.InstitutionID, &s.Year, &s.Status, &s.DateAdded)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return &s, nil
}

// CreateBatch inserts a bulk-upload roster in one transaction. All rows are
// inserted or none.
func (r *Repo) CreateBatch(ctx context.Context, in []UpsertStudent) ([]domain.Student, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
insert into students (id, wallet_address, name, email, department_id, institution_id, year, status)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning ` + studentCols + `;
`
	out := make([]domain.Student, 0, len(in))
	for _, u := range in {
		if u.Status == "" {
			u.Status = domain.StatusActive
		}
		if !domain.ValidStatus(u.Status) {
			return nil, domain.ErrInvalidStatus
		}

		var s domain.Student
		err := tx.QueryRow(ctx, q,
			domain.NewStudentID(), u.WalletAddress, u.Name, u.Email,
			u.DepartmentID, u.InstitutionID, u.Year, u.Status,
		).Scan(&s.ID, &s.WalletAddress, &s.Name, &s.Email, &s.DepartmentID, &s.InstitutionID, &s.Year, &s.Status, &s.DateAdded)
		if err != nil {
			return nil, fmt.Errorf("batch insert: %w", err)
		}
		out = append(out, s)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, id string, in UpsertStudent) (*domain.Student, error) {
	if !domain.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}

	const q = `
update students
set wallet_address = $2, name = $3, email = $4, department_id = $5,
    institution_id = $6, year = $7, status = $8
where id = $1
returning ` + studentCols + `;
`
	var s domain.Student
	err := r.db.QueryRow(ctx, q, id,
		in.WalletAddress, in.Name, in.Email,
		in.DepartmentID, in.InstitutionID, in.Year, in.Status,
	).Scan(&s.ID, &s.WalletAddress, &s.Name, &s.Email, &s.DepartmentID, &s.InstitutionID, &s.Year, &s.Status, &s.DateAdded)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	return &s, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx, `delete from students where id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// GetByWallet matches case-insensitively; wallet addresses arrive in mixed
// case depending on the wallet that produced them.
func (r *Repo) GetByWallet(ctx context.Context, walletAddress string) (*domain.Student, error) {
	const q = `
select ` + studentCols + `
from students
where lower(wallet_address) = lower($1);
`
	var s domain.Student
	err := r.db.QueryRow(ctx, q, walletAddress).
		Scan(&s.ID, &s.WalletAddress, &s.Name, &s.Email, &s.DepartmentID, &s.InstitutionID, &s.Year, &s.Status, &s.DateAdded)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get student by wallet: %w", err)
	}
	return &s, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Student, error) {
	return r.list(ctx, `select `+studentCols+` from students order by date_added desc;`)
}

func (r *Repo) ListByDepartment(ctx context.Context, departmentID int64) ([]domain.Student, error) {
	return r.list(ctx, `select `+studentCols+` from students where department_id = $1 order by date_added desc;`, departmentID)
}

func (r *Repo) ListByInstitution(ctx context.Context, institutionID int64) ([]domain.Student, error) {
	return r.list(ctx, `select `+studentCols+` from students where institution_id = $1 order by date_added desc;`, institutionID)
}

func (r *Repo) list(ctx context.Context, q string, args ...any) ([]domain.Student, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Student, 0, 16)
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.WalletAddress, &s.Name, &s.Email, &s.DepartmentID, &s.InstitutionID, &s.Year, &s.Status, &s.DateAdded); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
