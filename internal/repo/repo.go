// Package repo is the Postgres-backed user store. Only account data and
// per-user design preferences are persisted; calculation inputs and results
// are transient by design.
package repo

import (
	"context"
	"database/sql"
)

// Profile is a user account plus their saved design defaults, applied when a
// new calculation does not name its own climate conditions.
type Profile struct {
	ID            int     `json:"id"`
	Login         string  `json:"login"`
	Email         string  `json:"email"`
	Description   string  `json:"description,omitempty"`
	ClimateZone   string  `json:"climate_zone,omitempty"`
	IndoorWinterF float64 `json:"indoor_winter_f,omitempty"`
	IndoorSummerF float64 `json:"indoor_summer_f,omitempty"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, passwordHash string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) error
	UpdateDesignDefaults(ctx context.Context, id int, zone string, indoorWinterF, indoorSummerF float64) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, passwordHash string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, passwordHash).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string
	query := "SELECT id, password FROM users WHERE login=$1"
	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	var description, zone sql.NullString
	var winter, summer sql.NullFloat64
	query := `SELECT id, login, email, description, climate_zone, indoor_winter_f, indoor_summer_f
		FROM users WHERE id=$1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Login, &p.Email, &description, &zone, &winter, &summer)
	if err != nil {
		return Profile{}, err
	}
	p.Description = description.String
	p.ClimateZone = zone.String
	p.IndoorWinterF = winter.Float64
	p.IndoorSummerF = summer.Float64
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) error {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, login, description)
	return err
}

func (r *PostgresUserRepository) UpdateDesignDefaults(ctx context.Context, id int, zone string, indoorWinterF, indoorSummerF float64) error {
	query := "UPDATE users SET climate_zone=$2, indoor_winter_f=$3, indoor_summer_f=$4 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, zone, indoorWinterF, indoorSummerF)
	return err
}
