package repository

import (
	"database/sql"
	"strings"

	"signalist/internal/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// AllForDigest returns every user eligible for the daily briefing. Profiles
// without an email or name never enter the pipeline.
func (r *UserRepository) AllForDigest() ([]model.User, error) {
	rows, err := r.db.Query(`
		SELECT id, email, name,
			COALESCE(country, ''), COALESCE(investment_goals, ''),
			COALESCE(risk_tolerance, ''), COALESCE(preferred_industry, '')
		FROM app_user
		WHERE email <> '' AND name <> ''
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Country, &u.InvestmentGoals, &u.RiskTolerance, &u.PreferredIndustry)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) DigestUserCount() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM app_user WHERE email <> '' AND name <> ''
	`).Scan(&total)
	return total, err
}

func (r *UserRepository) UserIDByEmail(email string) (string, error) {
	var id string
	err := r.db.QueryRow(`
		SELECT id FROM app_user WHERE email = $1
	`, email).Scan(&id)

	if err == sql.ErrNoRows {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return id, nil
}

// SymbolsByUserEmail resolves a user's watchlist. An unknown email yields an
// empty set, not an error.
func (r *UserRepository) SymbolsByUserEmail(email string) ([]string, error) {
	if email == "" {
		return nil, nil
	}

	rows, err := r.db.Query(`
		SELECT w.symbol
		FROM watchlist w
		JOIN app_user u ON u.id = w.user_id
		WHERE u.email = $1
		ORDER BY w.added_at
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, err
		}
		symbols = append(symbols, symbol)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return symbols, nil
}

func (r *UserRepository) AddToWatchlist(email, symbol, company string) (bool, error) {
	userID, err := r.UserIDByEmail(email)
	if err != nil {
		return false, err
	}
	if userID == "" {
		return false, nil
	}

	_, err = r.db.Exec(`
		INSERT INTO watchlist(user_id, symbol, company)
		VALUES($1, $2, $3)
		ON CONFLICT (user_id, symbol) DO NOTHING
	`, userID, strings.ToUpper(strings.TrimSpace(symbol)), strings.TrimSpace(company))
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *UserRepository) RemoveFromWatchlist(email, symbol string) (bool, error) {
	userID, err := r.UserIDByEmail(email)
	if err != nil {
		return false, err
	}
	if userID == "" {
		return false, nil
	}

	_, err = r.db.Exec(`
		DELETE FROM watchlist WHERE user_id = $1 AND symbol = $2
	`, userID, strings.ToUpper(strings.TrimSpace(symbol)))
	if err != nil {
		return false, err
	}

	return true, nil
}
