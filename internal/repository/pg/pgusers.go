package pg

import (
	"database/sql"
	"errors"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
)

// GetUserByStudentID returns (nil, nil) when no document exists for the
// student, a valid state for a first login, distinct from a fetch failure.
func (r *Repository) GetUserByStudentID(studentID string) (*model.User, error) {
	var user model.User

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		row := db.QueryRow(`SELECT id, student_id, password, reward_points, created_at
		FROM users WHERE student_id = $1`, studentID)

		return row.Scan(&user.ID, &user.StudentID, &user.Password, &user.RewardPoints, &user.CreatedAt)
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) CreateUser(user model.User) (int64, error) {
	var userID int64

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		row := db.QueryRow(`INSERT INTO users (student_id, password, reward_points) VALUES ($1, $2, $3) RETURNING id`,
			user.StudentID,
			user.Password,
			user.RewardPoints,
		)

		return row.Scan(&userID)
	})

	if err != nil {
		return 0, err
	}

	return userID, nil
}

// GetRewardState assembles the full per-user document: balance plus the
// receipt history.
func (r *Repository) GetRewardState(studentID string) (*model.RewardState, error) {
	user, err := r.GetUserByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	receipts, err := r.GetReceiptsByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.RewardState{
		StudentID:    user.StudentID,
		RewardPoints: user.RewardPoints,
		Receipts:     receipts,
	}, nil
}
