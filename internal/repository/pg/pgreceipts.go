package pg

import (
	"database/sql"
	"errors"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
)

func (r *Repository) GetReceiptsByUserID(userID int64) ([]model.Receipt, error) {
	result := make([]model.Receipt, 0)

	err := r.executeWithRetryConnection(func(db *sql.DB) error {
		query := `SELECT id, user_id, merchant, total, date, uploaded_at
		FROM receipts WHERE user_id = $1 ORDER BY uploaded_at ASC, id ASC`

		rows, err := db.Query(query, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var receipt model.Receipt
			var date sql.NullTime

			if err := rows.Scan(&receipt.ID, &receipt.UserID, &receipt.Merchant, &receipt.Total, &date, &receipt.UploadedAt); err != nil {
				return err
			}
			if date.Valid {
				receipt.Date = &date.Time
			}

			result = append(result, receipt)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// SubmitReceipt appends the receipt and writes the updated balance in one
// transaction. Nothing is stored when the user row is gone. The transaction
// runs exactly once: a replay after an ambiguous commit outcome could append
// the receipt twice.
func (r *Repository) SubmitReceipt(userID int64, receipt model.Receipt, newPoints int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE users SET reward_points = $1, updated_at = now() WHERE id = $2`,
		newPoints,
		userID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}

	_, err = tx.Exec(`INSERT INTO receipts (user_id, merchant, total, date) VALUES ($1, $2, $3, $4)`,
		userID,
		receipt.Merchant,
		receipt.Total,
		receipt.Date,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// RedeemReward debits the reward cost and records the redemption in one
// transaction. The balance is re-checked under lock so a concurrent debit
// cannot drive the balance negative. The transaction runs exactly once for
// the same reason SubmitReceipt does: a replay could debit twice.
func (r *Repository) RedeemReward(redemption model.Redemption) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var points int64
	row := tx.QueryRow(`SELECT reward_points FROM users WHERE id = $1 FOR UPDATE`, redemption.UserID)
	if err := row.Scan(&points); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrUserNotFound
		}
		return err
	}

	if points < redemption.Cost {
		return model.ErrInsufficientPoints
	}

	_, err = tx.Exec(`UPDATE users SET reward_points = reward_points - $1, updated_at = now() WHERE id = $2`,
		redemption.Cost,
		redemption.UserID,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO redemptions (id, user_id, reward, cost, code, redeemed_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		redemption.ID,
		redemption.UserID,
		redemption.Reward,
		redemption.Cost,
		redemption.Code,
		redemption.RedeemedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}
