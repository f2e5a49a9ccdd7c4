package pg

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
)

func TestRepository_GetReceiptsByUserID(t *testing.T) {
	repo, mock := newRepoFixture(t)

	date := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	uploaded := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, merchant, total, date, uploaded_at")).
		WithArgs(int64(7)).
		WillReturnRows(receiptColumns().
			AddRow(1, 7, "Campus Store", "42.00", date, uploaded).
			AddRow(2, 7, "Not found", "5.00", nil, uploaded))

	receipts, err := repo.GetReceiptsByUserID(7)

	require.NoError(t, err)
	require.Len(t, receipts, 2)
	require.NotNil(t, receipts[0].Date)
	assert.Equal(t, date, *receipts[0].Date)
	assert.Nil(t, receipts[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetReceiptsByUserID_Empty(t *testing.T) {
	repo, mock := newRepoFixture(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, merchant, total, date, uploaded_at")).
		WithArgs(int64(7)).
		WillReturnRows(receiptColumns())

	receipts, err := repo.GetReceiptsByUserID(7)

	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestRepository_SubmitReceipt(t *testing.T) {
	repo, mock := newRepoFixture(t)

	date := time.Date(2025, time.April, 18, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET reward_points = $1, updated_at = now() WHERE id = $2")).
		WithArgs(int64(680), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO receipts (user_id, merchant, total, date) VALUES ($1, $2, $3, $4)")).
		WithArgs(int64(7), "Campus Store", "42.00", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SubmitReceipt(7, model.Receipt{
		Merchant: "Campus Store",
		Total:    "42.00",
		Date:     &date,
	}, 680)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SubmitReceipt_UserGone(t *testing.T) {
	repo, mock := newRepoFixture(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET reward_points = $1, updated_at = now() WHERE id = $2")).
		WithArgs(int64(680), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.SubmitReceipt(7, model.Receipt{Total: "42.00"}, 680)

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SubmitReceipt_NoRetryOnWriteTransaction(t *testing.T) {
	repo, mock := newRepoFixture(t)

	// a retriable-classed failure is not replayed for writes
	mock.ExpectBegin().WillReturnError(&pgconn.PgError{Code: "08006"})

	err := repo.SubmitReceipt(7, model.Receipt{Total: "42.00"}, 680)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RedeemReward(t *testing.T) {
	repo, mock := newRepoFixture(t)

	redeemedAt := time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT reward_points FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"reward_points"}).AddRow(250))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET reward_points = reward_points - $1, updated_at = now() WHERE id = $2")).
		WithArgs(int64(200), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO redemptions (id, user_id, reward, cost, code, redeemed_at) VALUES ($1, $2, $3, $4, $5, $6)")).
		WithArgs("redemption-id", int64(7), "Free lanyard", int64(200), "#SB1234", redeemedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.RedeemReward(model.Redemption{
		ID:         "redemption-id",
		UserID:     7,
		Reward:     "Free lanyard",
		Cost:       200,
		Code:       "#SB1234",
		RedeemedAt: redeemedAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RedeemReward_InsufficientPoints(t *testing.T) {
	repo, mock := newRepoFixture(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT reward_points FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"reward_points"}).AddRow(100))
	mock.ExpectRollback()

	err := repo.RedeemReward(model.Redemption{UserID: 7, Cost: 200})

	assert.ErrorIs(t, err, model.ErrInsufficientPoints)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RedeemReward_UnknownUser(t *testing.T) {
	repo, mock := newRepoFixture(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT reward_points FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"reward_points"}))
	mock.ExpectRollback()

	err := repo.RedeemReward(model.Redemption{UserID: 9, Cost: 200})

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
