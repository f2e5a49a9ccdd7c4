package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
	"github.com/LeonardoLujan/gamified-savings-app/pgk/auth"
)

// signupBonusPoints is the starting balance granted when a student logs
// in for the first time.
const signupBonusPoints = 600

type StorageRepo interface {
	GetUserByStudentID(studentID string) (*model.User, error)
	CreateUser(user model.User) (int64, error)
	GetReceiptsByUserID(userID int64) ([]model.Receipt, error)
	SubmitReceipt(userID int64, receipt model.Receipt, newPoints int64) error
	GetRewardState(studentID string) (*model.RewardState, error)
	RedeemReward(redemption model.Redemption) error
}

type PasswordRepo interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// TextExtractor is the OCR collaborator: base64 image in, recognized text
// out. An empty string is a valid result meaning no text was found.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageBase64 string) (string, error)
}

// WatchRepo delivers full reward-state snapshots whenever the user's
// document changes at the store.
type WatchRepo interface {
	Subscribe(studentID string) (<-chan model.RewardState, func())
}

// inflightGuard enforces a single in-flight scan or submission per
// student, so rapid repeated triggers cannot double-submit.
type inflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func (g *inflightGuard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

func (g *inflightGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.active, key)
}

type Service struct {
	storage  StorageRepo
	password PasswordRepo
	ocr      TextExtractor
	watcher  WatchRepo

	lg *zap.SugaredLogger

	tokenSecret string
	tokenExp    time.Duration

	inflight inflightGuard
	codes    CodeSource
	now      func() time.Time
}

func New(s StorageRepo, p PasswordRepo, ocr TextExtractor, w WatchRepo, lg *zap.SugaredLogger, tokenExp time.Duration, tokenSecret string) *Service {
	return &Service{
		storage:  s,
		password: p,
		ocr:      ocr,
		watcher:  w,

		lg: lg,

		tokenExp:    tokenExp,
		tokenSecret: tokenSecret,

		inflight: inflightGuard{active: make(map[string]struct{})},
		codes:    globalRandSource{},
		now:      time.Now,
	}
}

// NewWithDeps builds a Service with an injected code source and clock for
// deterministic tests.
func NewWithDeps(s StorageRepo, p PasswordRepo, ocr TextExtractor, w WatchRepo, lg *zap.SugaredLogger, tokenExp time.Duration, tokenSecret string, codes CodeSource, now func() time.Time) *Service {
	svc := New(s, p, ocr, w, lg, tokenExp, tokenSecret)
	svc.codes = codes
	svc.now = now
	return svc
}

// Login signs a student in, creating the account with the signup bonus
// balance when the student id is unknown. A wrong password on an existing
// account is rejected without any state change.
func (s *Service) Login(input model.LoginDTO) (string, *model.APIError) {
	input.StudentID = strings.TrimSpace(input.StudentID)

	if err := validateLoginDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	user, err := s.storage.GetUserByStudentID(input.StudentID)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	if user == nil {
		passwordHash, err := s.password.HashPassword(input.Password)
		if err != nil {
			return "", &model.APIError{
				Code:    http.StatusInternalServerError,
				Message: model.ErrInternalServerMessage,
			}
		}

		userID, err := s.storage.CreateUser(model.User{
			StudentID:    input.StudentID,
			Password:     passwordHash,
			RewardPoints: signupBonusPoints,
		})
		if err != nil {
			return "", &model.APIError{
				Code:    http.StatusInternalServerError,
				Message: model.ErrInternalServerMessage,
			}
		}

		user = &model.User{ID: userID, StudentID: input.StudentID}
	} else if !s.password.CheckPasswordHash(input.Password, user.Password) {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidIDOrPasswordMessage,
		}
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:        user.ID,
		StudentID: user.StudentID,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return token, nil
}

// ScanReceipt runs the OCR collaborator over the uploaded image and parses
// the recognized text. An OCR transport failure is not fatal: the pipeline
// continues with empty text and the response carries the no-text message.
func (s *Service) ScanReceipt(ctx context.Context, studentID string, input model.ScanReceiptDTO) (*model.ScanReceiptResponse, *model.APIError) {
	if !s.inflight.acquire(studentID) {
		return nil, &model.APIError{
			Code:    http.StatusConflict,
			Message: model.ErrScanInFlightMessage,
		}
	}
	defer s.inflight.release(studentID)

	text, err := s.ocr.ExtractText(ctx, input.Image)
	if err != nil {
		s.lg.Errorf("text extraction failed: %v", err)
		text = ""
	}

	parsed := ParseReceiptText(text)

	response := &model.ScanReceiptResponse{
		Text:     text,
		Merchant: parsed.Merchant,
		Total:    parsed.Total,
		Date:     parsed.Date,
	}
	if strings.TrimSpace(text) == "" {
		response.Message = model.NoTextDetectedMessage
	}

	return response, nil
}

// SubmitReceipt resolves the parsed fields, runs the accrual engine
// against the stored receipt history and persists the new receipt together
// with the updated balance as one atomic write. Nothing is stored when the
// total cannot be resolved or the user record is missing.
func (s *Service) SubmitReceipt(studentID string, input model.SubmitReceiptDTO) (*model.SubmitReceiptResponse, *model.APIError) {
	if !s.inflight.acquire(studentID) {
		return nil, &model.APIError{
			Code:    http.StatusConflict,
			Message: model.ErrScanInFlightMessage,
		}
	}
	defer s.inflight.release(studentID)

	merchant := strings.TrimSpace(input.Merchant)
	if merchant == "" {
		merchant = NotFound
	}

	parsed := ParsedReceipt{
		Merchant: merchant,
		Total:    strings.TrimSpace(input.Total),
		Date:     input.Date,
	}

	amount, ok := parsed.Amount()
	if !ok {
		return nil, &model.APIError{
			Code:    http.StatusUnprocessableEntity,
			Message: model.ErrTotalNotResolvedMessage,
		}
	}

	user, err := s.storage.GetUserByStudentID(studentID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}
	if user == nil {
		return nil, &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrUserNotFoundMessage,
		}
	}

	receipts, err := s.storage.GetReceiptsByUserID(user.ID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	result := Accrue(amount, receipts, user.RewardPoints, s.now())

	var date *time.Time
	if resolved, ok := parsed.ResolvedDate(); ok {
		date = &resolved
	}

	receipt := model.Receipt{
		UserID:   user.ID,
		Merchant: merchant,
		Total:    fmt.Sprintf("%.2f", amount),
		Date:     date,
	}

	if err := s.storage.SubmitReceipt(user.ID, receipt, result.NewPoints); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return &model.SubmitReceiptResponse{
		BonusPoints: result.BonusPoints,
		NewPoints:   result.NewPoints,
	}, nil
}

func (s *Service) GetReceipts(userID int64) ([]model.Receipt, *model.APIError) {
	receipts, err := s.storage.GetReceiptsByUserID(userID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	if len(receipts) == 0 {
		return nil, &model.APIError{
			Code:    http.StatusNoContent,
			Message: model.ErrReceiptsNotFoundMessage,
		}
	}

	return receipts, nil
}

func (s *Service) GetRewardState(studentID string) (*model.RewardState, *model.APIError) {
	state, err := s.storage.GetRewardState(studentID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrUserNotFoundMessage,
			}
		}
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return state, nil
}

// GetCatalog returns the reward ladder annotated for the student's
// current balance.
func (s *Service) GetCatalog(studentID string) ([]model.CatalogReward, *model.APIError) {
	user, err := s.storage.GetUserByStudentID(studentID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}
	if user == nil {
		return nil, &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrUserNotFoundMessage,
		}
	}

	return AnnotatedCatalog(user.RewardPoints), nil
}

// Redeem debits the reward cost and produces a redemption code. The code
// is generated only after the balance check passes; an unaffordable reward
// produces no code and no debit. The debit and the redemption record are
// written in one transaction.
func (s *Service) Redeem(studentID string, input model.RedeemDTO) (*model.Redemption, *model.APIError) {
	reward, ok := RewardByLevel(input.Level)
	if !ok {
		return nil, &model.APIError{
			Code:    http.StatusUnprocessableEntity,
			Message: model.ErrUnknownRewardMessage,
		}
	}

	user, err := s.storage.GetUserByStudentID(studentID)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}
	if user == nil {
		return nil, &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrUserNotFoundMessage,
		}
	}

	if user.RewardPoints < reward.Cost {
		return nil, &model.APIError{
			Code:    http.StatusPaymentRequired,
			Message: model.ErrInsufficientPointsMessage,
		}
	}

	redemption := model.Redemption{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Reward:     reward.Title,
		Cost:       reward.Cost,
		Code:       NewRedemptionCode(s.codes),
		RedeemedAt: s.now(),
	}

	if err := s.storage.RedeemReward(redemption); err != nil {
		// the balance is re-checked inside the transaction; a concurrent
		// debit can still win the race
		if errors.Is(err, model.ErrInsufficientPoints) {
			return nil, &model.APIError{
				Code:    http.StatusPaymentRequired,
				Message: model.ErrInsufficientPointsMessage,
			}
		}
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return &redemption, nil
}

// Subscribe attaches to the push-based reward-state stream for one
// student. The returned cancel func must be called when done.
func (s *Service) Subscribe(studentID string) (<-chan model.RewardState, func()) {
	return s.watcher.Subscribe(studentID)
}
