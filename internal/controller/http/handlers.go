package http

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
	"github.com/LeonardoLujan/gamified-savings-app/pgk/auth"
)

type Service interface {
	Login(input model.LoginDTO) (string, *model.APIError)

	ScanReceipt(ctx context.Context, studentID string, input model.ScanReceiptDTO) (*model.ScanReceiptResponse, *model.APIError)
	SubmitReceipt(studentID string, input model.SubmitReceiptDTO) (*model.SubmitReceiptResponse, *model.APIError)
	GetReceipts(userID int64) ([]model.Receipt, *model.APIError)

	GetRewardState(studentID string) (*model.RewardState, *model.APIError)
	GetCatalog(studentID string) ([]model.CatalogReward, *model.APIError)
	Redeem(studentID string, input model.RedeemDTO) (*model.Redemption, *model.APIError)

	Subscribe(studentID string) (<-chan model.RewardState, func())
}

type Pinger interface {
	Ping() error
}

type Controller struct {
	service Service
	pinger  Pinger
	lg      *zap.SugaredLogger
}

func New(s Service, p Pinger, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
		pinger:  p,
	}
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bearerToken, apiErr := c.service.Login(body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) ScanReceipt(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ScanReceiptDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	scanned, apiErr := c.service.ScanReceipt(r.Context(), auth.GetTokenInfo[model.TokenInfo](r).StudentID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, scanned, http.StatusOK)
}

func (c *Controller) SubmitReceipt(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.SubmitReceiptDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	result, apiErr := c.service.SubmitReceipt(auth.GetTokenInfo[model.TokenInfo](r).StudentID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, result, http.StatusAccepted)
}

func (c *Controller) GetReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, apiErr := c.service.GetReceipts(auth.GetTokenInfo[model.TokenInfo](r).ID)
	if apiErr != nil {
		if apiErr.Code == http.StatusNoContent {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, receipts, http.StatusOK)
}

func (c *Controller) GetRewardState(w http.ResponseWriter, r *http.Request) {
	state, apiErr := c.service.GetRewardState(auth.GetTokenInfo[model.TokenInfo](r).StudentID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, state, http.StatusOK)
}

func (c *Controller) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, apiErr := c.service.GetCatalog(auth.GetTokenInfo[model.TokenInfo](r).StudentID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, catalog, http.StatusOK)
}

func (c *Controller) Redeem(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RedeemDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	redemption, apiErr := c.service.Redeem(auth.GetTokenInfo[model.TokenInfo](r).StudentID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, redemption, http.StatusOK)
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if err := c.pinger.Ping(); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
