package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
	"github.com/LeonardoLujan/gamified-savings-app/pgk/auth"
)

func InitRoutes(r *chi.Mux, c *Controller, tokenSecret string) *chi.Mux {
	r.Get("/ping", c.Ping)

	r.Post("/api/user/login", c.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthBearerMiddlewareInit[model.TokenInfo](tokenSecret))

		r.Get("/api/user/state", c.GetRewardState)
		r.Get("/api/user/state/stream", c.StreamRewardState)

		r.Post("/api/receipts/scan", c.ScanReceipt)
		r.Post("/api/receipts", c.SubmitReceipt)
		r.Get("/api/receipts", c.GetReceipts)

		r.Get("/api/rewards", c.GetCatalog)
		r.Post("/api/rewards/redeem", c.Redeem)
	})

	return r
}
