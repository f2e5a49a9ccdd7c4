package model

import "time"

// Receipt is one submitted purchase. Total is always a fixed 2-decimal
// numeric string, Date is nil when no recognizable date existed in the
// source text.
type Receipt struct {
	ID         int64      `json:"-"`
	UserID     int64      `json:"-"`
	Merchant   string     `json:"merchant"`
	Total      string     `json:"total"`
	Date       *time.Time `json:"date"`
	UploadedAt time.Time  `json:"uploaded_at"`
}

type GetReceiptsResponse = []Receipt

type ScanReceiptDTO struct {
	Image string `json:"image"` // base64-encoded
}

type ScanReceiptResponse struct {
	Text     string `json:"text"`
	Merchant string `json:"merchant"`
	Total    string `json:"total"`
	Date     string `json:"date"`
	Message  string `json:"message,omitempty"`
}

type SubmitReceiptDTO struct {
	Merchant string `json:"merchant"`
	Total    string `json:"total"`
	Date     string `json:"date"`
}

type SubmitReceiptResponse struct {
	BonusPoints int64 `json:"bonus_points"`
	NewPoints   int64 `json:"new_points"`
}
