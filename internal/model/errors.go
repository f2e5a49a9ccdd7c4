package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage      = "internal server error"
	ErrInvalidIDOrPasswordMessage = "invalid student id or password"
	ErrReceiptsNotFoundMessage    = "no receipts found"
	ErrTotalNotResolvedMessage    = "receipt total could not be resolved"
	ErrUserNotFoundMessage        = "user not found"
	ErrScanInFlightMessage        = "another scan or submission is in progress"
	ErrUnknownRewardMessage       = "unknown reward"
	ErrInsufficientPointsMessage  = "not enough points for this reward"

	NoTextDetectedMessage = "no text detected"
)

var (
	ErrInvalidIDOrPassword = errors.New(ErrInvalidIDOrPasswordMessage)

	ErrUserNotFound       = errors.New(ErrUserNotFoundMessage)
	ErrTotalNotResolved   = errors.New(ErrTotalNotResolvedMessage)
	ErrSubmissionInFlight = errors.New(ErrScanInFlightMessage)
	ErrUnknownReward      = errors.New(ErrUnknownRewardMessage)
	ErrInsufficientPoints = errors.New(ErrInsufficientPointsMessage)
)
