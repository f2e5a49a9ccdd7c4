package model

import "time"

type Reward struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Cost  int64  `json:"cost"`
}

type CatalogReward struct {
	Reward
	Unlocked     bool `json:"unlocked"`
	NextToUnlock bool `json:"next_to_unlock"`
}

type GetCatalogResponse = []CatalogReward

type RedeemDTO struct {
	Level int `json:"level"`
}

type Redemption struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"-"`
	Reward     string    `json:"reward"`
	Cost       int64     `json:"cost"`
	Code       string    `json:"code"`
	RedeemedAt time.Time `json:"redeemed_at"`
}
