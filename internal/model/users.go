package model

import "time"

type User struct {
	ID           int64     `json:"-"`
	StudentID    string    `json:"student_id"`
	Password     string    `json:"-"`
	RewardPoints int64     `json:"reward_points"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginDTO struct {
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
}

type TokenInfo struct {
	ID        int64  `json:"id"`
	StudentID string `json:"student_id"`
}

// RewardState is the full per-user document: the point balance plus the
// append-only receipt history. Watcher snapshots carry the same shape.
type RewardState struct {
	StudentID    string    `json:"student_id"`
	RewardPoints int64     `json:"reward_points"`
	Receipts     []Receipt `json:"receipts"`
}
