package service

import (
	"fmt"
	"math/rand"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
)

const redemptionCodePrefix = "#SB"

// Catalog is the fixed reward ladder. Costs increase monotonically with
// the level.
var Catalog = []model.Reward{
	{Level: 1, Title: "Free drink at any on-campus restaurant", Cost: 100},
	{Level: 2, Title: "Free lanyard", Cost: 200},
	{Level: 3, Title: "Free keychain", Cost: 300},
	{Level: 4, Title: "Free school flag", Cost: 400},
	{Level: 5, Title: "Free meal", Cost: 500},
	{Level: 6, Title: "Free t-shirt", Cost: 600},
	{Level: 7, Title: "Football VIP student section", Cost: 700},
	{Level: 8, Title: "Free backpack", Cost: 800},
	{Level: 9, Title: "Free hoodie", Cost: 900},
	{Level: 10, Title: "40% discount on semester parking", Cost: 1000},
}

// RewardByLevel looks up a catalog entry by its 1-based level.
func RewardByLevel(level int) (model.Reward, bool) {
	if level < 1 || level > len(Catalog) {
		return model.Reward{}, false
	}
	return Catalog[level-1], true
}

// HighestAffordable returns the most expensive reward whose cost fits the
// given balance, ok=false when nothing is unlocked yet.
func HighestAffordable(points int64) (model.Reward, bool) {
	var best model.Reward
	var ok bool
	for _, reward := range Catalog {
		if reward.Cost <= points {
			best = reward
			ok = true
		}
	}
	return best, ok
}

// NextToUnlockIndex is the position of the progress marker: the reward
// immediately before the first one whose cost exceeds the balance,
// clamped to index 0.
func NextToUnlockIndex(points int64) int {
	firstLocked := -1
	for i, reward := range Catalog {
		if reward.Cost > points {
			firstLocked = i
			break
		}
	}

	if firstLocked-1 < 0 {
		return 0
	}
	return firstLocked - 1
}

// AnnotatedCatalog renders the catalog for a given balance.
func AnnotatedCatalog(points int64) []model.CatalogReward {
	marker := NextToUnlockIndex(points)

	result := make([]model.CatalogReward, 0, len(Catalog))
	for i, reward := range Catalog {
		result = append(result, model.CatalogReward{
			Reward:       reward,
			Unlocked:     reward.Cost <= points,
			NextToUnlock: i == marker,
		})
	}
	return result
}

// CodeSource yields the pseudo-random draw behind redemption codes.
// Tests inject a seeded source to pin the generated code.
type CodeSource interface {
	Intn(n int) int
}

type globalRandSource struct{}

func (globalRandSource) Intn(n int) int { return rand.Intn(n) }

// NewRedemptionCode produces a code of the fixed shape: the # prefix, the
// SB tag and four digits.
func NewRedemptionCode(src CodeSource) string {
	return fmt.Sprintf("%s%d", redemptionCodePrefix, 1000+src.Intn(9000))
}
