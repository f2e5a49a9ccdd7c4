package service

import (
	"math"
	"strconv"
	"time"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
)

const pointsPerDollarSaved = 10

type AccrualResult struct {
	NewPoints   int64
	BonusPoints int64
}

// Accrue compares the new purchase against the average spend over the
// half-open window [now-14d, now-7d) and awards 10 points per whole dollar
// saved when the new total comes in under that average. Receipts without a
// date never enter the window, and an empty window means no bonus regardless
// of the new total. The balance never decreases here.
func Accrue(total float64, prior []model.Receipt, currentPoints int64, now time.Time) AccrualResult {
	sevenDaysAgo := now.AddDate(0, 0, -7)
	fourteenDaysAgo := now.AddDate(0, 0, -14)

	var sum float64
	var count int
	for _, receipt := range prior {
		if receipt.Date == nil {
			continue
		}
		if receipt.Date.Before(fourteenDaysAgo) || !receipt.Date.Before(sevenDaysAgo) {
			continue
		}

		amount, err := strconv.ParseFloat(receipt.Total, 64)
		if err != nil {
			continue
		}

		sum += amount
		count++
	}

	result := AccrualResult{NewPoints: currentPoints}
	if count == 0 {
		return result
	}

	lastWeekAvg := sum / float64(count)
	if total < lastWeekAvg {
		dollarsSaved := int64(math.Floor(lastWeekAvg - total))
		result.BonusPoints = dollarsSaved * pointsPerDollarSaved
		result.NewPoints += result.BonusPoints
	}

	return result
}
