package service

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Shape(t *testing.T) {
	require.Len(t, Catalog, 10)

	for i, reward := range Catalog {
		assert.Equal(t, i+1, reward.Level)
		assert.Equal(t, int64((i+1)*100), reward.Cost)
		assert.NotEmpty(t, reward.Title)
	}
}

func TestRewardByLevel(t *testing.T) {
	reward, ok := RewardByLevel(2)
	require.True(t, ok)
	assert.Equal(t, int64(200), reward.Cost)

	_, ok = RewardByLevel(0)
	assert.False(t, ok)

	_, ok = RewardByLevel(11)
	assert.False(t, ok)
}

func TestHighestAffordable(t *testing.T) {
	tests := []struct {
		name     string
		points   int64
		wantCost int64
		wantOK   bool
	}{
		{name: "between levels", points: 250, wantCost: 200, wantOK: true},
		{name: "exact cost", points: 300, wantCost: 300, wantOK: true},
		{name: "nothing unlocked", points: 50, wantOK: false},
		{name: "everything unlocked", points: 5000, wantCost: 1000, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reward, ok := HighestAffordable(tt.points)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCost, reward.Cost)
			}
		})
	}
}

func TestNextToUnlockIndex(t *testing.T) {
	tests := []struct {
		name   string
		points int64
		want   int
	}{
		{name: "nothing unlocked clamps to zero", points: 50, want: 0},
		{name: "two unlocked", points: 250, want: 1},
		{name: "exact boundary", points: 300, want: 2},
		{name: "everything unlocked", points: 5000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextToUnlockIndex(tt.points))
		})
	}
}

func TestAnnotatedCatalog(t *testing.T) {
	annotated := AnnotatedCatalog(250)

	require.Len(t, annotated, 10)
	assert.True(t, annotated[0].Unlocked)
	assert.True(t, annotated[1].Unlocked)
	assert.False(t, annotated[2].Unlocked)
	assert.True(t, annotated[1].NextToUnlock)
	assert.False(t, annotated[0].NextToUnlock)
	assert.False(t, annotated[2].NextToUnlock)
}

func TestNewRedemptionCode_Shape(t *testing.T) {
	codeRe := regexp.MustCompile(`^#SB\d{4}$`)

	src := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		assert.Regexp(t, codeRe, NewRedemptionCode(src))
	}
}

func TestNewRedemptionCode_Deterministic(t *testing.T) {
	first := NewRedemptionCode(rand.New(rand.NewSource(7)))
	second := NewRedemptionCode(rand.New(rand.NewSource(7)))

	assert.Equal(t, first, second)
}
