package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jeopardy/internal/domain"
)

func TestValidateDailyDoubleWager(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		score  int
		want   error
	}{
		{name: "minimum at zero score", amount: 5, score: 0},
		{name: "default maximum", amount: 1000, score: 500},
		{name: "above default maximum", amount: 1001, score: 500, want: domain.ErrWagerOutOfRange},
		{name: "below minimum", amount: 4, score: 3000, want: domain.ErrWagerOutOfRange},
		{name: "whole score", amount: 3000, score: 3000},
		{name: "negative score keeps default maximum", amount: 1000, score: -400},
		{name: "forbidden", amount: 69, score: 0, want: domain.ErrForbiddenWager},
		{name: "forbidden above range", amount: 1488, score: 0, want: domain.ErrForbiddenWager},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateDailyDoubleWager(tt.amount, tt.score)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateFinalWager(t *testing.T) {
	assert.NoError(t, domain.ValidateFinalWager(0, 0))
	assert.NoError(t, domain.ValidateFinalWager(2000, 2000))
	assert.ErrorIs(t, domain.ValidateFinalWager(2001, 2000), domain.ErrWagerOutOfRange)
	assert.ErrorIs(t, domain.ValidateFinalWager(420, 2000), domain.ErrForbiddenWager)
}

func TestWagerErrorMessage(t *testing.T) {
	err := domain.ValidateDailyDoubleWager(1001, 500)
	assert.EqualError(t, err, "wager 1001 must be between 5 and 1000")

	err = domain.ValidateDailyDoubleWager(69, 500)
	assert.EqualError(t, err, "wager 69 is not allowed")
}

func TestNewPlayerTrimsName(t *testing.T) {
	p, err := domain.NewPlayer("  Ken Jennings \n")
	assert.NoError(t, err)
	assert.Equal(t, "Ken Jennings", p.Name)
	assert.NotEmpty(t, p.ID)
	assert.Zero(t, p.Score)

	_, err = domain.NewPlayer("   ")
	assert.ErrorIs(t, err, domain.ErrEmptyPlayerName)
}

func TestForbiddenWagersIsACopy(t *testing.T) {
	wagers := domain.ForbiddenWagers()
	assert.Equal(t, []int{69, 420, 666, 1488}, wagers)

	wagers[0] = 100
	assert.True(t, domain.IsForbiddenWager(69))
	assert.False(t, domain.IsForbiddenWager(100))
	assert.Equal(t, 69, domain.ForbiddenWagers()[0])
}
