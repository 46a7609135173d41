package domain

import "github.com/google/uuid"

// Board dimensions and scoring shared with the clue-set validator and the
// host console.
const (
	CategoryCount    = 6
	CluesPerCategory = 5
	DailyDoubleCount = 2
	PointValueStep   = 200
)

// ClueID identifies a clue on the board
type ClueID string

// NewClueID returns a fresh clue identifier
func NewClueID() ClueID {
	return ClueID(uuid.NewString())
}

// Clue is a single answer/response pair on the board.
//
// Answer is the prompt read to contestants; CorrectResponse is what the host
// expects back. Image is an optional media filename and is empty when absent.
type Clue struct {
	ID              ClueID `json:"id"`
	PointValue      int    `json:"pointValue"`
	Answer          string `json:"answer"`
	CorrectResponse string `json:"correctResponse"`
	IsDailyDouble   bool   `json:"isDailyDouble"`
	IsDone          bool   `json:"isDone"`
	Image           string `json:"image,omitempty"`
}

// ExpectedPointValue returns the point value for the clue at index within a category
func ExpectedPointValue(index int) int {
	return (index + 1) * PointValueStep
}

// FinalClue is the clue played in the final round
type FinalClue struct {
	CategoryTitle   string `json:"categoryTitle"`
	Answer          string `json:"answer"`
	CorrectResponse string `json:"correctResponse"`
	Image           string `json:"image,omitempty"`
}

// Category is a titled column of clues ordered by point value
type Category struct {
	Title string  `json:"title"`
	Clues []*Clue `json:"clues"`
}

// IsDone reports whether every clue in the category is done
func (c *Category) IsDone() bool {
	for _, clue := range c.Clues {
		if !clue.IsDone {
			return false
		}
	}
	return true
}

// Board holds the categories played in the main round
type Board struct {
	Categories []*Category `json:"categories"`
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	clone := &Board{Categories: make([]*Category, 0, len(b.Categories))}
	for _, category := range b.Categories {
		clues := make([]*Clue, 0, len(category.Clues))
		for _, clue := range category.Clues {
			c := *clue
			clues = append(clues, &c)
		}
		clone.Categories = append(clone.Categories, &Category{
			Title: category.Title,
			Clues: clues,
		})
	}
	return clone
}

// RemainingClueCount returns the number of clues not yet done
func (b *Board) RemainingClueCount() int {
	count := 0
	for _, category := range b.Categories {
		for _, clue := range category.Clues {
			if !clue.IsDone {
				count++
			}
		}
	}
	return count
}

// DailyDoubleCount returns the number of daily-double clues on the board
func (b *Board) DailyDoubleCount() int {
	count := 0
	for _, category := range b.Categories {
		for _, clue := range category.Clues {
			if clue.IsDailyDouble {
				count++
			}
		}
	}
	return count
}
