package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

const (
	MinRating = 1
	MaxRating = 5
)

type ReviewSort string

const (
	ReviewSortNewest  ReviewSort = "newest"
	ReviewSortOldest  ReviewSort = "oldest"
	ReviewSortRating  ReviewSort = "rating"
	ReviewSortHelpful ReviewSort = "helpful"
)

// Review is a user's rating of an approved product. A user reviews a product at most once.
type Review struct {
	ID           string
	ProductID    string
	UserID       string
	Rating       int
	Comment      string
	IsVerified   bool
	HelpfulCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User    *User
	Product *Product
}

type ReviewContent struct {
	Rating  int
	Comment string
}

// Normalize trims the comment and checks the rating and comment bounds.
func (c *ReviewContent) Normalize() error {
	c.Comment = strings.TrimSpace(c.Comment)
	if c.Rating < MinRating || c.Rating > MaxRating {
		return NewValidationError("rating", "Rating must be between 1 and 5")
	}
	if n := utf8.RuneCountInString(c.Comment); n < 10 || n > 1000 {
		return NewValidationError("comment", "Comment must be between 10 and 1000 characters")
	}
	return nil
}

type CreateReviewCommand struct {
	ProductID string
	UserID    string
	ReviewContent
}

type UpdateReviewCommand struct {
	ReviewID string
	UserID   string
	ReviewContent
}

type ReviewFilter struct {
	ProductID string
	UserID    string
	Rating    int
	Sort      ReviewSort
}

// HelpfulVote is the state of one user's helpful mark after a toggle.
type HelpfulVote struct {
	HelpfulCount int
	IsHelpful    bool
}

// RatingSummary aggregates every review of a product.
type RatingSummary struct {
	ProductID     string
	ProductName   string
	AverageRating decimal.Decimal
	TotalReviews  int64
	// Distribution counts reviews per star, always holding keys 1..5.
	Distribution map[int]int64
}

func NewRatingSummary(product *Product) *RatingSummary {
	s := &RatingSummary{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Distribution: make(map[int]int64, MaxRating),
	}
	for r := MinRating; r <= MaxRating; r++ {
		s.Distribution[r] = 0
	}
	return s
}

// Add counts n reviews with the given rating and refreshes the average, rounded to one place.
func (s *RatingSummary) Add(rating int, n int64) {
	if rating < MinRating || rating > MaxRating || n <= 0 {
		return
	}
	s.Distribution[rating] += n
	s.TotalReviews += n

	var sum int64
	for r, count := range s.Distribution {
		sum += int64(r) * count
	}
	avg, err := decimal.MustNew(sum, 0).Quo(decimal.MustNew(s.TotalReviews, 0))
	if err != nil {
		return
	}
	s.AverageRating = avg.Round(1)
}
