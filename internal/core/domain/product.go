package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrUnsupportedImageType = errors.New("unsupported image type")
var ErrImageTooLarge = errors.New("image exceeds maximum size")

// Product is a catalog entry. CountInStock is informational only and is never
// decremented by order placement.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	CountInStock int       `json:"countInStock"`
	Image        string    `json:"image"`
	Brand        string    `json:"brand"`
	Featured     bool      `json:"featured"`
	Rating       float64   `json:"rating"`
	NumReviews   int       `json:"numReviews"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
