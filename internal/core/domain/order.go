package domain

import (
	"errors"
	"time"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCOD  = "cod"
)

const (
	OrderStatusProcessing = "processing"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusPending   = "pending"
	PaymentStatusApproved  = "approved"
	PaymentStatusCompleted = "completed"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrNoOrderItems = errors.New("no order items")
var ErrForbidden = errors.New("access forbidden")
var ErrPaymentNotConfirmed = errors.New("payment not confirmed by provider")

// OrderItem is a snapshot of one product line at time of purchase. The product
// reference is kept for navigation; name/price/qty are frozen copies.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// ShippingAddress captures the delivery destination. All fields are required
// at order creation.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// PaymentResult records the outcome of a payment-capture attempt as reported
// by the payment provider.
type PaymentResult struct {
	ID           string    `json:"id,omitempty"`
	Status       string    `json:"status,omitempty"`
	UpdateTime   time.Time `json:"updateTime,omitempty"`
	EmailAddress string    `json:"emailAddress,omitempty"`
}

// Order is the purchase aggregate. Line items and shipping address are
// immutable snapshots; orders are never deleted.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	UserName        string          `json:"userName,omitempty"`
	UserEmail       string          `json:"userEmail,omitempty"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentResult   PaymentResult   `json:"paymentResult"`
	ItemsPrice      float64         `json:"itemsPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TaxPrice        float64         `json:"taxPrice"`
	TotalPrice      float64         `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	IsCancelled     bool            `json:"isCancelled"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
