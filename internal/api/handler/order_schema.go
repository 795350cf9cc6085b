package handler

import "github.com/shopstack/storefront-api/internal/core/ports"

type orderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Qty       int     `json:"qty" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

type shippingAddressRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
}

// createOrderRequest deliberately leaves orderItems without a required tag so
// an empty cart reaches the service and gets its dedicated error.
type createOrderRequest struct {
	OrderItems      []orderItemRequest     `json:"orderItems" validate:"dive"`
	ShippingAddress shippingAddressRequest `json:"shippingAddress" validate:"required"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required"`
	ItemsPrice      float64                `json:"itemsPrice" validate:"gte=0"`
	ShippingPrice   float64                `json:"shippingPrice" validate:"gte=0"`
	TaxPrice        float64                `json:"taxPrice" validate:"gte=0"`
	TotalPrice      float64                `json:"totalPrice" validate:"gte=0"`
}

type payOrderRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

// Status is a free-form tag; "delivered" and "cancelled" carry extra
// side effects in the service, anything else is stored as-is.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r *createOrderRequest) toInput(userID string) ports.CreateOrderInput {
	items := make([]ports.OrderItemInput, 0, len(r.OrderItems))
	for _, it := range r.OrderItems {
		items = append(items, ports.OrderItemInput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
			Image:     it.Image,
			Size:      it.Size,
			Color:     it.Color,
		})
	}

	return ports.CreateOrderInput{
		UserID: userID,
		Items:  items,
		ShippingAddress: ports.ShippingAddressInput{
			FullName:   r.ShippingAddress.FullName,
			Address:    r.ShippingAddress.Address,
			City:       r.ShippingAddress.City,
			PostalCode: r.ShippingAddress.PostalCode,
			Country:    r.ShippingAddress.Country,
			Phone:      r.ShippingAddress.Phone,
		},
		PaymentMethod: r.PaymentMethod,
		ItemsPrice:    r.ItemsPrice,
		ShippingPrice: r.ShippingPrice,
		TaxPrice:      r.TaxPrice,
		TotalPrice:    r.TotalPrice,
	}
}
