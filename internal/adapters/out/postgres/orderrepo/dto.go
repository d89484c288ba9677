// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The aggregate spans three tables: the order header, its
// shipping address and its lines.
package orderrepo

import (
	"time"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/core/domain/model/order"
)

// OrderDTO represents the order header row. The unique index on OrderNumber
// is what closes the number allocation race; see the creation workflow.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	OrderNumber   string `gorm:"uniqueIndex;not null"`
	CustomerID    int64  `gorm:"index;not null"`
	UserID        int64  `gorm:"index;not null"`
	OrderDate     time.Time
	PaymentMethod string
	Status        string `gorm:"index"`
	Amount        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the shipping address row owned by an order.
type AddressDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index;not null"`
	Building    string
	ApartmentNo string
	HouseNo     string
	Street      string
	City        string
	Country     string
}

// TableName overrides GORM's default naming convention.
func (AddressDTO) TableName() string {
	return "addresses"
}

// LineDTO represents one order line row.
type LineDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index;not null"`
	ProductID int64 `gorm:"index;not null"`
	Quantity  int
	Discount  float64
	Subtotal  float64
}

// TableName overrides GORM's default naming convention.
func (LineDTO) TableName() string {
	return "order_products"
}

// headerFromDomain converts the aggregate's header slice to its row.
func headerFromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID(),
		OrderNumber:   aggregate.Number().String(),
		CustomerID:    aggregate.CustomerID(),
		UserID:        aggregate.UserID(),
		OrderDate:     aggregate.OrderDate(),
		PaymentMethod: aggregate.PaymentMethod(),
		Status:        aggregate.Status().String(),
		Amount:        aggregate.Amount(),
	}
}

// addressFromDomain converts the owned address to its row.
func addressFromDomain(orderID int64, address order.Address) AddressDTO {
	return AddressDTO{
		ID:          address.ID(),
		OrderID:     orderID,
		Building:    address.Building(),
		ApartmentNo: address.ApartmentNo(),
		HouseNo:     address.HouseNo(),
		Street:      address.Street(),
		City:        address.City(),
		Country:     address.Country(),
	}
}

// lineFromDomain converts one line to its row.
func lineFromDomain(orderID int64, line order.Line) LineDTO {
	return LineDTO{
		ID:        line.ID(),
		OrderID:   orderID,
		ProductID: line.ProductID(),
		Quantity:  line.Quantity(),
		Discount:  line.Discount(),
		Subtotal:  line.Subtotal(),
	}
}

// toDomain reassembles the aggregate from its rows using the Restore
// constructors, trusting the stored amount.
func toDomain(dto OrderDTO, addressDTO AddressDTO, lineDTOs []LineDTO) (*order.Order, error) {
	number, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	address, err := order.RestoreAddress(
		addressDTO.ID,
		addressDTO.Building, addressDTO.ApartmentNo, addressDTO.HouseNo,
		addressDTO.Street, addressDTO.City, addressDTO.Country,
	)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		line, lineErr := order.RestoreLine(
			lineDTO.ID, lineDTO.ProductID,
			lineDTO.Quantity, lineDTO.Discount, lineDTO.Subtotal,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID, number, dto.CustomerID, dto.UserID,
		dto.OrderDate, dto.PaymentMethod, status, dto.Amount,
		address, lines,
	)
}
