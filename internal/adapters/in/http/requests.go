package http

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator plugs go-playground/validator into echo's Bind/Validate
// cycle.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the request validator used by the server.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks the struct tags and converts failures to 400 responses.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	ResetCode   string `json:"resetCode" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type orderCustomerRequest struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	PhoneCountryCode string `json:"phoneCountryCode"`
	PhoneNumber      string `json:"phoneNumber"`
}

type orderShippingRequest struct {
	Building    string `json:"building"`
	ApartmentNo string `json:"apartmentNo"`
	HouseNo     string `json:"houseNo"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	Country     string `json:"country" validate:"required"`
}

type orderItemRequest struct {
	ProductID int64   `json:"productId" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Discount  float64 `json:"discount" validate:"gte=0"`
}

type createOrderRequest struct {
	Customer      orderCustomerRequest `json:"customer" validate:"required"`
	Shipping      orderShippingRequest `json:"shipping" validate:"required"`
	Items         []orderItemRequest   `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string               `json:"paymentMethod" validate:"required"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type createProductRequest struct {
	Name              string   `json:"name" validate:"required"`
	Permalink         string   `json:"permalink" validate:"required"`
	RegularPrice      float64  `json:"regularPrice" validate:"gte=0"`
	Description       string   `json:"description"`
	SKU               string   `json:"sku"`
	Brand             string   `json:"brand"`
	SalePrice         *float64 `json:"salePrice" validate:"omitempty,gte=0"`
	TaxRate           float64  `json:"taxRate" validate:"gte=0"`
	StockQuantity     int      `json:"stockQuantity" validate:"gte=0"`
	StockStatus       string   `json:"stockStatus"`
	LowStockThreshold int      `json:"lowStockThreshold" validate:"gte=0"`
	AllowBackorder    bool     `json:"allowBackorder"`
	ProductStatus     string   `json:"productStatus"`
	IsFeatured        bool     `json:"isFeatured"`
}

type updateProductRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	SKU               *string  `json:"sku"`
	Brand             *string  `json:"brand"`
	RegularPrice      *float64 `json:"regularPrice" validate:"omitempty,gte=0"`
	SalePrice         *float64 `json:"salePrice" validate:"omitempty,gte=0"`
	ClearSalePrice    bool     `json:"clearSalePrice"`
	TaxRate           *float64 `json:"taxRate" validate:"omitempty,gte=0"`
	StockQuantity     *int     `json:"stockQuantity" validate:"omitempty,gte=0"`
	StockStatus       *string  `json:"stockStatus"`
	LowStockThreshold *int     `json:"lowStockThreshold" validate:"omitempty,gte=0"`
	AllowBackorder    *bool    `json:"allowBackorder"`
	ProductStatus     *string  `json:"productStatus"`
	IsFeatured        *bool    `json:"isFeatured"`
}

type updateCustomerRequest struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	PhoneCountryCode *string `json:"phoneCountryCode"`
	PhoneNumber      *string `json:"phoneNumber"`
}

type createInvoiceRequest struct {
	InvoiceNumber string    `json:"invoiceNumber" validate:"required"`
	CustomerName  string    `json:"customerName" validate:"required"`
	IssuedDate    time.Time `json:"issuedDate"`
	Amount        float64   `json:"amount" validate:"gte=0"`
	Status        string    `json:"status" validate:"required"`
	OrderID       *int64    `json:"orderId" validate:"omitempty,gt=0"`
}

type updateInvoiceRequest struct {
	CustomerName *string  `json:"customerName"`
	Amount       *float64 `json:"amount" validate:"omitempty,gte=0"`
	Status       *string  `json:"status"`
}
