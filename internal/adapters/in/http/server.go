// Package http exposes the application use cases over an echo HTTP server.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ecom/internal/core/application/usecases/commands"
	"ecom/internal/core/application/usecases/queries"
	"ecom/internal/core/domain/model/invoice"
	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/core/domain/model/order"
	"ecom/internal/core/domain/model/product"
	"ecom/internal/core/ports"
	"ecom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	SignIn               commands.SignInCommandHandler
	RefreshToken         commands.RefreshTokenCommandHandler
	RequestPasswordReset commands.RequestPasswordResetCommandHandler
	ResetPassword        commands.ResetPasswordCommandHandler

	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler

	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	DeleteProduct commands.DeleteProductCommandHandler

	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler

	CreateInvoice commands.CreateInvoiceCommandHandler
	UpdateInvoice commands.UpdateInvoiceCommandHandler
	DeleteInvoice commands.DeleteInvoiceCommandHandler

	GetAccount         queries.GetAccountQueryHandler
	GetOrderByNumber   queries.GetOrderByNumberQueryHandler
	FilterOrders       queries.FilterOrdersQueryHandler
	ListShippingOrders queries.ListShippingOrdersQueryHandler
	ListProducts       queries.ListProductsQueryHandler
	GetProduct         queries.GetProductQueryHandler
	ListCustomers      queries.ListCustomersQueryHandler
	GetCustomer        queries.GetCustomerQueryHandler
	ListInvoices       queries.ListInvoicesQueryHandler
	GetInvoice         queries.GetInvoiceQueryHandler
}

// Server routes HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes wires all endpoints onto the echo instance. Everything
// except /health and the auth entry points sits behind the access-token
// middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	e.POST("/auth/signin", s.SignIn)
	e.POST("/auth/refresh", s.RefreshToken)
	e.POST("/auth/forgot-password", s.ForgotPassword)
	e.POST("/auth/reset-password", s.ResetPassword)
	e.GET("/auth/me", s.Me, auth)

	orders := e.Group("/orders", auth)
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/filter", s.FilterOrders)
	orders.GET("/:number", s.GetOrderByNumber)
	orders.PUT("/:id/status", s.UpdateOrderStatus)
	orders.DELETE("/:id", s.DeleteOrder)

	shipping := e.Group("/shipping", auth)
	shipping.GET("", s.ListShippingOrders)
	shipping.GET("/:number", s.GetShippingOrder)

	products := e.Group("/products", auth)
	products.POST("", s.CreateProduct)
	products.GET("", s.ListProducts)
	products.GET("/:id", s.GetProduct)
	products.PUT("/:id", s.UpdateProduct)
	products.DELETE("/:id", s.DeleteProduct)

	customers := e.Group("/customers", auth)
	customers.GET("", s.ListCustomers)
	customers.GET("/:id", s.GetCustomer)
	customers.PUT("/:id", s.UpdateCustomer)
	customers.DELETE("/:id", s.DeleteCustomer)

	invoices := e.Group("/invoices", auth)
	invoices.POST("", s.CreateInvoice)
	invoices.GET("", s.ListInvoices)
	invoices.GET("/:id", s.GetInvoice)
	invoices.PUT("/:id", s.UpdateInvoice)
	invoices.DELETE("/:id", s.DeleteInvoice)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SignIn handles POST /auth/signin.
func (s *Server) SignIn(ctx echo.Context) error {
	var req signInRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSignInCommand(email, req.Password)
	if err != nil {
		return errorResponse(ctx, err)
	}

	pair, err := s.handlers.SignIn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenPairResponseFrom(pair))
}

// RefreshToken handles POST /auth/refresh.
func (s *Server) RefreshToken(ctx echo.Context) error {
	var req refreshTokenRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRefreshTokenCommand(req.RefreshToken)
	if err != nil {
		return errorResponse(ctx, err)
	}

	pair, err := s.handlers.RefreshToken.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenPairResponseFrom(pair))
}

// ForgotPassword handles POST /auth/forgot-password. Responds identically
// for known and unknown emails so account existence does not leak.
func (s *Server) ForgotPassword(ctx echo.Context) error {
	var req forgotPasswordRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRequestPasswordResetCommand(email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if _, err := s.handlers.RequestPasswordReset.Handle(ctx.Request().Context(), cmd); err != nil &&
		!errors.Is(err, errs.ErrObjectNotFound) {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, map[string]string{
		"message": "If the account exists, a reset code has been issued",
	})
}

// ResetPassword handles POST /auth/reset-password.
func (s *Server) ResetPassword(ctx echo.Context) error {
	var req resetPasswordRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewResetPasswordCommand(email, req.ResetCode, req.NewPassword)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.ResetPassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (s *Server) Me(ctx echo.Context) error {
	query, err := queries.NewGetAccountQuery(accountIDFromContext(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	account, err := s.handlers.GetAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, account)
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	email, err := kernel.NewEmail(req.Customer.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	items := make([]commands.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Discount:  item.Discount,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		commands.CustomerInfo{
			FirstName:        req.Customer.FirstName,
			LastName:         req.Customer.LastName,
			Email:            email,
			PhoneCountryCode: req.Customer.PhoneCountryCode,
			PhoneNumber:      req.Customer.PhoneNumber,
		},
		commands.ShippingInfo{
			Building:    req.Shipping.Building,
			ApartmentNo: req.Shipping.ApartmentNo,
			HouseNo:     req.Shipping.HouseNo,
			Street:      req.Shipping.Street,
			City:        req.Shipping.City,
			Country:     req.Shipping.Country,
		},
		items,
		req.PaymentMethod,
		accountIDFromContext(ctx),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFrom(created))
}

// ListOrders handles GET /orders. It is the unfiltered view of FilterOrders.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewFilterOrdersQuery(accountIDFromContext(ctx), "", "")

	orders, err := s.handlers.FilterOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// FilterOrders handles GET /orders/filter?status=&customerName=.
func (s *Server) FilterOrders(ctx echo.Context) error {
	query := queries.NewFilterOrdersQuery(
		accountIDFromContext(ctx),
		ctx.QueryParam("status"),
		ctx.QueryParam("customerName"),
	)

	orders, err := s.handlers.FilterOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderByNumber handles GET /orders/:number, scoped to the acting user.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	return s.orderByNumber(ctx, accountIDFromContext(ctx))
}

// UpdateOrderStatus handles PUT /orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req updateOrderStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListShippingOrders handles GET /shipping.
func (s *Server) ListShippingOrders(ctx echo.Context) error {
	query := queries.NewListShippingOrdersQuery()

	orders, err := s.handlers.ListShippingOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetShippingOrder handles GET /shipping/:number. Unlike the order view it
// is not scoped to the acting user.
func (s *Server) GetShippingOrder(ctx echo.Context) error {
	return s.orderByNumber(ctx, 0)
}

// CreateProduct handles POST /products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(
		req.Name, req.Permalink, req.RegularPrice,
		commands.ProductAttributes{
			Description:       req.Description,
			SKU:               req.SKU,
			Brand:             req.Brand,
			SalePrice:         req.SalePrice,
			TaxRate:           req.TaxRate,
			StockQuantity:     req.StockQuantity,
			StockStatus:       req.StockStatus,
			LowStockThreshold: req.LowStockThreshold,
			AllowBackorder:    req.AllowBackorder,
			ProductStatus:     req.ProductStatus,
			IsFeatured:        req.IsFeatured,
		},
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productResponseFrom(created))
}

// ListProducts handles GET /products?offset=&limit=.
func (s *Server) ListProducts(ctx echo.Context) error {
	offset, _ := strconv.Atoi(ctx.QueryParam("offset"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	query := queries.NewListProductsQuery(offset, limit)

	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	product, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req updateProductRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(id, commands.ProductPatch{
		Name:              req.Name,
		Description:       req.Description,
		SKU:               req.SKU,
		Brand:             req.Brand,
		RegularPrice:      req.RegularPrice,
		SalePrice:         req.SalePrice,
		ClearSalePrice:    req.ClearSalePrice,
		TaxRate:           req.TaxRate,
		StockQuantity:     req.StockQuantity,
		StockStatus:       req.StockStatus,
		LowStockThreshold: req.LowStockThreshold,
		AllowBackorder:    req.AllowBackorder,
		ProductStatus:     req.ProductStatus,
		IsFeatured:        req.IsFeatured,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListCustomers handles GET /customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	query := queries.NewListCustomersQuery()

	customers, err := s.handlers.ListCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	customer, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customer)
}

// UpdateCustomer handles PUT /customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req updateCustomerRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, commands.CustomerPatch{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		PhoneCountryCode: req.PhoneCountryCode,
		PhoneNumber:      req.PhoneNumber,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateInvoice handles POST /invoices.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var req createInvoiceRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateInvoiceCommand(
		req.InvoiceNumber, req.CustomerName,
		req.IssuedDate, req.Amount, req.Status, req.OrderID,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, invoiceResponseFrom(created))
}

// ListInvoices handles GET /invoices.
func (s *Server) ListInvoices(ctx echo.Context) error {
	query := queries.NewListInvoicesQuery()

	invoices, err := s.handlers.ListInvoices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoices)
}

// GetInvoice handles GET /invoices/:id.
func (s *Server) GetInvoice(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetInvoiceQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	inv, err := s.handlers.GetInvoice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, inv)
}

// UpdateInvoice handles PUT /invoices/:id.
func (s *Server) UpdateInvoice(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req updateInvoiceRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateInvoiceCommand(id, commands.InvoicePatch{
		CustomerName: req.CustomerName,
		Amount:       req.Amount,
		Status:       req.Status,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.UpdateInvoice.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteInvoice handles DELETE /invoices/:id.
func (s *Server) DeleteInvoice(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteInvoiceCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.handlers.DeleteInvoice.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) orderByNumber(ctx echo.Context, userID int64) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("number"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderByNumberQuery(number, userID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.handlers.GetOrderByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return nil
}

func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}

	return id, nil
}

// errorResponse maps application errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, commands.ErrInvalidResetCode):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

type tokenPairResponse struct {
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

type orderResponse struct {
	ID            int64            `json:"id"`
	OrderNumber   string           `json:"orderNumber"`
	CustomerID    int64            `json:"customerId"`
	OrderDate     time.Time        `json:"orderDate"`
	PaymentMethod string           `json:"paymentMethod"`
	Status        string           `json:"status"`
	Amount        float64          `json:"amount"`
	Address       orderAddressBody `json:"address"`
	Lines         []orderLineBody  `json:"lines"`
}

type orderAddressBody struct {
	Building    string `json:"building"`
	ApartmentNo string `json:"apartmentNo"`
	HouseNo     string `json:"houseNo"`
	Street      string `json:"street"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

type orderLineBody struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Discount  float64 `json:"discount"`
	Subtotal  float64 `json:"subtotal"`
}

type productResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Permalink    string   `json:"permalink"`
	RegularPrice float64  `json:"regularPrice"`
	SalePrice    *float64 `json:"salePrice"`
}

type invoiceResponse struct {
	ID            int64     `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	CustomerName  string    `json:"customerName"`
	IssuedDate    time.Time `json:"issuedDate"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	OrderID       *int64    `json:"orderId"`
}

func tokenPairResponseFrom(pair ports.TokenPair) tokenPairResponse {
	return tokenPairResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
	}
}

func orderResponseFrom(aggregate *order.Order) orderResponse {
	address := aggregate.Address()
	lines := aggregate.Lines()

	lineBodies := make([]orderLineBody, 0, len(lines))
	for _, line := range lines {
		lineBodies = append(lineBodies, orderLineBody{
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			Discount:  line.Discount(),
			Subtotal:  line.Subtotal(),
		})
	}

	return orderResponse{
		ID:            aggregate.ID(),
		OrderNumber:   aggregate.Number().String(),
		CustomerID:    aggregate.CustomerID(),
		OrderDate:     aggregate.OrderDate(),
		PaymentMethod: aggregate.PaymentMethod(),
		Status:        aggregate.Status().String(),
		Amount:        aggregate.Amount(),
		Address: orderAddressBody{
			Building:    address.Building(),
			ApartmentNo: address.ApartmentNo(),
			HouseNo:     address.HouseNo(),
			Street:      address.Street(),
			City:        address.City(),
			Country:     address.Country(),
		},
		Lines: lineBodies,
	}
}

func productResponseFrom(p *product.Product) productResponse {
	return productResponse{
		ID:           p.ID(),
		Name:         p.Name(),
		Permalink:    p.Permalink(),
		RegularPrice: p.RegularPrice(),
		SalePrice:    p.SalePrice(),
	}
}

func invoiceResponseFrom(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:            inv.ID(),
		InvoiceNumber: inv.Number(),
		CustomerName:  inv.CustomerName(),
		IssuedDate:    inv.IssuedDate(),
		Amount:        inv.Amount(),
		Status:        inv.Status(),
		OrderID:       inv.OrderID(),
	}
}
