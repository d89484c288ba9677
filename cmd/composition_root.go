package cmd

import (
	"log/slog"

	httpin "ecom/internal/adapters/in/http"
	"ecom/internal/adapters/out/postgres"
	"ecom/internal/core/application/usecases/commands"
	"ecom/internal/core/application/usecases/queries"
	"ecom/internal/core/domain/services"
	"ecom/internal/core/ports"
	"ecom/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     ports.TokenService
	hasher     ports.PasswordHasher
	publisher  ports.OrderEventPublisher
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	tokens ports.TokenService,
	hasher ports.PasswordHasher,
	publisher ports.OrderEventPublisher,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		hasher:     hasher,
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.customerUoWFactory(),
		c.orderUoWFactory(),
		services.NewLinePricer(),
		c.publisher,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateUpdateInvoiceCommandHandler() commands.UpdateInvoiceCommandHandler {
	return commands.NewUpdateInvoiceCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateDeleteInvoiceCommandHandler() commands.DeleteInvoiceCommandHandler {
	return commands.NewDeleteInvoiceCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	return commands.NewSignInCommandHandler(c.accountUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateRefreshTokenCommandHandler() commands.RefreshTokenCommandHandler {
	return commands.NewRefreshTokenCommandHandler(c.accountUoWFactory(), c.tokens)
}

func (c *CompositionRoot) CreateRequestPasswordResetCommandHandler() commands.RequestPasswordResetCommandHandler {
	return commands.NewRequestPasswordResetCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	return commands.NewResetPasswordCommandHandler(c.accountUoWFactory(), c.hasher)
}

// CreateHTTPHandlers assembles the full handler set for the web server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		SignIn:               c.CreateSignInCommandHandler(),
		RefreshToken:         c.CreateRefreshTokenCommandHandler(),
		RequestPasswordReset: c.CreateRequestPasswordResetCommandHandler(),
		ResetPassword:        c.CreateResetPasswordCommandHandler(),

		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),

		CreateProduct: c.CreateCreateProductCommandHandler(),
		UpdateProduct: c.CreateUpdateProductCommandHandler(),
		DeleteProduct: c.CreateDeleteProductCommandHandler(),

		UpdateCustomer: c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer: c.CreateDeleteCustomerCommandHandler(),

		CreateInvoice: c.CreateCreateInvoiceCommandHandler(),
		UpdateInvoice: c.CreateUpdateInvoiceCommandHandler(),
		DeleteInvoice: c.CreateDeleteInvoiceCommandHandler(),

		GetAccount:         queries.NewGetAccountQueryHandler(c.gormDB),
		GetOrderByNumber:   queries.NewGetOrderByNumberQueryHandler(c.gormDB),
		FilterOrders:       queries.NewFilterOrdersQueryHandler(c.gormDB),
		ListShippingOrders: queries.NewListShippingOrdersQueryHandler(c.gormDB),
		ListProducts:       queries.NewListProductsQueryHandler(c.gormDB),
		GetProduct:         queries.NewGetProductQueryHandler(c.gormDB),
		ListCustomers:      queries.NewListCustomersQueryHandler(c.gormDB),
		GetCustomer:        queries.NewGetCustomerQueryHandler(c.gormDB),
		ListInvoices:       queries.NewListInvoicesQueryHandler(c.gormDB),
		GetInvoice:         queries.NewGetInvoiceQueryHandler(c.gormDB),
	}
}

// CreateJobManager assembles the scheduled jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewUnbilledDeliveredOrdersQueryHandler(c.gormDB),
		c.CreateCreateInvoiceCommandHandler(),
		logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
