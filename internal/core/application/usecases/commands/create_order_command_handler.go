package commands

import (
	"context"
	"errors"
	"time"

	"ecom/internal/core/domain/model/customer"
	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/core/domain/model/order"
	"ecom/internal/core/domain/services"
	"ecom/internal/core/ports"
	"ecom/internal/pkg/errs"
)

// maxOrderNumberAttempts bounds the retry loop that closes the order number
// allocation race. Numbers derive from max(id)+1, so two concurrent creations
// can pick the same number; the unique constraint rejects the loser and the
// whole transaction is retried with a fresh number.
const maxOrderNumberAttempts = 3

// CreateOrderCommandHandler runs the order creation workflow.
//
// The customer is resolved by email in its own short transaction and is NOT
// rolled back when the rest of the workflow fails. The order itself (header,
// address, lines, amount) is written in a single transaction that either
// commits fully or leaves no rows behind.
type CreateOrderCommandHandler struct {
	customerUoWFactory CustomerUoWFactory
	orderUoWFactory    OrderUoWFactory
	pricer             services.LinePricer
	publisher          ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	customerUoWFactory CustomerUoWFactory,
	orderUoWFactory OrderUoWFactory,
	pricer services.LinePricer,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		customerUoWFactory: customerUoWFactory,
		orderUoWFactory:    orderUoWFactory,
		pricer:             pricer,
		publisher:          publisher,
	}
}

// Handle processes the order creation command and returns the persisted
// aggregate. Any failure after validation is wrapped in OrderCreationError.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cust, err := h.resolveCustomer(ctx, cmd.Customer())
	if err != nil {
		return nil, NewOrderCreationError(err)
	}

	var created *order.Order
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		created, err = h.createOrder(ctx, cmd, cust)
		if err == nil {
			break
		}
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			// Lost the order number race, retry with a fresh number.
			continue
		}
		return nil, NewOrderCreationError(err)
	}
	if err != nil {
		return nil, NewOrderCreationError(err)
	}

	// Publishing is best effort; the order is already committed.
	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		EventType:   ports.OrderCreatedEvent,
		OrderID:     created.ID(),
		OrderNumber: created.Number().String(),
		Status:      created.Status().String(),
		Amount:      created.Amount(),
		OccurredAt:  time.Now().UTC(),
	})

	return created, nil
}

// resolveCustomer finds the customer by email, creating it on first use.
// Runs in its own transaction; a concurrent insert of the same email is
// resolved by re-fetching instead of failing.
func (h *CreateOrderCommandHandler) resolveCustomer(ctx context.Context, info CustomerInfo) (*customer.Customer, error) {
	uow := h.customerUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	existing, err := repo.GetByEmail(ctx, info.Email)
	if err == nil {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	fresh, err := customer.NewCustomer(
		info.FirstName, info.LastName, info.Email,
		info.PhoneCountryCode, info.PhoneNumber,
	)
	if err != nil {
		return nil, err
	}

	stored, err := repo.Add(ctx, fresh)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		// Someone inserted the same email concurrently, use their row.
		_ = uow.Rollback(ctx)
		return h.fetchCustomer(ctx, info.Email)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return stored, nil
}

func (h *CreateOrderCommandHandler) fetchCustomer(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	uow := h.customerUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.CustomerRepository().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return stored, nil
}

// createOrder writes the order header, address, lines and final amount in one
// transaction. Returns errs.ErrObjectAlreadyExists when the allocated order
// number collided with a concurrent creation.
func (h *CreateOrderCommandHandler) createOrder(
	ctx context.Context,
	cmd CreateOrderCommand,
	cust *customer.Customer,
) (*order.Order, error) {
	uow := h.orderUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	maxID, err := orderRepo.MaxID(ctx)
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewOrderNumber(maxID + 1)
	if err != nil {
		return nil, err
	}

	shipping := cmd.Shipping()
	address, err := order.NewAddress(
		shipping.Building, shipping.ApartmentNo, shipping.HouseNo,
		shipping.Street, shipping.City, shipping.Country,
	)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		number, cust.ID(), cmd.UserID(),
		time.Now().UTC(), cmd.PaymentMethod(), address,
	)
	if err != nil {
		return nil, err
	}

	stored, err := orderRepo.Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	for _, item := range cmd.Items() {
		product, err := productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		line, err := h.pricer.Price(product, item.Quantity, item.Discount)
		if err != nil {
			return nil, err
		}

		if err = stored.AddLine(line); err != nil {
			return nil, err
		}
		if err = orderRepo.AddLine(ctx, stored.ID(), line); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, stored); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return stored, nil
}
