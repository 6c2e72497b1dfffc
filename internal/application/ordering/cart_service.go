package ordering

import (
	"context"
	"sync"

	"github.com/elir12131/agroflow/internal/domain/catalog"
	"github.com/elir12131/agroflow/internal/domain/ordering"
	"github.com/elir12131/agroflow/internal/domain/partner"
	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/elir12131/agroflow/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// CartService manages per-customer working carts. Carts live in process
// memory only; checkout turns a cart into a persisted pending order.
type CartService struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*ordering.Cart

	customerRepo partner.CustomerRepository
	productRepo  catalog.ProductRepository
	orderRepo    ordering.OrderRepository
}

// NewCartService creates a new CartService
func NewCartService(
	customerRepo partner.CustomerRepository,
	productRepo catalog.ProductRepository,
	orderRepo ordering.OrderRepository,
) *CartService {
	return &CartService{
		carts:        make(map[uuid.UUID]*ordering.Cart),
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
	}
}

// GetCart returns the customer's cart, creating an empty one on first use
func (s *CartService) GetCart(ctx context.Context, customerID uuid.UUID) (*CartResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return ToCartResponse(s.cart(customerID)), nil
}

// AddItem adds a product to the customer's cart. The product's current
// name and price are snapshotted onto the line; an absent quantity
// means one.
func (s *CartService) AddItem(ctx context.Context, customerID uuid.UUID, req AddCartItemRequest) (*CartResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(customerID)
	if err := cart.AddItem(product.ID, product.Name, product.Price, quantity); err != nil {
		return nil, err
	}
	return ToCartResponse(cart), nil
}

// RemoveOne decrements a product's quantity in the cart by one
func (s *CartService) RemoveOne(ctx context.Context, customerID, productID uuid.UUID) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[customerID]
	if !ok {
		return nil, shared.NewDomainError("NOT_IN_CART", "Product is not in the cart")
	}
	if err := cart.RemoveOne(productID); err != nil {
		return nil, err
	}
	return ToCartResponse(cart), nil
}

// Clear empties the customer's cart
func (s *CartService) Clear(ctx context.Context, customerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[customerID]; ok {
		cart.Clear()
	}
}

// Checkout turns the customer's cart into a pending order. The cart is
// cleared only after the order is persisted.
func (s *CartService) Checkout(ctx context.Context, customerID uuid.UUID) (*OrderResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "cart.checkout",
		telemetry.WithAttribute("customer_id", customerID.String()),
	)
	defer span.End()

	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[customerID]
	if !ok || cart.IsEmpty() {
		err := shared.NewDomainError("EMPTY_CART", "Cannot checkout an empty cart")
		telemetry.RecordError(span, err)
		return nil, err
	}

	order, err := ordering.NewOrder(customerID, cart.Lines())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	cart.Clear()
	return ToOrderResponse(order, order.Items), nil
}

// cart returns the cart for a customer, creating it if needed.
// Caller must hold s.mu.
func (s *CartService) cart(customerID uuid.UUID) *ordering.Cart {
	cart, ok := s.carts[customerID]
	if !ok {
		cart = ordering.NewCart(customerID)
		s.carts[customerID] = cart
	}
	return cart
}
