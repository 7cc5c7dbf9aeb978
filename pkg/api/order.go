package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// OrderServiceName is the fully-qualified name of the OrderService.
	OrderServiceName = "brewandbake.v1.OrderService"

	OrderServiceStartOrderProcedure        = "/brewandbake.v1.OrderService/StartOrder"
	OrderServiceGetOrderProcedure          = "/brewandbake.v1.OrderService/GetOrder"
	OrderServiceIncreaseQuantityProcedure  = "/brewandbake.v1.OrderService/IncreaseQuantity"
	OrderServiceDecreaseQuantityProcedure  = "/brewandbake.v1.OrderService/DecreaseQuantity"
	OrderServiceNextStepProcedure          = "/brewandbake.v1.OrderService/NextStep"
	OrderServicePreviousStepProcedure      = "/brewandbake.v1.OrderService/PreviousStep"
	OrderServiceGoToStepProcedure          = "/brewandbake.v1.OrderService/GoToStep"
	OrderServiceSetDeliveryMethodProcedure = "/brewandbake.v1.OrderService/SetDeliveryMethod"
	OrderServiceSetPaymentMethodProcedure  = "/brewandbake.v1.OrderService/SetPaymentMethod"
)

// OrderLine is one cart line. Money fields are formatted with two decimals.
type OrderLine struct {
	ItemID    int    `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

// OrderTotals are the derived amounts of a cart.
type OrderTotals struct {
	Subtotal    string `json:"subtotal"`
	Tax         string `json:"tax"`
	DeliveryFee string `json:"deliveryFee"`
	Total       string `json:"total"`
}

// Order is the full state of an order page session.
type Order struct {
	SessionID       string      `json:"sessionId"`
	Lines           []OrderLine `json:"lines"`
	ItemCount       int         `json:"itemCount"`
	Totals          OrderTotals `json:"totals"`
	Step            string      `json:"step"`
	StepNumber      int         `json:"stepNumber"`
	DeliveryMethod  string      `json:"deliveryMethod"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
	PaymentMethod   string      `json:"paymentMethod"`
}

// SeedItem puts quantity units of a catalog item in a new cart.
type SeedItem struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

// StartOrderRequest opens a session. Without items the house selection is
// used unless Empty is set.
type StartOrderRequest struct {
	Items []SeedItem `json:"items,omitempty"`
	Empty bool       `json:"empty,omitempty"`
}

// StartOrderResponse carries the bearer token for later calls.
type StartOrderResponse struct {
	Token string `json:"token"`
	Order Order  `json:"order"`
}

type GetOrderRequest struct{}

// QuantityRequest names the cart line to change.
type QuantityRequest struct {
	ItemID int `json:"itemId"`
}

type NextStepRequest struct{}

type PreviousStepRequest struct{}

type GoToStepRequest struct {
	Step string `json:"step"`
}

// SetDeliveryMethodRequest selects pickup or delivery. Address is kept for delivery only.
type SetDeliveryMethodRequest struct {
	Method  string `json:"method"`
	Address string `json:"address,omitempty"`
}

type SetPaymentMethodRequest struct {
	Method string `json:"method"`
}

// OrderResponse is returned by every call that reads or changes a session.
type OrderResponse struct {
	Order Order `json:"order"`
}

// OrderServiceHandler is implemented by the order service.
type OrderServiceHandler interface {
	StartOrder(context.Context, *connect.Request[StartOrderRequest]) (*connect.Response[StartOrderResponse], error)
	GetOrder(context.Context, *connect.Request[GetOrderRequest]) (*connect.Response[OrderResponse], error)
	IncreaseQuantity(context.Context, *connect.Request[QuantityRequest]) (*connect.Response[OrderResponse], error)
	DecreaseQuantity(context.Context, *connect.Request[QuantityRequest]) (*connect.Response[OrderResponse], error)
	NextStep(context.Context, *connect.Request[NextStepRequest]) (*connect.Response[OrderResponse], error)
	PreviousStep(context.Context, *connect.Request[PreviousStepRequest]) (*connect.Response[OrderResponse], error)
	GoToStep(context.Context, *connect.Request[GoToStepRequest]) (*connect.Response[OrderResponse], error)
	SetDeliveryMethod(context.Context, *connect.Request[SetDeliveryMethodRequest]) (*connect.Response[OrderResponse], error)
	SetPaymentMethod(context.Context, *connect.Request[SetPaymentMethodRequest]) (*connect.Response[OrderResponse], error)
}

// NewOrderServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewOrderServiceHandler(svc OrderServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		OrderServiceStartOrderProcedure:        connect.NewUnaryHandler(OrderServiceStartOrderProcedure, svc.StartOrder, opts...),
		OrderServiceGetOrderProcedure:          connect.NewUnaryHandler(OrderServiceGetOrderProcedure, svc.GetOrder, opts...),
		OrderServiceIncreaseQuantityProcedure:  connect.NewUnaryHandler(OrderServiceIncreaseQuantityProcedure, svc.IncreaseQuantity, opts...),
		OrderServiceDecreaseQuantityProcedure:  connect.NewUnaryHandler(OrderServiceDecreaseQuantityProcedure, svc.DecreaseQuantity, opts...),
		OrderServiceNextStepProcedure:          connect.NewUnaryHandler(OrderServiceNextStepProcedure, svc.NextStep, opts...),
		OrderServicePreviousStepProcedure:      connect.NewUnaryHandler(OrderServicePreviousStepProcedure, svc.PreviousStep, opts...),
		OrderServiceGoToStepProcedure:          connect.NewUnaryHandler(OrderServiceGoToStepProcedure, svc.GoToStep, opts...),
		OrderServiceSetDeliveryMethodProcedure: connect.NewUnaryHandler(OrderServiceSetDeliveryMethodProcedure, svc.SetDeliveryMethod, opts...),
		OrderServiceSetPaymentMethodProcedure:  connect.NewUnaryHandler(OrderServiceSetPaymentMethodProcedure, svc.SetPaymentMethod, opts...),
	}

	return servicePath(OrderServiceName), routeProcedures(handlers)
}

// OrderServiceClient calls a remote OrderService.
type OrderServiceClient struct {
	startOrder        *connect.Client[StartOrderRequest, StartOrderResponse]
	getOrder          *connect.Client[GetOrderRequest, OrderResponse]
	increaseQuantity  *connect.Client[QuantityRequest, OrderResponse]
	decreaseQuantity  *connect.Client[QuantityRequest, OrderResponse]
	nextStep          *connect.Client[NextStepRequest, OrderResponse]
	previousStep      *connect.Client[PreviousStepRequest, OrderResponse]
	goToStep          *connect.Client[GoToStepRequest, OrderResponse]
	setDeliveryMethod *connect.Client[SetDeliveryMethodRequest, OrderResponse]
	setPaymentMethod  *connect.Client[SetPaymentMethodRequest, OrderResponse]
}

// NewOrderServiceClient creates a client for the service at baseURL.
func NewOrderServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *OrderServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &OrderServiceClient{
		startOrder:        connect.NewClient[StartOrderRequest, StartOrderResponse](httpClient, baseURL+OrderServiceStartOrderProcedure, opts...),
		getOrder:          connect.NewClient[GetOrderRequest, OrderResponse](httpClient, baseURL+OrderServiceGetOrderProcedure, opts...),
		increaseQuantity:  connect.NewClient[QuantityRequest, OrderResponse](httpClient, baseURL+OrderServiceIncreaseQuantityProcedure, opts...),
		decreaseQuantity:  connect.NewClient[QuantityRequest, OrderResponse](httpClient, baseURL+OrderServiceDecreaseQuantityProcedure, opts...),
		nextStep:          connect.NewClient[NextStepRequest, OrderResponse](httpClient, baseURL+OrderServiceNextStepProcedure, opts...),
		previousStep:      connect.NewClient[PreviousStepRequest, OrderResponse](httpClient, baseURL+OrderServicePreviousStepProcedure, opts...),
		goToStep:          connect.NewClient[GoToStepRequest, OrderResponse](httpClient, baseURL+OrderServiceGoToStepProcedure, opts...),
		setDeliveryMethod: connect.NewClient[SetDeliveryMethodRequest, OrderResponse](httpClient, baseURL+OrderServiceSetDeliveryMethodProcedure, opts...),
		setPaymentMethod:  connect.NewClient[SetPaymentMethodRequest, OrderResponse](httpClient, baseURL+OrderServiceSetPaymentMethodProcedure, opts...),
	}
}

func (c *OrderServiceClient) StartOrder(ctx context.Context, req *connect.Request[StartOrderRequest]) (*connect.Response[StartOrderResponse], error) {
	return c.startOrder.CallUnary(ctx, req)
}

func (c *OrderServiceClient) GetOrder(ctx context.Context, req *connect.Request[GetOrderRequest]) (*connect.Response[OrderResponse], error) {
	return c.getOrder.CallUnary(ctx, req)
}

func (c *OrderServiceClient) IncreaseQuantity(ctx context.Context, req *connect.Request[QuantityRequest]) (*connect.Response[OrderResponse], error) {
	return c.increaseQuantity.CallUnary(ctx, req)
}

func (c *OrderServiceClient) DecreaseQuantity(ctx context.Context, req *connect.Request[QuantityRequest]) (*connect.Response[OrderResponse], error) {
	return c.decreaseQuantity.CallUnary(ctx, req)
}

func (c *OrderServiceClient) NextStep(ctx context.Context, req *connect.Request[NextStepRequest]) (*connect.Response[OrderResponse], error) {
	return c.nextStep.CallUnary(ctx, req)
}

func (c *OrderServiceClient) PreviousStep(ctx context.Context, req *connect.Request[PreviousStepRequest]) (*connect.Response[OrderResponse], error) {
	return c.previousStep.CallUnary(ctx, req)
}

func (c *OrderServiceClient) GoToStep(ctx context.Context, req *connect.Request[GoToStepRequest]) (*connect.Response[OrderResponse], error) {
	return c.goToStep.CallUnary(ctx, req)
}

func (c *OrderServiceClient) SetDeliveryMethod(ctx context.Context, req *connect.Request[SetDeliveryMethodRequest]) (*connect.Response[OrderResponse], error) {
	return c.setDeliveryMethod.CallUnary(ctx, req)
}

func (c *OrderServiceClient) SetPaymentMethod(ctx context.Context, req *connect.Request[SetPaymentMethodRequest]) (*connect.Response[OrderResponse], error) {
	return c.setPaymentMethod.CallUnary(ctx, req)
}

func routeProcedures(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
