package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// ContactServiceName is the fully-qualified name of the ContactService.
	ContactServiceName = "brewandbake.v1.ContactService"

	ContactServiceSubmitContactProcedure = "/brewandbake.v1.ContactService/SubmitContact"
	ContactServiceSubscribeProcedure     = "/brewandbake.v1.ContactService/Subscribe"
	ContactServiceUnsubscribeProcedure   = "/brewandbake.v1.ContactService/Unsubscribe"
)

// SubmitContactRequest is the contact form. Every field is required.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContactResponse tells the form how long to show its confirmation.
type SubmitContactResponse struct {
	ID                  string `json:"id"`
	AcknowledgeMillis   int64  `json:"acknowledgeMillis"`
	AcknowledgementText string `json:"acknowledgementText"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscribeResponse returns the unsubscribe token. It is not retrievable later.
type SubscribeResponse struct {
	Email             string `json:"email"`
	UnsubscribeToken  string `json:"unsubscribeToken"`
	AlreadySubscribed bool   `json:"alreadySubscribed"`
}

type UnsubscribeRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type UnsubscribeResponse struct{}

// ContactServiceHandler is implemented by the contact service.
type ContactServiceHandler interface {
	SubmitContact(context.Context, *connect.Request[SubmitContactRequest]) (*connect.Response[SubmitContactResponse], error)
	Subscribe(context.Context, *connect.Request[SubscribeRequest]) (*connect.Response[SubscribeResponse], error)
	Unsubscribe(context.Context, *connect.Request[UnsubscribeRequest]) (*connect.Response[UnsubscribeResponse], error)
}

// NewContactServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewContactServiceHandler(svc ContactServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	handlers := map[string]http.Handler{
		ContactServiceSubmitContactProcedure: connect.NewUnaryHandler(ContactServiceSubmitContactProcedure, svc.SubmitContact, opts...),
		ContactServiceSubscribeProcedure:     connect.NewUnaryHandler(ContactServiceSubscribeProcedure, svc.Subscribe, opts...),
		ContactServiceUnsubscribeProcedure:   connect.NewUnaryHandler(ContactServiceUnsubscribeProcedure, svc.Unsubscribe, opts...),
	}

	return servicePath(ContactServiceName), routeProcedures(handlers)
}

// ContactServiceClient calls a remote ContactService.
type ContactServiceClient struct {
	submitContact *connect.Client[SubmitContactRequest, SubmitContactResponse]
	subscribe     *connect.Client[SubscribeRequest, SubscribeResponse]
	unsubscribe   *connect.Client[UnsubscribeRequest, UnsubscribeResponse]
}

// NewContactServiceClient creates a client for the service at baseURL.
func NewContactServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ContactServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ContactServiceClient{
		submitContact: connect.NewClient[SubmitContactRequest, SubmitContactResponse](httpClient, baseURL+ContactServiceSubmitContactProcedure, opts...),
		subscribe:     connect.NewClient[SubscribeRequest, SubscribeResponse](httpClient, baseURL+ContactServiceSubscribeProcedure, opts...),
		unsubscribe:   connect.NewClient[UnsubscribeRequest, UnsubscribeResponse](httpClient, baseURL+ContactServiceUnsubscribeProcedure, opts...),
	}
}

func (c *ContactServiceClient) SubmitContact(ctx context.Context, req *connect.Request[SubmitContactRequest]) (*connect.Response[SubmitContactResponse], error) {
	return c.submitContact.CallUnary(ctx, req)
}

func (c *ContactServiceClient) Subscribe(ctx context.Context, req *connect.Request[SubscribeRequest]) (*connect.Response[SubscribeResponse], error) {
	return c.subscribe.CallUnary(ctx, req)
}

func (c *ContactServiceClient) Unsubscribe(ctx context.Context, req *connect.Request[UnsubscribeRequest]) (*connect.Response[UnsubscribeResponse], error) {
	return c.unsubscribe.CallUnary(ctx, req)
}
