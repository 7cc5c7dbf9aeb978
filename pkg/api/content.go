package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// ContentServiceName is the fully-qualified name of the ContentService.
	ContentServiceName = "brewandbake.v1.ContentService"

	ContentServiceGetHomeContentProcedure  = "/brewandbake.v1.ContentService/GetHomeContent"
	ContentServiceGetAboutContentProcedure = "/brewandbake.v1.ContentService/GetAboutContent"
	ContentServiceGetContactInfoProcedure  = "/brewandbake.v1.ContentService/GetContactInfo"
)

type Review struct {
	ID     int    `json:"id"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type Bestseller struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Color       string `json:"color"`
}

type Value struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type Milestone struct {
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type OpeningHours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type GetHomeContentRequest struct{}

type GetHomeContentResponse struct {
	Bestsellers []Bestseller `json:"bestsellers"`
	Reviews     []Review     `json:"reviews"`
}

type GetAboutContentRequest struct{}

type GetAboutContentResponse struct {
	Values   []Value     `json:"values"`
	Timeline []Milestone `json:"timeline"`
}

type GetContactInfoRequest struct{}

type GetContactInfoResponse struct {
	Street string         `json:"street"`
	City   string         `json:"city"`
	Phone  string         `json:"phone"`
	Email  string         `json:"email"`
	Hours  []OpeningHours `json:"hours"`
}

// ContentServiceHandler is implemented by the content service.
type ContentServiceHandler interface {
	GetHomeContent(context.Context, *connect.Request[GetHomeContentRequest]) (*connect.Response[GetHomeContentResponse], error)
	GetAboutContent(context.Context, *connect.Request[GetAboutContentRequest]) (*connect.Response[GetAboutContentResponse], error)
	GetContactInfo(context.Context, *connect.Request[GetContactInfoRequest]) (*connect.Response[GetContactInfoResponse], error)
}

// NewContentServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewContentServiceHandler(svc ContentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerOptions(opts), connect.WithIdempotency(connect.IdempotencyNoSideEffects))
	handlers := map[string]http.Handler{
		ContentServiceGetHomeContentProcedure:  connect.NewUnaryHandler(ContentServiceGetHomeContentProcedure, svc.GetHomeContent, opts...),
		ContentServiceGetAboutContentProcedure: connect.NewUnaryHandler(ContentServiceGetAboutContentProcedure, svc.GetAboutContent, opts...),
		ContentServiceGetContactInfoProcedure:  connect.NewUnaryHandler(ContentServiceGetContactInfoProcedure, svc.GetContactInfo, opts...),
	}

	return servicePath(ContentServiceName), routeProcedures(handlers)
}

// ContentServiceClient calls a remote ContentService.
type ContentServiceClient struct {
	getHomeContent  *connect.Client[GetHomeContentRequest, GetHomeContentResponse]
	getAboutContent *connect.Client[GetAboutContentRequest, GetAboutContentResponse]
	getContactInfo  *connect.Client[GetContactInfoRequest, GetContactInfoResponse]
}

// NewContentServiceClient creates a client for the service at baseURL.
func NewContentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ContentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ContentServiceClient{
		getHomeContent:  connect.NewClient[GetHomeContentRequest, GetHomeContentResponse](httpClient, baseURL+ContentServiceGetHomeContentProcedure, opts...),
		getAboutContent: connect.NewClient[GetAboutContentRequest, GetAboutContentResponse](httpClient, baseURL+ContentServiceGetAboutContentProcedure, opts...),
		getContactInfo:  connect.NewClient[GetContactInfoRequest, GetContactInfoResponse](httpClient, baseURL+ContentServiceGetContactInfoProcedure, opts...),
	}
}

func (c *ContentServiceClient) GetHomeContent(ctx context.Context, req *connect.Request[GetHomeContentRequest]) (*connect.Response[GetHomeContentResponse], error) {
	return c.getHomeContent.CallUnary(ctx, req)
}

func (c *ContentServiceClient) GetAboutContent(ctx context.Context, req *connect.Request[GetAboutContentRequest]) (*connect.Response[GetAboutContentResponse], error) {
	return c.getAboutContent.CallUnary(ctx, req)
}

func (c *ContentServiceClient) GetContactInfo(ctx context.Context, req *connect.Request[GetContactInfoRequest]) (*connect.Response[GetContactInfoResponse], error) {
	return c.getContactInfo.CallUnary(ctx, req)
}
