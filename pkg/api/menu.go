package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// MenuServiceName is the fully-qualified name of the MenuService.
	MenuServiceName = "brewandbake.v1.MenuService"

	MenuServiceListCategoriesProcedure = "/brewandbake.v1.MenuService/ListCategories"
	MenuServiceFilterMenuProcedure     = "/brewandbake.v1.MenuService/FilterMenu"
	MenuServiceGetMenuItemProcedure    = "/brewandbake.v1.MenuService/GetMenuItem"
)

// Category is a menu filter tab.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MenuItem is a catalog entry. Price is formatted with two decimals.
type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Color       string `json:"color"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// FilterMenuRequest selects items by category and free-text search.
// An empty category means all.
type FilterMenuRequest struct {
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
}

type FilterMenuResponse struct {
	Items []MenuItem `json:"items"`
}

type GetMenuItemRequest struct {
	ID int `json:"id"`
}

type GetMenuItemResponse struct {
	Item MenuItem `json:"item"`
}

// MenuServiceHandler is implemented by the menu service.
type MenuServiceHandler interface {
	ListCategories(context.Context, *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error)
	FilterMenu(context.Context, *connect.Request[FilterMenuRequest]) (*connect.Response[FilterMenuResponse], error)
	GetMenuItem(context.Context, *connect.Request[GetMenuItemRequest]) (*connect.Response[GetMenuItemResponse], error)
}

// NewMenuServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewMenuServiceHandler(svc MenuServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerOptions(opts), connect.WithIdempotency(connect.IdempotencyNoSideEffects))
	listCategories := connect.NewUnaryHandler(MenuServiceListCategoriesProcedure, svc.ListCategories, opts...)
	filterMenu := connect.NewUnaryHandler(MenuServiceFilterMenuProcedure, svc.FilterMenu, opts...)
	getMenuItem := connect.NewUnaryHandler(MenuServiceGetMenuItemProcedure, svc.GetMenuItem, opts...)

	return servicePath(MenuServiceName), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case MenuServiceListCategoriesProcedure:
			listCategories.ServeHTTP(w, r)
		case MenuServiceFilterMenuProcedure:
			filterMenu.ServeHTTP(w, r)
		case MenuServiceGetMenuItemProcedure:
			getMenuItem.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// MenuServiceClient calls a remote MenuService.
type MenuServiceClient struct {
	listCategories *connect.Client[ListCategoriesRequest, ListCategoriesResponse]
	filterMenu     *connect.Client[FilterMenuRequest, FilterMenuResponse]
	getMenuItem    *connect.Client[GetMenuItemRequest, GetMenuItemResponse]
}

// NewMenuServiceClient creates a client for the service at baseURL.
func NewMenuServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *MenuServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &MenuServiceClient{
		listCategories: connect.NewClient[ListCategoriesRequest, ListCategoriesResponse](httpClient, baseURL+MenuServiceListCategoriesProcedure, opts...),
		filterMenu:     connect.NewClient[FilterMenuRequest, FilterMenuResponse](httpClient, baseURL+MenuServiceFilterMenuProcedure, opts...),
		getMenuItem:    connect.NewClient[GetMenuItemRequest, GetMenuItemResponse](httpClient, baseURL+MenuServiceGetMenuItemProcedure, opts...),
	}
}

func (c *MenuServiceClient) ListCategories(ctx context.Context, req *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

func (c *MenuServiceClient) FilterMenu(ctx context.Context, req *connect.Request[FilterMenuRequest]) (*connect.Response[FilterMenuResponse], error) {
	return c.filterMenu.CallUnary(ctx, req)
}

func (c *MenuServiceClient) GetMenuItem(ctx context.Context, req *connect.Request[GetMenuItemRequest]) (*connect.Response[GetMenuItemResponse], error) {
	return c.getMenuItem.CallUnary(ctx, req)
}

func servicePath(service string) string {
	return "/" + service + "/"
}
