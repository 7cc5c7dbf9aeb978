package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/brewandbake/internal/catalog"
	"github.com/mmynk/brewandbake/pkg/api"
)

// MenuService implements the Connect MenuService over the static catalog.
type MenuService struct{}

// NewMenuService creates a new MenuService.
func NewMenuService() *MenuService {
	return &MenuService{}
}

var _ api.MenuServiceHandler = (*MenuService)(nil)

// ListCategories returns the menu filter tabs.
func (s *MenuService) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	tabs := catalog.Categories()
	categories := make([]api.Category, len(tabs))
	for i, tab := range tabs {
		categories[i] = api.Category{ID: string(tab.ID), Label: tab.Label}
	}

	return connect.NewResponse(&api.ListCategoriesResponse{Categories: categories}), nil
}

// FilterMenu returns the catalog items matching a category and search text.
func (s *MenuService) FilterMenu(ctx context.Context, req *connect.Request[api.FilterMenuRequest]) (*connect.Response[api.FilterMenuResponse], error) {
	slog.Info("FilterMenu request received",
		"category", req.Msg.Category,
		"search", req.Msg.Search,
	)

	category, err := catalog.ParseCategory(req.Msg.Category)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	matched := catalog.Filter(catalog.Menu(), category, req.Msg.Search)
	items := make([]api.MenuItem, len(matched))
	for i, item := range matched {
		items[i] = toAPIMenuItem(item)
	}

	slog.Info("FilterMenu successful", "count", len(items))

	return connect.NewResponse(&api.FilterMenuResponse{Items: items}), nil
}

// GetMenuItem returns one catalog item.
func (s *MenuService) GetMenuItem(ctx context.Context, req *connect.Request[api.GetMenuItemRequest]) (*connect.Response[api.GetMenuItemResponse], error) {
	item, ok := catalog.Lookup(req.Msg.ID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("menu item %d not found", req.Msg.ID))
	}

	return connect.NewResponse(&api.GetMenuItemResponse{Item: toAPIMenuItem(item)}), nil
}
