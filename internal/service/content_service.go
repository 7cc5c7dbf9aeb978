package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/brewandbake/internal/calculator"
	"github.com/mmynk/brewandbake/internal/content"
	"github.com/mmynk/brewandbake/pkg/api"
)

// ContentService implements the Connect ContentService for the static pages.
type ContentService struct{}

// NewContentService creates a new ContentService.
func NewContentService() *ContentService {
	return &ContentService{}
}

var _ api.ContentServiceHandler = (*ContentService)(nil)

// GetHomeContent returns the bestsellers and customer reviews.
func (s *ContentService) GetHomeContent(ctx context.Context, req *connect.Request[api.GetHomeContentRequest]) (*connect.Response[api.GetHomeContentResponse], error) {
	bestsellers := content.Bestsellers()
	reviews := content.Reviews()

	resp := &api.GetHomeContentResponse{
		Bestsellers: make([]api.Bestseller, len(bestsellers)),
		Reviews:     make([]api.Review, len(reviews)),
	}
	for i, b := range bestsellers {
		resp.Bestsellers[i] = api.Bestseller{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Price:       calculator.FormatMoney(b.Price),
			Color:       b.Color,
		}
	}
	for i, r := range reviews {
		resp.Reviews[i] = api.Review{ID: r.ID, Author: r.Author, Rating: r.Rating, Text: r.Text}
	}

	return connect.NewResponse(resp), nil
}

// GetAboutContent returns the values and the story timeline.
func (s *ContentService) GetAboutContent(ctx context.Context, req *connect.Request[api.GetAboutContentRequest]) (*connect.Response[api.GetAboutContentResponse], error) {
	values := content.Values()
	timeline := content.Timeline()

	resp := &api.GetAboutContentResponse{
		Values:   make([]api.Value, len(values)),
		Timeline: make([]api.Milestone, len(timeline)),
	}
	for i, v := range values {
		resp.Values[i] = api.Value{ID: v.ID, Title: v.Title, Description: v.Description, Color: v.Color}
	}
	for i, m := range timeline {
		resp.Timeline[i] = api.Milestone{Year: m.Year, Title: m.Title, Description: m.Description}
	}

	return connect.NewResponse(resp), nil
}

// GetContactInfo returns the shop's address, phone, email and hours.
func (s *ContentService) GetContactInfo(ctx context.Context, req *connect.Request[api.GetContactInfoRequest]) (*connect.Response[api.GetContactInfoResponse], error) {
	info := content.Contact()
	hours := make([]api.OpeningHours, len(info.Hours))
	for i, h := range info.Hours {
		hours[i] = api.OpeningHours{Days: h.Days, Hours: h.Hours}
	}

	return connect.NewResponse(&api.GetContactInfoResponse{
		Street: info.Street,
		City:   info.City,
		Phone:  info.Phone,
		Email:  info.Email,
		Hours:  hours,
	}), nil
}
