// Package content holds the fixed copy shown on the home, about and contact pages.
package content

import (
	"github.com/shopspring/decimal"
)

// Review is a customer quote shown in the home page carousel.
type Review struct {
	ID     int
	Author string
	Rating int
	Text   string
}

// Bestseller is a product highlighted on the home page.
type Bestseller struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Color       string
}

// Value is one of the café's core values.
type Value struct {
	ID          int
	Title       string
	Description string
	Color       string
}

// Milestone is an entry on the "our story" timeline.
type Milestone struct {
	Year        int
	Title       string
	Description string
}

// OpeningHours covers a range of days.
type OpeningHours struct {
	Days  string
	Hours string
}

// ContactInfo is the shop's address and opening hours.
type ContactInfo struct {
	Street string
	City   string
	Phone  string
	Email  string
	Hours  []OpeningHours
}

var reviews = []Review{
	{ID: 1, Author: "Sarah M.", Rating: 5, Text: "The almond croissants are absolutely divine! Best coffee shop in town with a warm, inviting atmosphere."},
	{ID: 2, Author: "James K.", Rating: 5, Text: "As a coffee connoisseur, I can confirm their beans are ethically sourced and perfectly roasted. A daily must-visit!"},
	{ID: 3, Author: "Emma R.", Rating: 4, Text: "Their cinnamon rolls are my weekend treat. Fresh, gooey, and perfect with their signature house blend coffee."},
	{ID: 4, Author: "Michael T.", Rating: 5, Text: "The atmosphere is as delightful as their pastries. I love working remotely from here, great WiFi and even better coffee!"},
	{ID: 5, Author: "Olivia P.", Rating: 5, Text: "Their seasonal specials never disappoint. The pumpkin spice latte and maple pecan danish combo is heavenly."},
}

var bestsellers = []Bestseller{
	{ID: 1, Name: "Classic Cappuccino", Description: "Rich espresso with velvety foam", Price: decimal.RequireFromString("4.50"), Color: "#8B5A2B"},
	{ID: 2, Name: "Almond Croissant", Description: "Buttery, flaky with almond filling", Price: decimal.RequireFromString("5.25"), Color: "#D2B48C"},
	{ID: 3, Name: "Cinnamon Roll", Description: "Soft dough with cinnamon swirls", Price: decimal.RequireFromString("4.75"), Color: "#C87941"},
	{ID: 4, Name: "Caramel Latte", Description: "Espresso with caramel and steamed milk", Price: decimal.RequireFromString("5.50"), Color: "#96694F"},
}

var values = []Value{
	{ID: 1, Title: "Quality", Description: "We never compromise on ingredients or processes, ensuring every cup and bite is perfect.", Color: "#8B5A2B"},
	{ID: 2, Title: "Sustainability", Description: "From composting to eco-friendly packaging, we prioritize the planet in everything we do.", Color: "#C87941"},
	{ID: 3, Title: "Community", Description: "We support local farmers and artisans, and give back through community initiatives.", Color: "#D2B48C"},
}

var timeline = []Milestone{
	{Year: 2015, Title: "Humble Beginnings", Description: "Started as a small cart at the local farmers market with a passion for quality coffee and pastries."},
	{Year: 2017, Title: "First Pop-Up Shop", Description: "After gaining a loyal following, we opened our first temporary pop-up in the downtown area."},
	{Year: 2018, Title: "Brick & Mortar", Description: "Opened our first permanent location on Coffee Lane, with a full bakery and coffee bar."},
	{Year: 2021, Title: "Community Hub", Description: "Expanded to include event space for workshops, tastings, and community gatherings."},
	{Year: 2023, Title: "Sustainability Award", Description: "Received recognition for our commitment to sustainable practices and ethical sourcing."},
	{Year: 2025, Title: "Looking Ahead", Description: "Continuing to grow and innovate while staying true to our core values and mission."},
}

var contactInfo = ContactInfo{
	Street: "123 Coffee Lane, Bakery District",
	City:   "City, State 12345",
	Phone:  "(123) 456-7890",
	Email:  "hello@brewandbake.com",
	Hours: []OpeningHours{
		{Days: "Monday - Friday", Hours: "7:00 AM - 8:00 PM"},
		{Days: "Saturday - Sunday", Hours: "8:00 AM - 9:00 PM"},
	},
}

// Reviews returns the carousel reviews in display order.
func Reviews() []Review {
	return append([]Review(nil), reviews...)
}

// Bestsellers returns the home page products in display order.
func Bestsellers() []Bestseller {
	return append([]Bestseller(nil), bestsellers...)
}

// Values returns the about page values.
func Values() []Value {
	return append([]Value(nil), values...)
}

// Timeline returns the story milestones, oldest first.
func Timeline() []Milestone {
	return append([]Milestone(nil), timeline...)
}

// Contact returns the shop's contact details.
func Contact() ContactInfo {
	info := contactInfo
	info.Hours = append([]OpeningHours(nil), contactInfo.Hours...)
	return info
}
