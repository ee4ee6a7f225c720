package model

import "time"

// Category groups menu items for navigation.
type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// MenuItem is an admin-managed dish. Channel availability flags gate what
// customers see; staff listings ignore them.
type MenuItem struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              int64     `json:"price"`
	CategoryID         int64     `json:"category_id"`
	ImageURL           string    `json:"image_url"`
	AvailableOnWebsite bool      `json:"available_on_website"`
	AvailableOnMobile  bool      `json:"available_on_mobile"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
