package dto

// MenuItemRequest describes admin create/update of a dish.
type MenuItemRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Price              int64  `json:"price"`
	CategoryID         int64  `json:"category_id"`
	ImageURL           string `json:"image_url"`
	AvailableOnWebsite bool   `json:"available_on_website"`
	AvailableOnMobile  bool   `json:"available_on_mobile"`
}

// CategoryRequest describes admin create/update of a category.
type CategoryRequest struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}
