package dto

// DiscoverRequest starts a discovery run around a geographic point.
type DiscoverRequest struct {
	Lat      float64 `json:"lat" binding:"required" example:"40.7128"`
	Lng      float64 `json:"lng" binding:"required" example:"-74.0060"`
	Radius   int     `json:"radius" example:"100"`
	DateFrom string  `json:"date_from" example:"2026-09-01"`
	DateTo   string  `json:"date_to" example:"2026-12-31"`
}

// EventsRequest selects the filtered, sorted, paginated result window.
type EventsRequest struct {
	DateFrom string   `form:"date_from" example:"2026-09-01"`
	DateTo   string   `form:"date_to" example:"2026-12-31"`
	PriceMin *float64 `form:"price_min" example:"25"`
	PriceMax *float64 `form:"price_max" example:"150"`
	Genres   []string `form:"genres" example:"rock,indie"`
	Venues   []string `form:"venues" example:"fillmore"`
	Sort     string   `form:"sort" example:"match"`
	Page     int      `form:"page" example:"0"`
}
