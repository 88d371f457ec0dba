/*
Package api implements the thin REST client for the huecas backend.

This file defines the wire types exchanged with the server. Restaurant and
Review are remote-owned records: the client holds ephemeral read-through
copies fetched per view and mutates them only via REST round-trips.
*/
package api

import "huecas/internal/app/user"

// AuthResponse is the payload returned by the auth endpoints that issue tokens.
type AuthResponse struct {
	Message string    `json:"message,omitempty"`
	Token   string    `json:"token"`
	User    user.User `json:"user"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RestaurantLocation places a restaurant in one of the city sectors.
type RestaurantLocation struct {
	Sector      string       `json:"sector"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Restaurant is a remote-owned restaurant record.
type Restaurant struct {
	ID           string              `json:"_id"`
	Name         string              `json:"name"`
	Description  string              `json:"description,omitempty"`
	Address      string              `json:"address,omitempty"`
	Cuisine      string              `json:"cuisine"`
	Image        string              `json:"image,omitempty"`
	Location     *RestaurantLocation `json:"location,omitempty"`
	Rating       float64             `json:"rating,omitempty"`
	TotalRatings int                 `json:"totalRatings,omitempty"`
	CreatedAt    string              `json:"createdAt,omitempty"`
	UpdatedAt    string              `json:"updatedAt,omitempty"`
}

// RestaurantFilters narrows a restaurant listing by cuisines and/or location.
type RestaurantFilters struct {
	Cuisines []string
	Location string
}

// Review is a remote-owned review record.
type Review struct {
	ID           string `json:"_id"`
	RestaurantID string `json:"restaurantId"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment,omitempty"`
	Image        string `json:"image,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// LikeStatus reports whether the current user likes a restaurant.
type LikeStatus struct {
	Message string `json:"message,omitempty"`
	Liked   bool   `json:"liked"`
}

// ProfileUpdate carries the optional fields of a profile edit. Nil fields are
// omitted from the request and left untouched by the server.
type ProfileUpdate struct {
	Name        *string           `json:"name,omitempty"`
	Preferences *user.Preferences `json:"preferences,omitempty"`
}
