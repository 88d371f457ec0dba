/*
Package api implements the thin REST client for the huecas backend.

This file covers the restaurant catalog surface: restaurant listing and CRUD,
reviews, likes, and the REST history fallback for chat. All records here are
remote-owned; creates and updates return the server's canonical copy.
*/
package api

import (
	"context"
	"net/url"
	"strings"
)

// GetRestaurants lists restaurants, optionally narrowed by cuisine and location filters.
func (c *Client) GetRestaurants(ctx context.Context, filters *RestaurantFilters) ([]Restaurant, error) {
	path := "/api/restaurants"

	if filters != nil {
		params := url.Values{}

		if len(filters.Cuisines) > 0 {
			params.Set("cuisines", strings.Join(filters.Cuisines, ","))
		}
		if filters.Location != "" {
			params.Set("location", filters.Location)
		}

		if encoded := params.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	var restaurants []Restaurant
	if customErr := c.get(ctx, path, &restaurants); customErr != nil {
		return nil, customErr
	}
	return restaurants, nil
}

// GetRestaurant fetches a single restaurant. A missing record reports a
// not-found error the UI renders as an empty-state view.
func (c *Client) GetRestaurant(ctx context.Context, id string) (*Restaurant, error) {
	var restaurant Restaurant
	if customErr := c.get(ctx, "/api/restaurants/"+url.PathEscape(id), &restaurant); customErr != nil {
		return nil, customErr
	}
	return &restaurant, nil
}

// CreateRestaurant submits a new restaurant and returns the server's canonical copy.
func (c *Client) CreateRestaurant(ctx context.Context, restaurant Restaurant) (*Restaurant, error) {
	var created Restaurant
	if customErr := c.post(ctx, "/api/restaurants", restaurant, &created); customErr != nil {
		return nil, customErr
	}
	return &created, nil
}

// DeleteRestaurant removes a restaurant.
func (c *Client) DeleteRestaurant(ctx context.Context, id string) error {
	if customErr := c.delete(ctx, "/api/restaurants/"+url.PathEscape(id)); customErr != nil {
		return customErr
	}
	return nil
}

// reviewRequest is the wire shape of a review create/update.
type reviewRequest struct {
	RestaurantID string `json:"restaurantId,omitempty"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Image        string `json:"image,omitempty"`
}

// CreateReview posts a rating/comment (and optional photo, as a data URL) for
// a restaurant, returning the server's canonical copy.
func (c *Client) CreateReview(ctx context.Context, restaurantID string, rating int, comment, image string) (*Review, error) {
	request := reviewRequest{
		RestaurantID: restaurantID,
		Rating:       rating,
		Comment:      comment,
		Image:        image,
	}

	var created Review
	if customErr := c.post(ctx, "/api/reviews", request, &created); customErr != nil {
		return nil, customErr
	}
	return &created, nil
}

// GetReviewsByRestaurant lists the reviews for one restaurant.
func (c *Client) GetReviewsByRestaurant(ctx context.Context, restaurantID string) ([]Review, error) {
	var reviews []Review
	if customErr := c.get(ctx, "/api/reviews/"+url.PathEscape(restaurantID), &reviews); customErr != nil {
		return nil, customErr
	}
	return reviews, nil
}

// UpdateReview edits an existing review. Only the review owner may edit;
// ownership is enforced server-side.
func (c *Client) UpdateReview(ctx context.Context, reviewID string, rating int, comment, image string) (*Review, error) {
	request := reviewRequest{
		Rating:  rating,
		Comment: comment,
		Image:   image,
	}

	var updated Review
	if customErr := c.put(ctx, "/api/reviews/"+url.PathEscape(reviewID), request, &updated); customErr != nil {
		return nil, customErr
	}
	return &updated, nil
}

// DeleteReview removes a review. Callers confirm destructive intent before
// issuing the request.
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	if customErr := c.delete(ctx, "/api/reviews/"+url.PathEscape(reviewID)); customErr != nil {
		return customErr
	}
	return nil
}

// ToggleLike flips the current user's like for a restaurant and returns the new state.
func (c *Client) ToggleLike(ctx context.Context, restaurantID string) (*LikeStatus, error) {
	body := map[string]string{"restaurantId": restaurantID}

	var status LikeStatus
	if customErr := c.post(ctx, "/api/like", body, &status); customErr != nil {
		return nil, customErr
	}
	return &status, nil
}

// GetLikeStatus reports whether the current user likes a restaurant.
func (c *Client) GetLikeStatus(ctx context.Context, restaurantID string) (*LikeStatus, error) {
	var status LikeStatus
	if customErr := c.get(ctx, "/api/likes/"+url.PathEscape(restaurantID), &status); customErr != nil {
		return nil, customErr
	}
	return &status, nil
}

// ChatHistoryMessage is one past message as returned by the REST history fallback.
type ChatHistoryMessage struct {
	ID        string `json:"_id,omitempty"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// GetChatHistory fetches past messages for a room over REST. The live chat
// manager receives history over its own connection instead; this endpoint is
// the fallback surface only.
func (c *Client) GetChatHistory(ctx context.Context, room string) ([]ChatHistoryMessage, error) {
	var history []ChatHistoryMessage
	if customErr := c.get(ctx, "/chat/messages?room="+url.QueryEscape(room), &history); customErr != nil {
		return nil, customErr
	}
	return history, nil
}
