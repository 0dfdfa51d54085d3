package domain

import "time"

// Link maps a short code to its destination.
type Link struct {
	ShortCode   string `bson:"short_id" json:"short_id"`
	OriginalURL string `bson:"original_url" json:"original_url"`
	ShortURL    string `bson:"short_url" json:"short_url"`
	UserID      string `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CreatedAt   int64  `bson:"created_at" json:"created_at"`
	// Expiry is the lifetime in seconds; zero means the link never expires.
	Expiry int64 `bson:"expiry,omitempty" json:"expiry,omitempty"`
}

func (l *Link) ExpiresIn() time.Duration {
	return time.Duration(l.Expiry) * time.Second
}

type ShortenRequest struct {
	OriginalURL string `json:"original_url"`
	Expiry      *int64 `json:"expiry,omitempty"`
}

type ShortenResponse struct {
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
	Expiry      *int64 `json:"expiry,omitempty"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
