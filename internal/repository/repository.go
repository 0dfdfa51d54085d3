// Package repository holds the storage contracts shared by the mongo and
// memory implementations.
package repository

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate short code")
)

const (
	LinksCollection     = "urls"
	AnalyticsCollection = "url_analytics"
)
