package model

import "errors"

// Common errors used across the application
var (
	// Play record errors
	ErrRecordNotFound = errors.New("play record not found")
	ErrRecordExists   = errors.New("play record already exists for this identity")

	// Asset catalog errors
	ErrAssetsUnavailable = errors.New("image assets missing or empty")
	ErrAssetNotFound     = errors.New("image not found")

	// System status errors
	ErrStatusNotFound = errors.New("system status not initialized")
)
