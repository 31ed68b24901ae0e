package service

import "errors"

// Service errors.
var (
	ErrSessionNotFound = errors.New("discovery session not found")
	ErrScanInProgress  = errors.New("discovery scan still in progress")
	ErrNoMatches       = errors.New("no matched artists in this session")
)
