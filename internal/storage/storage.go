package storage

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrSlugTaken     = errors.New("event with this slug already exists")
)
