package entity

import "time"

// Client cliente de la tienda. El checkout lo resuelve por nombre.
type Client struct {
	ID           int64
	UserID       int64
	Name         string
	Phone        string
	RegisteredAt time.Time
}
