package entities

import "time"

type Location struct {
	ID        uint64    `json:"id" db:"id"`
	Name      string    `json:"name" db:"nome"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
