package models

import (
	"time"

	"github.com/google/uuid"
)

const PostContentMaxRunes = 1000

type Post struct {
	Versioned

	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Post) GetID() string { return p.ID.String() }
