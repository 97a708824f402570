package domain

import "time"

type Employer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerID   int64     `json:"ownerID"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
