package db_models

import (
	"github.com/lib/pq"
)

// Customer is one enrollment. Camps and Prices are parallel arrays: camp i
// costs Prices[i].
type Customer struct {
	BaseModel
	FullName   string
	Phone      string
	Email      string
	ClassLevel string

	Camps  pq.StringArray  `gorm:"type:text[]"`
	Prices pq.Float64Array `gorm:"type:float8[]"`

	// Referenced by value; a deactivated or removed code is tolerated here.
	PartnershipCode string `gorm:"index"`
	PreviousRank    *int
	City            string

	IsPaid    bool
	IsDeleted bool `gorm:"index"`
	DeletedAt *int64
}

func (c *Customer) TotalPrice() float64 {
	var total float64
	for _, p := range c.Prices {
		total += p
	}
	return total
}
