package request_models

type CustomerCreateRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	ClassLevel string `json:"class_level" binding:"required"`

	// Parallel lists: camps[i] costs prices[i].
	Camps  []string  `json:"camps" binding:"required"`
	Prices []float64 `json:"prices" binding:"required,dive,gte=0"`

	PartnershipCode string `json:"partnership_code"`
	PreviousRank    *int   `json:"previous_rank"`
	City            string `json:"city" binding:"required"`
}
