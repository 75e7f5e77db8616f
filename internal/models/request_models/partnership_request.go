package request_models

type PartnershipCodeCreateRequest struct {
	Code string `json:"code" binding:"required"`
}
