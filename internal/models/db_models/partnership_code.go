package db_models

type PartnershipCode struct {
	BaseModel
	Code     string `gorm:"uniqueIndex"`
	IsActive bool   `gorm:"default:true"`
}
