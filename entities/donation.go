package entities

import (
	"time"
)

type FoodRequest struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrgDetailsUserID uint      `gorm:"index;not null" json:"org_details_user_id"`
	Title            string    `gorm:"not null" json:"title"`
	Products         string    `gorm:"type:text" json:"products"`
	Quantity         int       `gorm:"not null" json:"quantity"`
	DateTime         time.Time `json:"dateTime"`
	Notes            string    `gorm:"type:text" json:"notes"`
	Urgent           bool      `gorm:"not null;default:false" json:"urgent"`
	Delivery         bool      `gorm:"not null;default:false" json:"delivery"`
	Visibility       bool      `gorm:"not null;default:false" json:"visibility"`
	Completed        bool      `gorm:"not null;default:false;index" json:"completed"`

	OrgDetails *OrgDetails `gorm:"foreignKey:OrgDetailsUserID;references:UserID" json:"org_details,omitempty"`
	Donations  []*Donation `gorm:"foreignKey:FoodRequestID" json:"Donations"`
	Timestamp
}

type Donation struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	FoodRequestID uint `gorm:"index;not null" json:"food_request_id"`
	ProductID     uint `gorm:"index;not null" json:"product_id"`
	RestaurantID  uint `gorm:"index;not null" json:"restaurant_id"`
	Quantity      int  `gorm:"not null" json:"quantity"`

	FoodRequest *FoodRequest `gorm:"foreignKey:FoodRequestID" json:"FoodRequest,omitempty"`
	Product     *Product     `gorm:"foreignKey:ProductID" json:"Product,omitempty"`
	Restaurant  *Restaurant  `gorm:"foreignKey:RestaurantID" json:"Restaurant,omitempty"`
	Timestamp
}
