package entities

type Restaurant struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Description string `json:"description"`

	User     *User      `gorm:"foreignKey:UserID" json:"-"`
	Products []*Product `gorm:"foreignKey:RestaurantID" json:"products,omitempty"`
	Timestamp
}

type Product struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RestaurantID uint    `gorm:"index;not null" json:"restaurant_id"`
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	Quantity     int     `gorm:"not null;default:0" json:"quantity"`
	Available    bool    `gorm:"not null" json:"available"`
	ImageURL     string  `json:"image_url,omitempty"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Timestamp
}

type Review struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"uniqueIndex:idx_review_user_restaurant;not null" json:"user_id"`
	RestaurantID uint   `gorm:"uniqueIndex:idx_review_user_restaurant;index;not null" json:"restaurant_id"`
	Rating       int    `gorm:"not null" json:"rating"`
	Comment      string `json:"comment"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Timestamp
}
