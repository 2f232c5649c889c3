package entities

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"` // buyer, seller, organization, delivery

	Restaurant *Restaurant `gorm:"foreignKey:UserID" json:"restaurant,omitempty"`
	OrgDetails *OrgDetails `gorm:"foreignKey:UserID" json:"org_details,omitempty"`
	Timestamp
}

type OrgDetails struct {
	UserID  uint   `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
