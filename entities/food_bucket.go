package entities

const (
	FoodBucketActive         = "active"
	FoodBucketPendingPayment = "pending_payment"
	FoodBucketPaid           = "paid"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

type FoodBucket struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Status string `gorm:"not null;index" json:"status"` // active, pending_payment, paid

	Items []*FoodBucketItem `gorm:"foreignKey:FoodBucketID" json:"items"`
	Timestamp
}

type FoodBucketItem struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	FoodBucketID uint `gorm:"uniqueIndex:idx_bucket_product;not null" json:"food_bucket_id"`
	ProductID    uint `gorm:"uniqueIndex:idx_bucket_product;not null" json:"product_id"`
	Quantity     int  `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Timestamp
}

type Payment struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      string  `gorm:"uniqueIndex;not null" json:"order_id"`
	FoodBucketID uint    `gorm:"index;not null" json:"food_bucket_id"`
	UserID       uint    `gorm:"index;not null" json:"user_id"`
	Amount       float64 `gorm:"not null" json:"amount"`
	Status       string  `gorm:"not null" json:"status"` // pending, paid, failed
	SnapToken    string  `json:"snap_token"`

	Timestamp
}

// ProcessedEvent records a handled payment notification.
type ProcessedEvent struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	EventKey string `gorm:"uniqueIndex;not null" json:"event_key"`
	Timestamp
}
