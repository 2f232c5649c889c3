package domain

var (
	MessageSuccessUpsertReview = "review saved successfully"
	MessageSuccessGetReviews   = "reviews retrieved successfully"

	MessageFailedUpsertReview = "failed to save review"
	MessageFailedGetReviews   = "failed to retrieve reviews"
)

type (
	ReviewRequest struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}

	ReviewResponse struct {
		ID        uint   `json:"id"`
		UserID    uint   `json:"user_id"`
		UserName  string `json:"user_name"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
		CreatedAt string `json:"created_at"`
	}

	RestaurantReviewsResponse struct {
		RestaurantID  uint             `json:"restaurant_id"`
		AverageRating float64          `json:"average_rating"`
		TotalReviews  int              `json:"total_reviews"`
		Reviews       []ReviewResponse `json:"reviews"`
	}
)
