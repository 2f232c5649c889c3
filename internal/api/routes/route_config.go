package routes

import (
	"foodbridge-backend/domain"
	"foodbridge-backend/internal/api/handlers"
	"foodbridge-backend/internal/middleware"
	"foodbridge-backend/internal/utils/metrics"
	"foodbridge-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RequestHandler  handlers.RequestHandler
	DonationHandler handlers.DonationHandler
	ProductHandler  handlers.ProductHandler
	BucketHandler   handlers.BucketHandler
	PaymentHandler  handlers.PaymentHandler
	ReviewHandler   handlers.ReviewHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.GuestRoute()
	c.User()
	c.OrgRequests()
	c.Donations()
	c.Products()
	c.FoodBucket()
	c.Payment()
	c.Reviews()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works."})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.auth(), c.UserHandler.Me)
	}
}

func (c *Config) OrgRequests() {
	requests := c.App.Group("/api/orgrequests/requests", c.auth())
	orgOnly := c.Middleware.OnlyAllow(domain.RoleOrganization)
	{
		requests.Get("/incomplete/:orgUserId", orgOnly, c.RequestHandler.GetIncompleteRequests)
		// before /:requestId so "public" is not read as an id
		requests.Get("/public", c.RequestHandler.GetPublicRequests)
		requests.Get("/:requestId", c.RequestHandler.GetRequest)
		requests.Post("", orgOnly, c.RequestHandler.CreateRequest)
		requests.Put("/:requestId/complete", orgOnly, c.RequestHandler.CompleteRequest)
		requests.Put("/:requestId/toggle-visibility", orgOnly, c.RequestHandler.ToggleVisibility)
		requests.Put("/:requestId", orgOnly, c.RequestHandler.UpdateRequest)
		requests.Delete("/:requestId", orgOnly, c.RequestHandler.DeleteRequest)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/donations", c.auth(), c.Middleware.OnlyAllow(domain.RoleSeller))
	{
		donations.Post("/:restaurantId", c.DonationHandler.CreateDonation)
		donations.Get("/:restaurantId", c.DonationHandler.GetDonations)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/products", c.auth())
	sellerOnly := c.Middleware.OnlyAllow(domain.RoleSeller)
	{
		products.Get("/restaurant/:restaurantId", c.ProductHandler.GetProductsByRestaurant)
		products.Post("", sellerOnly, c.ProductHandler.CreateProduct)
		products.Put("/:productId", sellerOnly, c.ProductHandler.UpdateProduct)
		products.Delete("/:productId", sellerOnly, c.ProductHandler.DeleteProduct)
		products.Post("/:productId/image", sellerOnly, c.ProductHandler.UploadProductImage)
	}
}

func (c *Config) FoodBucket() {
	bucket := c.App.Group("/api/foodbucket", c.auth(), c.Middleware.OnlyAllow(domain.RoleBuyer))
	{
		bucket.Get("", c.BucketHandler.GetFoodBucket)
		bucket.Post("/items", c.BucketHandler.AddItem)
		bucket.Delete("/items/:productId", c.BucketHandler.RemoveItem)
	}
}

func (c *Config) Payment() {
	payment := c.App.Group("/api/payment")
	{
		payment.Post("/create-payment-intent", c.auth(), c.Middleware.OnlyAllow(domain.RoleBuyer), c.PaymentHandler.CreatePaymentIntent)
		payment.Post("/webhook", c.PaymentHandler.MidtransWebhookHandler)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/reviews", c.auth())
	{
		reviews.Post("/:restaurantId", c.Middleware.OnlyAllow(domain.RoleBuyer), c.ReviewHandler.UpsertReview)
		reviews.Get("/:restaurantId", c.ReviewHandler.GetReviews)
	}
}
