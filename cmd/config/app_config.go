package config

import (
	"io"
	"os"
	"time"

	"foodbridge-backend/internal/api/handlers"
	"foodbridge-backend/internal/api/routes"
	"foodbridge-backend/internal/middleware"
	"foodbridge-backend/internal/utils"
	"foodbridge-backend/internal/utils/cache"
	"foodbridge-backend/internal/utils/events"
	"foodbridge-backend/internal/utils/mailing"
	"foodbridge-backend/internal/utils/storage"
	"foodbridge-backend/pkg/bucket"
	"foodbridge-backend/pkg/donation"
	"foodbridge-backend/pkg/jwt"
	"foodbridge-backend/pkg/midtrans"
	"foodbridge-backend/pkg/payment"
	"foodbridge-backend/pkg/product"
	"foodbridge-backend/pkg/request"
	"foodbridge-backend/pkg/review"
	"foodbridge-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Infrastructure holds the external collaborators of the app.
type Infrastructure struct {
	Storage   storage.AwsS3
	Mailer    mailing.Mailer
	Publisher events.Publisher
	Deduper   cache.Deduper
	Gateway   midtrans.PaymentGateway
	JWTSecret string

	// RateLimit is requests per second per client, zero disables the limiter.
	RateLimit int
	// LogOutput defaults to ./logs/app.log plus stdout.
	LogOutput io.Writer
}

func NewApp(db *gorm.DB, infra Infrastructure) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: infra.LogOutput == nil,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	output := infra.LogOutput
	if output == nil {
		file, err := openLogFile()
		if err != nil {
			return nil, err
		}
		output = io.MultiWriter(os.Stdout, file)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     output,
	}))

	if infra.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        infra.RateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	requestRepository := request.NewRequestRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	productRepository := product.NewProductRepository(db)
	bucketRepository := bucket.NewBucketRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)
	reviewRepository := review.NewReviewRepository(db)

	// Service
	jwtService := jwt.NewJWTService(infra.JWTSecret)
	userService := user.NewUserService(userRepository, jwtService)
	requestService := request.NewRequestService(requestRepository, infra.Publisher)
	donationService := donation.NewDonationService(donationRepository, infra.Publisher, infra.Mailer)
	productService := product.NewProductService(productRepository, infra.Storage)
	bucketService := bucket.NewBucketService(bucketRepository)
	paymentService := payment.NewPaymentService(
		paymentRepository,
		bucketRepository,
		userRepository,
		infra.Gateway,
		infra.Deduper,
		infra.Publisher,
	)
	reviewService := review.NewReviewService(reviewRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	bucketHandler := handlers.NewBucketHandler(bucketService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RequestHandler:  requestHandler,
		DonationHandler: donationHandler,
		ProductHandler:  productHandler,
		BucketHandler:   bucketHandler,
		PaymentHandler:  paymentHandler,
		ReviewHandler:   reviewHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

func openLogFile() (*os.File, error) {
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		log.Errorf("error creating logs directory: %v", err)
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Errorf("error opening file: %v", err)
		return nil, err
	}
	return file, nil
}
