package bootstrap

import (
	"smartmess-be/internal/config"
	"smartmess-be/internal/controller"
	"smartmess-be/internal/pkg/logger"
	"smartmess-be/internal/pkg/mailer"
	"smartmess-be/internal/pkg/serverutils"
	"smartmess-be/internal/repository/unitofwork"
	"smartmess-be/internal/service"
	"smartmess-be/pkg/payment"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	MessController         controller.IMessController
	SubscriptionController controller.ISubscriptionController
	RatingController       controller.IRatingController
	ComplaintController    controller.IComplaintController
	AdminController        controller.IAdminController
	OwnerController        controller.IOwnerController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.Mail.SenderEmail,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	notificationService := service.NewNotificationService(pubSub, cfg.App.EmailTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EmailTopic, emailService, sysLogger)

	// 3. Payment gateway
	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	// 4. Auth middleware
	authMiddleware := serverutils.NewAuthMiddleware(uowFactory, cfg.Auth.JWTSecret)

	// 5. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret)
	messService := service.NewMessService(uowFactory)
	subscriptionService := service.NewSubscriptionService(uowFactory, gateway, notificationService)
	ratingService := service.NewRatingService(uowFactory)
	complaintService := service.NewComplaintService(uowFactory, notificationService, cfg.Mail.AdminEmail)
	adminService := service.NewAdminService(uowFactory, notificationService)
	ownerService := service.NewOwnerService(uowFactory)

	// 6. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService, authMiddleware),
		MessController:         controller.NewMessController(messService, authMiddleware),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService, authMiddleware),
		RatingController:       controller.NewRatingController(ratingService, authMiddleware),
		ComplaintController:    controller.NewComplaintController(complaintService, authMiddleware),
		AdminController:        controller.NewAdminController(adminService, authMiddleware),
		OwnerController:        controller.NewOwnerController(ownerService, authMiddleware),

		ConsumerService: consumerService,
	}
}
