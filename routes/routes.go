package routes

import (
	"net/http"

	"abc-retail/controllers"
	"abc-retail/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, app *App) {
	cfg := app.Config

	authCtrl := controllers.NewAuthController(app.Auth, app.Sessions)
	productCtrl := controllers.NewProductController(app.Products, app.Carts, cfg.MaxUploadSize)
	cartCtrl := controllers.NewCartController(app.Carts)
	orderCtrl := controllers.NewOrderController(app.Checkout, app.OrderAdmin, app.Sessions)
	userCtrl := controllers.NewUserController(app.Profiles)
	profileCtrl := controllers.NewProfileController(app.Profiles, cfg.MaxUploadSize)
	logCtrl := controllers.NewLogController(app.Audit)
	functionCtrl := controllers.NewFunctionController(app.Functions, cfg.MaxUploadSize)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	store := middleware.NewCookieStore(cfg.SessionSecret, cfg.SessionIdleTimeout, cfg.AppEnv == "production")
	storefront := router.Group("/")
	storefront.Use(middleware.SessionMiddleware(store))
	{
		storefront.POST("/customer/register", authCtrl.Register)
		storefront.POST("/customer/login", authCtrl.Login)
		storefront.POST("/customer/logout", authCtrl.Logout)
		storefront.GET("/customer/dashboard", authCtrl.Dashboard)
		storefront.POST("/customer/profile", authCtrl.UpdateProfile)

		storefront.GET("/categories", productCtrl.GetAllCategories)
		storefront.GET("/products", productCtrl.GetCatalog)
		storefront.GET("/products/:id", productCtrl.GetProductByID)

		storefront.GET("/cart", cartCtrl.GetCart)
		storefront.POST("/cart/add", cartCtrl.AddToCart)
		storefront.POST("/cart/remove", cartCtrl.RemoveFromCart)
		storefront.POST("/cart/clear", cartCtrl.ClearCart)

		storefront.POST("/checkout", orderCtrl.Checkout)
		storefront.GET("/orders", orderCtrl.GetHistory)
		storefront.GET("/orders/success", orderCtrl.OrderSuccess)
		storefront.GET("/orders/:id", orderCtrl.GetOrderDetail)
	}

	router.POST("/employee/login", authCtrl.EmployeeLogin)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(app.Tokens), middleware.EmployeeMiddleware())
	{
		admin.GET("/dashboard", authCtrl.EmployeeDashboard)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", orderCtrl.ManageOrders)

		admin.GET("/profiles", userCtrl.GetProfiles)
		admin.POST("/profiles/employees", userCtrl.CreateEmployee)
		admin.PUT("/profiles/employees/:id", userCtrl.UpdateEmployee)
		admin.DELETE("/profiles/employees/:id", userCtrl.DeleteEmployee)
		admin.POST("/profiles/customers", userCtrl.CreateCustomer)
		admin.PUT("/profiles/customers/:id", userCtrl.UpdateCustomer)
		admin.DELETE("/profiles/customers/:id", userCtrl.DeleteCustomer)

		admin.POST("/profile-files", profileCtrl.UploadProfileFile)
		admin.GET("/profile-files", profileCtrl.ListProfileFiles)
		admin.GET("/profile-files/:name", profileCtrl.DownloadProfileFile)
		admin.DELETE("/profile-files/:name", profileCtrl.DeleteProfileFile)

		admin.GET("/logs", logCtrl.GetLogs)
		admin.GET("/logs/:name", logCtrl.DownloadLog)
	}

	functions := router.Group("/api")
	functions.Use(middleware.FunctionKeyMiddleware(cfg.FunctionsKey))
	{
		functions.POST("/UploadToBlob", functionCtrl.UploadToBlob)
		functions.POST("/UploadToFileShare", functionCtrl.UploadToFileShare)
		functions.POST("/SendToQueue", functionCtrl.SendToQueue)
		functions.POST("/StoreToTable", functionCtrl.StoreToTable)
	}
}

// NewRouter builds the gin engine with the shared middleware stack.
func NewRouter(app *App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(app.Config.OriginURL))
	SetupRoutes(router, app)
	return router
}
