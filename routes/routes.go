package routes

import (
	"net/http"

	"cindrella-backend/config"
	"cindrella-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Billing routes
		bills := api.Group("/bills")
		{
			bills.GET("", controllers.GetBills)
			bills.POST("", controllers.CreateBill)
			bills.GET("/new", controllers.NewBillForm)
			bills.POST("/derive", controllers.DeriveBill)
			bills.GET("/:id/invoice", controllers.GetInvoice)
		}

		// Service catalog routes
		catalogServices := api.Group("/services")
		{
			catalogServices.GET("", controllers.GetServices)
			catalogServices.GET("/:id", controllers.GetService)
		}

		// Staff routes
		staff := api.Group("/staff")
		{
			staff.GET("", controllers.GetStaff)
			staff.POST("", controllers.AddStaff)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	// View paths; the default path lands on the dashboard
	r.GET("/dashboard", controllers.GetDashboardOverview)
	r.GET("/billing", controllers.GetBills)
	r.GET("/services", controllers.GetServices)
	r.GET("/staff", controllers.GetStaff)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	return r
}
