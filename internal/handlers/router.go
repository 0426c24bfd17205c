package handlers

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/middleware"
)

// SetupRoutes настраивает маршруты REST API
func (h *PredictHandler) SetupRoutes(authSecret string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	api := r.Group("/api/v1")

	// Health остаётся открытым даже при включённой авторизации
	api.GET("/health", h.Health)

	protected := api.Group("")
	if authSecret != "" {
		jwtMiddleware := middleware.NewJWTMiddleware(authSecret)
		protected.Use(jwtMiddleware.RequireAuth())
	}
	{
		protected.POST("/predict", h.Predict)
		protected.GET("/predictions", h.ListPredictions)
		protected.GET("/predictions/:id", h.GetPrediction)
	}

	return r
}

// parsePositiveInt разбирает положительное целое из строки запроса
func parsePositiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
