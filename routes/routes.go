package routes

import (
    "veggieweek/config"
    "veggieweek/controllers"
    "veggieweek/middlewares"
    "veggieweek/services"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
    "github.com/sirupsen/logrus"
    "gorm.io/gorm"
)

// SetupRouter composes the middleware chain and wires every controller.
// All collaborators come in explicitly; nothing in here reads globals.
func SetupRouter(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
    r := gin.New()
    r.Use(middlewares.RequestLogger(logger), gin.Recovery())

    corsCfg := cors.DefaultConfig()
    if len(cfg.Server.CORSOrigins) > 0 {
        corsCfg.AllowOrigins = cfg.Server.CORSOrigins
    } else {
        corsCfg.AllowAllOrigins = true
    }
    corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
    r.Use(cors.New(corsCfg))

    authSvc := services.NewAuthService(db, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
    catalogSvc := services.NewCatalogService(db, cfg.Catalog.DefaultLanguage)
    logSvc := services.NewFoodLogService(db)
    userSvc := services.NewUserService(db)
    diversitySvc := services.NewDiversityService(db)

    authCtl := controllers.NewAuthController(authSvc)
    foodCtl := controllers.NewFoodController(catalogSvc)
    logCtl := controllers.NewFoodLogController(logSvc)
    userCtl := controllers.NewUserController(userSvc)
    progressCtl := controllers.NewProgressController(diversitySvc)

    // Public routes
    r.POST("/register", authCtl.Register)
    r.POST("/login", authCtl.Login)
    r.GET("/foods", foodCtl.ListFoods)

    // Protected routes
    protected := r.Group("/")
    protected.Use(middlewares.AuthMiddleware(cfg.Auth.JWTSecret))
    {
        protected.POST("/user_food_logs", logCtl.Create)
        protected.GET("/user_food_logs", logCtl.List)
        protected.DELETE("/user_food_logs/:id", logCtl.Delete)

        protected.GET("/user/goal", userCtl.GetGoal)
        protected.PUT("/user/goal", userCtl.UpdateGoal)

        protected.GET("/user_progress", progressCtl.VegetableProgress)
        protected.GET("/diversity_metrics", progressCtl.DiversityMetrics)
        protected.GET("/suggested_foods", progressCtl.SuggestedFoods)
        protected.GET("/user_vegetables", progressCtl.Vegetables)
        protected.GET("/user_prebiotics", progressCtl.Prebiotics)
        protected.GET("/user_probiotics", progressCtl.Probiotics)
    }

    return r
}
