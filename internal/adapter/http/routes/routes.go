package routes

import (
	"context"
	"net"
	"strconv"

	_ "npc_garage/docs"
	"npc_garage/internal/adapter/http/handlers"
	"npc_garage/internal/adapter/persistence/repository"
	"npc_garage/internal/config"
	"npc_garage/internal/excel"
	"npc_garage/internal/infrastructure/database"
	"npc_garage/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the DynamoDB repositories into the analytics handler and serves
// HTTP until the listener fails.
func Run(cfg *config.Config, log zerolog.Logger) error {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.AWS)
	if err != nil {
		return err
	}

	analyticsUseCase := usecase.NewAnalyticsUseCase(
		repository.NewEstimateDynamoRepository(ddb, cfg.Tables.Estimates),
		repository.NewStockDynamoRepository(ddb, cfg.Tables.Stock),
		repository.NewMechanicDynamoRepository(ddb, cfg.Tables.Mechanics),
		usecase.WithDefaults(cfg.Analytics.TopN, cfg.Analytics.Months),
		usecase.WithLogger(log),
	)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase, excel.NewGenerator())

	router := NewRouter(cfg.HTTP, log, analyticsHandler)

	addr := net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(cfg.HTTP.Port))
	log.Info().Str("addr", addr).Msg("[http] starting server")
	return router.Run(addr)
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(cfg config.HTTPConfig, log zerolog.Logger, analyticsHandler *handlers.AnalyticsHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAnalyticsRoutes(v1, analyticsHandler)
	return router
}
