package routes

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InitRouter собирает все зависимости (репозиторий -> сервис -> контроллер)
// в одном месте и регистрирует маршруты.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// Health check
	e.GET("/", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "🚀 API is up and running!")
	})

	runEmployeeRouter(e, dbConn, logger)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
