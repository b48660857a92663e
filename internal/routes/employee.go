package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-directory/internal/controllers"
	"employee-directory/internal/repositories"
	"employee-directory/internal/services"
)

func runEmployeeRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		employeeRepository = repositories.NewEmployeeRepository(dbConn, logger)
		employeeService    = services.NewEmployeeService(employeeRepository, logger)
		employeeCtrl       = controllers.NewEmployeeController(employeeService, logger)
	)

	e.GET("/employees", employeeCtrl.GetEmployees)
	e.GET("/employees/export", employeeCtrl.ExportEmployees)
	e.GET("/employees/:id", employeeCtrl.FindEmployee)
	e.POST("/employees", employeeCtrl.CreateEmployee)
	e.PUT("/employees/:id", employeeCtrl.UpdateEmployee)
	e.DELETE("/employees/:id", employeeCtrl.DeleteEmployee)
}
