package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-directory/internal/dto"
	"employee-directory/internal/services"
	apperrors "employee-directory/pkg/errors"
	"employee-directory/pkg/utils"
)

type EmployeeController struct {
	employeeService services.EmployeeServiceInterface
	logger          *zap.Logger
}

func NewEmployeeController(employeeService services.EmployeeServiceInterface, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{employeeService: employeeService, logger: logger}
}

// parseID разбирает :id из пути. Нечисловой id - это 400, а не 404.
func (c *EmployeeController) parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Invalid employee id",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	employees, err := c.employeeService.GetEmployees(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, employees)
}

func (c *EmployeeController) FindEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	employee, err := c.employeeService.FindEmployee(reqCtx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Employee not found", nil, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, employee)
}

func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var in dto.CreateEmployeeDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&in); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fe := range validationErrors {
				if fe.Tag() == "required" {
					return utils.ErrorResponse(ctx,
						apperrors.NewHttpError(
							http.StatusBadRequest,
							"Name, birthday, and salary are required.",
							err,
							nil,
						),
						c.logger,
					)
				}
			}
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.employeeService.CreateEmployee(reqCtx, in)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *EmployeeController) UpdateEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var in dto.UpdateEmployeeDTO
	if err := ctx.Bind(&in); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&in); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.employeeService.UpdateEmployee(reqCtx, id, in)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Employee not found", nil, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *EmployeeController) DeleteEmployee(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := c.parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	deleted, err := c.employeeService.DeleteEmployee(reqCtx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Employee not found", nil, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message":  "Employee deleted",
		"employee": deleted,
	})
}

// ExportEmployees отдаёт xlsx-снимок справочника.
func (c *EmployeeController) ExportEmployees(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	f, err := c.employeeService.ExportEmployees(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
