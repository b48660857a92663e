package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"employee-directory/internal/dto"
	"employee-directory/internal/entities"
	"employee-directory/internal/repositories"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context) ([]*entities.Employee, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, in dto.CreateEmployeeDTO) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id uint64, in dto.UpdateEmployeeDTO) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	ExportEmployees(ctx context.Context) (*excelize.File, error)
}

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	logger             *zap.Logger
}

func NewEmployeeService(employeeRepository repositories.EmployeeRepositoryInterface,
	logger *zap.Logger,
) EmployeeServiceInterface {
	return &EmployeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

func (s *EmployeeService) GetEmployees(ctx context.Context) ([]*entities.Employee, error) {
	return s.employeeRepository.GetEmployees(ctx)
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	return s.employeeRepository.FindEmployee(ctx, id)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, in dto.CreateEmployeeDTO) (*entities.Employee, error) {
	created, err := s.employeeRepository.CreateEmployee(ctx, in)
	if err != nil {
		s.logger.Error("Ошибка при создании сотрудника", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Сотрудник успешно создан", zap.Uint64("id", created.ID))
	return created, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint64, in dto.UpdateEmployeeDTO) (*entities.Employee, error) {
	updated, err := s.employeeRepository.UpdateEmployee(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	return s.employeeRepository.DeleteEmployee(ctx, id)
}

var exportHeaders = []string{"ID", "Name", "Birthday", "Salary", "Role", "Department"}

// ExportEmployees собирает xlsx-снимок всего справочника.
func (s *EmployeeService) ExportEmployees(ctx context.Context) (*excelize.File, error) {
	employees, err := s.employeeRepository.GetEmployees(ctx)
	if err != nil {
		s.logger.Error("Ошибка при выгрузке сотрудников", zap.Error(err))
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Employees"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &exportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "F1", style)

	for i, e := range employees {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			e.ID, e.Name, e.Birthday, fmt.Sprintf("%.2f", e.Salary),
			e.Role.String, e.Department.String,
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 25)
	f.SetColWidth(sheet, "C", "D", 15)
	f.SetColWidth(sheet, "E", "F", 20)

	return f, nil
}
