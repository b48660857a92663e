package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"employee-directory/internal/dto"
	"employee-directory/internal/entities"
	apperrors "employee-directory/pkg/errors"
)

const (
	employeeTable  = "employees"
	employeeFields = `id, name, birthday, salary, role, department`
)

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context) ([]*entities.Employee, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, in dto.CreateEmployeeDTO) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id uint64, in dto.UpdateEmployeeDTO) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
}

type employeeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &employeeRepository{storage: storage, logger: logger}
}

// scanRow - универсальное сканирование одной записи.
// pgx.ErrNoRows превращается в apperrors.ErrNotFound: отсутствие записи - это
// штатный результат, а не сбой хранилища.
func (r *employeeRepository) scanRow(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	var birthday time.Time

	err := row.Scan(&e.ID, &e.Name, &birthday, &e.Salary, &e.Role, &e.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования employees: %w", err)
	}

	e.Birthday = birthday.Format("2006-01-02")
	return &e, nil
}

// GetEmployees возвращает все записи. Порядок по возрастанию id - так его
// запрашивает HTTP-слой для списка.
func (r *employeeRepository) GetEmployees(ctx context.Context) ([]*entities.Employee, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(employeeFields).
		From(employeeTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса GetEmployees: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения GetEmployees: %w", err)
	}
	defer rows.Close()

	employees := make([]*entities.Employee, 0)
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			r.logger.Error("Ошибка сканирования employee", zap.Error(err))
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации rows: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(employeeFields).
		From(employeeTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindEmployee: %w", err)
	}

	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

// CreateEmployee вставляет ровно переданные поля и через RETURNING сразу
// возвращает сохранённую строку вместе со сгенерированным id.
func (r *employeeRepository) CreateEmployee(ctx context.Context, in dto.CreateEmployeeDTO) (*entities.Employee, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(employeeTable).
		Columns("name", "birthday", "salary", "role", "department").
		Values(in.Name, in.Birthday, in.Salary, in.Role, in.Department).
		Suffix("RETURNING " + employeeFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса CreateEmployee: %w", err)
	}

	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

// UpdateEmployee заменяет все изменяемые поля одной записи одним UPDATE.
// Непереданные поля уходят в БД как NULL - частичного обновления нет.
func (r *employeeRepository) UpdateEmployee(ctx context.Context, id uint64, in dto.UpdateEmployeeDTO) (*entities.Employee, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Update(employeeTable).
		Set("name", in.Name).
		Set("birthday", in.Birthday).
		Set("salary", in.Salary).
		Set("role", in.Role).
		Set("department", in.Department).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + employeeFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса UpdateEmployee: %w", err)
	}

	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

// DeleteEmployee удаляет запись и возвращает её такой, какой она была
// непосредственно перед удалением.
func (r *employeeRepository) DeleteEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Delete(employeeTable).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + employeeFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса DeleteEmployee: %w", err)
	}

	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}
