package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedSampleEmployees очищает таблицу и вставляет фиксированный набор.
// Очистка и вставка идут в одной транзакции - это административный батч,
// а не операция запросного пути.
func seedSampleEmployees(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'employees' фиксированным набором...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM employees;`); err != nil {
		return err
	}

	const query = `INSERT INTO employees (name, birthday, salary, role, department)
				   VALUES ($1, $2, $3, $4, $5);`

	for _, e := range sampleEmployees {
		if _, err := tx.Exec(ctx, query, e.Name, e.Birthday, e.Salary, e.Role, e.Department); err != nil {
			log.Printf("Ошибка при вставке сотрудника '%s': %v", e.Name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
