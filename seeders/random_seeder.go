package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jaswdr/faker"
)

// seedRandomEmployees очищает таблицу и вставляет count сгенерированных
// минимальных записей: имя из faker, случайная зарплата, фиксированная дата
// рождения, role и department остаются NULL.
func seedRandomEmployees(ctx context.Context, db *pgxpool.Pool, count int) error {
	log.Printf("  - Наполнение таблицы 'employees' %d случайными записями...", count)

	generator := faker.New()
	p := generator.Person()

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM employees;`); err != nil {
		return err
	}

	const query = `INSERT INTO employees (name, birthday, salary, role, department)
				   VALUES ($1, $2, $3, NULL, NULL);`

	for i := 0; i < count; i++ {
		name := p.Name()
		salary := float64(generator.IntBetween(30000, 129999))

		if _, err := tx.Exec(ctx, query, name, "1990-01-01", salary); err != nil {
			log.Printf("Ошибка при вставке сотрудника '%s': %v", name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
