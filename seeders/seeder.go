package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Два самостоятельных сидера. Они намеренно НЕ объединены: фиксированный
// набор - для демо-стенда, случайный - для черновой разработки.
// Оба доступны только из CLI и никогда не выставляются в HTTP.

// SeedSampleEmployees наполняет таблицу фиксированным демонстрационным набором.
func SeedSampleEmployees(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демонстрационными данными...")

	if err := seedSampleEmployees(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения сотрудников: %v", err)
	}

	log.Printf("✅ Вставлено %d сотрудников.", len(sampleEmployees))
}

// SeedRandomEmployees наполняет таблицу случайными минимальными записями.
func SeedRandomEmployees(db *pgxpool.Pool, count int) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения случайными данными...")

	if err := seedRandomEmployees(ctx, db, count); err != nil {
		log.Fatalf("❌ Ошибка наполнения сотрудников: %v", err)
	}

	log.Printf("✅ Вставлено %d сотрудников.", count)
}
