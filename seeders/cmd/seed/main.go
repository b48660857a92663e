package main

import (
	"flag"
	"log"

	"employee-directory/pkg/config"
	"employee-directory/pkg/database/postgresql"
	"employee-directory/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	// --- Определяем флаги ---
	runSample := flag.Bool("sample", false, "Очистить таблицу и вставить фиксированный демонстрационный набор")
	runRandom := flag.Bool("random", false, "Очистить таблицу и вставить случайные минимальные записи")
	count := flag.Int("count", 15, "Количество записей для -random")

	flag.Parse()

	if !*runSample && !*runRandom {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -sample")
		log.Println("  go run ./seeders/cmd/seed -random -count 15")
		log.Println("======================================================")
		return
	}

	if *runSample && *runRandom {
		log.Fatal("❌ Флаги -sample и -random взаимоисключающие: оба сидера начинают с очистки таблицы.")
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("❌ Не удалось применить миграции: %v", err)
	}

	log.Println("======================================================")

	if *runSample {
		seeders.SeedSampleEmployees(dbPool)
	}

	if *runRandom {
		seeders.SeedRandomEmployees(dbPool, *count)
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
