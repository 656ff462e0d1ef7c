package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/KlorPe000/kubenko-production-studio/internal/config"
)

type DB struct {
	*sqlx.DB
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DB.DbHOST,
			cfg.DB.DbPORT,
			cfg.DB.DbUSER,
			cfg.DB.DbPASSWORD,
			cfg.DB.DbNAME,
			cfg.DB.DbSSLMODE,
		)
	}

	log.Printf("Підключення до БД: host=%s, dbname=%s", cfg.DB.DbHOST, cfg.DB.DbNAME)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("не вдалося підключитися до БД: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := DB{db}

	if err := dbStruct.RunMigrations("migrations/001_create_tables.sql"); err != nil {
		log.Printf("Увага: помилка при застосуванні міграцій: %v", err)
	}

	if err := dbStruct.HealthCheck(); err != nil {
		return nil, fmt.Errorf("перевірка БД не пройдена: %w", err)
	}

	log.Println("Успішне підключення до PostgreSQL")
	return &dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) RunMigrations(migrationFilePath string) error {
	if _, err := os.Stat(migrationFilePath); os.IsNotExist(err) {
		return fmt.Errorf("файл міграцій не знайдено: %s", migrationFilePath)
	}

	migrationSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		return fmt.Errorf("помилка при читанні файлу міграцій: %w", err)
	}

	log.Printf("Застосовуємо міграції з файлу: %s", migrationFilePath)

	_, err = db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("помилка при виконанні міграцій: %w", err)
	}

	log.Println("Міграції успішно застосовані")
	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil {
		return fmt.Errorf("підключення до БД не ініціалізоване")
	}

	return db.Ping()
}
