package database

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"workforce_backend/internal/logger"
	"workforce_backend/internal/models"
)

// LoadLookupCSV загружает справочники из каталога с csv-файлами:
// по одному файлу на справочник (role.csv, status_type.csv, ...),
// колонка name обязательна. Отсутствующий файл просто пропускается,
// существующие записи не дублируются.
func LoadLookupCSV(db *gorm.DB, dir string) error {
	if dir == "" {
		return nil
	}

	loaders := map[string]func(name string) error{
		"role.csv": func(name string) error {
			return db.Where(models.Role{Name: name}).FirstOrCreate(&models.Role{Name: name}).Error
		},
		"status_type.csv": func(name string) error {
			return db.Where(models.StatusType{Name: name}).FirstOrCreate(&models.StatusType{Name: name}).Error
		},
		"employer_type.csv": func(name string) error {
			return db.Where(models.EmployerType{Name: name}).FirstOrCreate(&models.EmployerType{Name: name}).Error
		},
		"account_type.csv": func(name string) error {
			return db.Where(models.AccountType{Name: name}).FirstOrCreate(&models.AccountType{Name: name}).Error
		},
		"payment_status.csv": func(name string) error {
			return db.Where(models.PaymentStatus{Name: name}).FirstOrCreate(&models.PaymentStatus{Name: name}).Error
		},
	}

	for filename, insert := range loaders {
		path := filepath.Join(dir, filename)
		names, err := readNameColumn(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", filename, err)
		}
		for _, name := range names {
			if err := insert(name); err != nil {
				return fmt.Errorf("failed to insert %q from %s: %w", name, filename, err)
			}
		}
		logger.Info("Lookup CSV loaded", "file", filename, "rows", len(names))
	}

	return nil
}

func readNameColumn(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	nameIdx := -1
	for i, col := range records[0] {
		if strings.EqualFold(strings.TrimSpace(col), "name") {
			nameIdx = i
			break
		}
	}
	if nameIdx == -1 {
		return nil, fmt.Errorf("no name column in %s", path)
	}

	var names []string
	for _, row := range records[1:] {
		if nameIdx >= len(row) {
			continue
		}
		if name := strings.TrimSpace(row[nameIdx]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
