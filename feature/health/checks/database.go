package checks

import (
	"fmt"

	"partflow-sync/core/database"
	"partflow-sync/feature/users"

	"gorm.io/gorm"
)

// UsersReport describes the users table as found in the database.
type UsersReport struct {
	Exists  bool     `json:"exists"`
	Columns []string `json:"columns"`
	Missing []string `json:"missing"`
}

// CheckUsersTable inspects the users table against the user model columns.
func CheckUsersTable(db *gorm.DB) (*UsersReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &UsersReport{Columns: []string{}, Missing: []string{}}
	report.Exists = db.Migrator().HasTable(users.Table)
	if !report.Exists {
		report.Missing = append(report.Missing, users.Columns...)
		return report, nil
	}

	columns, err := database.GetTableColumns(db, users.Table)
	if err != nil {
		return nil, err
	}
	for _, col := range columns {
		report.Columns = append(report.Columns, col.Field)
	}

	missing, err := database.MissingColumns(db, users.Table, users.Columns)
	if err != nil {
		return nil, err
	}
	report.Missing = missing
	return report, nil
}
