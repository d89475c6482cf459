package users

import "time"

// Roles a user can have.
const (
	RoleAdmin = "admin"
	RoleRep   = "rep"
)

// User is a sales rep or administrator of the mobile app.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:191;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `gorm:"size:32;default:rep" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Table is the name of the users table.
const Table = "users"

// TableName pins the table name.
func (User) TableName() string {
	return Table
}

// Columns lists the column names the users table must have.
var Columns = []string{"id", "username", "password_hash", "full_name", "role", "created_at"}
