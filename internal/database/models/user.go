package models

// User is an account that owns projects
type User struct {
	BaseModel    `bson:",inline"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" bson:"email" validate:"required,email,max=255"`
	DisplayName  string `json:"display_name" gorm:"size:100" bson:"display_name" validate:"max=100"`
	PasswordHash string `json:"-" gorm:"not null;size:100" bson:"password_hash"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
