package models

// Account represents a registered user in the database. The password column
// holds a bcrypt hash when hashing is enabled; responses carry the password
// the caller sent either way.
type Account struct {
	ID       int    `gorm:"primaryKey;column:account_id" json:"account_id"`
	Username string `gorm:"column:username;uniqueIndex;not null;size:255" json:"username"`
	Password string `gorm:"column:password;not null;size:255" json:"password"`
}

// TableName overrides the table name used by Account to `account`
func (Account) TableName() string {
	return "account"
}
