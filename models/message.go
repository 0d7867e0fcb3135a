package models

// Message represents a message posted by an account
type Message struct {
	ID              int      `gorm:"primaryKey;column:message_id" json:"message_id"`
	PostedBy        int      `gorm:"column:posted_by;not null;index" json:"posted_by"`
	MessageText     string   `gorm:"column:message_text;size:255;not null" json:"message_text"`
	TimePostedEpoch int64    `gorm:"column:time_posted_epoch" json:"time_posted_epoch"`
	Account         *Account `gorm:"foreignKey:PostedBy;references:ID" json:"-"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "message"
}
