package models

type Todo struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Content string `json:"content" gorm:"not null"`
	UserID  int    `json:"userId" gorm:"not null;index"`
}
