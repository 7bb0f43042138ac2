package models

import "time"

type ChatHistory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      int       `json:"userId" gorm:"index"`
	SessionID   string    `json:"sessionId" gorm:"index"`
	Sender      string    `json:"sender"`
	MessageType string    `json:"messageType"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
