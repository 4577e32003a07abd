package models

import "time"

type NoticeType string

const (
	NoticeTypeSeat   NoticeType = "seat"
	NoticeTypeFlight NoticeType = "flight"
	NoticeTypeReward NoticeType = "reward"
)

// Notice is an entry of the notice feed
type Notice struct {
	ID      int        `json:"id"`
	Type    NoticeType `json:"type"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Age     string     `json:"time"`
}

// Notification is a transient message delivered to one session
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}
