package models

import "gorm.io/gorm"

// Course represents a sellable video course in the catalog
type Course struct {
	gorm.Model
	Title           string `json:"title"`
	Description     string `json:"description"`
	Author          string `json:"author"`
	Price           int64  `json:"price" gorm:"not null"`         // minor currency units
	VideoPlaybackID string `json:"video_playback_id"`             // hosted video platform playback id
	VideoDuration   int64  `json:"video_duration" gorm:"default:0"` // seconds
	VideoThumbnail  string `json:"video_thumbnail"`
	IsPublished     bool   `json:"is_published" gorm:"default:false"`
	IsDeleted       bool   `json:"-" gorm:"default:false"`
}
