package models

import (
	"time"

	"github.com/lib/pq"
)

type ContactSubmission struct {
	ID             int            `json:"id" db:"id"`
	BrideName      string         `json:"brideName" db:"bride_name"`
	GroomName      string         `json:"groomName" db:"groom_name"`
	Phone          string         `json:"phone" db:"phone"`
	Email          string         `json:"email" db:"email"`
	WeddingDate    string         `json:"weddingDate" db:"wedding_date"`
	Location       string         `json:"location" db:"location"`
	Services       pq.StringArray `json:"services" db:"services"`
	AdditionalInfo string         `json:"additionalInfo,omitempty" db:"additional_info"`
	Attachments    pq.StringArray `json:"attachments" db:"attachments"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}

type PortfolioItem struct {
	ID          int            `json:"id" db:"id"`
	Type        string         `json:"type" db:"type"` // 'video' | 'photo'
	Category    string         `json:"category" db:"category"`
	Couple      string         `json:"couple" db:"couple"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	VideoURL    string         `json:"videoUrl" db:"video_url"`
	Thumbnail   string         `json:"thumbnail" db:"thumbnail"`
	Photos      pq.StringArray `json:"photos" db:"photos"`
	IsPublished bool           `json:"isPublished" db:"is_published"`
	OrderIndex  int            `json:"orderIndex" db:"order_index"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

type AdminUser struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// AdminSummary - дані адміністратора, які віддаються клієнту (без хеша пароля)
type AdminSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (a *AdminUser) Summary() AdminSummary {
	return AdminSummary{ID: a.ID, Username: a.Username, Email: a.Email}
}

// UploadedFile - файл з multipart-форми, прочитаний у пам'ять
type UploadedFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
