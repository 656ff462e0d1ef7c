package repository

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
)

// MemoryStore - еталонне сховище в пам'яті: використовується коли БД не налаштована
// та в тестах
type MemoryStore struct {
	mu sync.RWMutex

	submissions map[int]models.ContactSubmission
	portfolio   map[int]models.PortfolioItem
	admins      map[string]models.AdminUser

	nextSubmissionID int
	nextPortfolioID  int
	nextAdminID      int
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		submissions:      make(map[int]models.ContactSubmission),
		portfolio:        make(map[int]models.PortfolioItem),
		admins:           make(map[string]models.AdminUser),
		nextSubmissionID: 1,
		nextPortfolioID:  1,
		nextAdminID:      1,
	}

	s.seedPortfolio()
	s.seedAdmin()

	return s
}

// NewMemoryRepository збирає агрегат репозиторіїв поверх одного сховища в пам'яті
func NewMemoryRepository() *Repository {
	return NewRepositoryFromStore(NewMemoryStore())
}

func NewRepositoryFromStore(store *MemoryStore) *Repository {
	return &Repository{
		Submission: &memorySubmissionRepository{store},
		Portfolio:  &memoryPortfolioRepository{store},
		Admin:      &memoryAdminRepository{store},
	}
}

type memorySubmissionRepository struct {
	store *MemoryStore
}

func (r *memorySubmissionRepository) Create(ctx context.Context, req CreateSubmissionRequest) (*models.ContactSubmission, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	services := req.Services
	if services == nil {
		services = []string{}
	}
	attachments := req.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	submission := models.ContactSubmission{
		ID:             s.nextSubmissionID,
		BrideName:      req.BrideName,
		GroomName:      req.GroomName,
		Phone:          req.Phone,
		Email:          req.Email,
		WeddingDate:    req.WeddingDate,
		Location:       req.Location,
		Services:       services,
		AdditionalInfo: req.AdditionalInfo,
		Attachments:    attachments,
		CreatedAt:      time.Now(),
	}
	s.nextSubmissionID++
	s.submissions[submission.ID] = submission

	return &submission, nil
}

func (r *memorySubmissionRepository) GetAll(ctx context.Context) ([]models.ContactSubmission, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	submissions := make([]models.ContactSubmission, 0, len(s.submissions))
	for _, submission := range s.submissions {
		submissions = append(submissions, submission)
	}

	// найновіші першими
	sort.Slice(submissions, func(i, j int) bool {
		if submissions[i].CreatedAt.Equal(submissions[j].CreatedAt) {
			return submissions[i].ID > submissions[j].ID
		}
		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})

	return submissions, nil
}

type memoryPortfolioRepository struct {
	store *MemoryStore
}

func (r *memoryPortfolioRepository) Create(ctx context.Context, req CreatePortfolioRequest) (*models.PortfolioItem, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.createPortfolioItemLocked(req)
	return &item, nil
}

func (s *MemoryStore) createPortfolioItemLocked(req CreatePortfolioRequest) models.PortfolioItem {
	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}
	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	}
	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}

	now := time.Now()
	item := models.PortfolioItem{
		ID:          s.nextPortfolioID,
		Type:        req.Type,
		Category:    req.Category,
		Couple:      req.Couple,
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
		Photos:      photos,
		IsPublished: isPublished,
		OrderIndex:  orderIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextPortfolioID++
	s.portfolio[item.ID] = item

	return item
}

func (r *memoryPortfolioRepository) Update(ctx context.Context, id int, req UpdatePortfolioRequest) (*models.PortfolioItem, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.portfolio[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Couple != nil {
		item.Couple = *req.Couple
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.VideoURL != nil {
		item.VideoURL = *req.VideoURL
	}
	if req.Thumbnail != nil {
		item.Thumbnail = *req.Thumbnail
	}
	if req.Photos != nil {
		item.Photos = *req.Photos
	}
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}
	if req.OrderIndex != nil {
		item.OrderIndex = *req.OrderIndex
	}
	item.UpdatedAt = time.Now()

	s.portfolio[id] = item
	return &item, nil
}

func (r *memoryPortfolioRepository) Delete(ctx context.Context, id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// ідемпотентно: відсутній id не вважається помилкою
	delete(s.portfolio, id)
	return nil
}

func (r *memoryPortfolioRepository) GetByID(ctx context.Context, id int) (*models.PortfolioItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.portfolio[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &item, nil
}

func (r *memoryPortfolioRepository) GetAll(ctx context.Context) ([]models.PortfolioItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedItemsLocked(false), nil
}

func (r *memoryPortfolioRepository) GetPublished(ctx context.Context) ([]models.PortfolioItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedItemsLocked(true), nil
}

func (s *MemoryStore) sortedItemsLocked(publishedOnly bool) []models.PortfolioItem {
	items := make([]models.PortfolioItem, 0, len(s.portfolio))
	for _, item := range s.portfolio {
		if publishedOnly && !item.IsPublished {
			continue
		}
		items = append(items, item)
	}

	// за order_index, нічиї вирішуються порядком вставки
	sort.Slice(items, func(i, j int) bool {
		if items[i].OrderIndex == items[j].OrderIndex {
			return items[i].ID < items[j].ID
		}
		return items[i].OrderIndex < items[j].OrderIndex
	})

	return items
}

type memoryAdminRepository struct {
	store *MemoryStore
}

func (r *memoryAdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.admins[username]
	if !ok {
		return nil, nil
	}

	return &admin, nil
}

func (r *memoryAdminRepository) Create(ctx context.Context, username, email, password string) (*models.AdminUser, error) {
	return r.store.createAdmin(username, email, password)
}

func (s *MemoryStore) createAdmin(username, email, password string) (*models.AdminUser, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	admin := models.AdminUser{
		ID:           s.nextAdminID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.nextAdminID++
	s.admins[username] = admin

	return &admin, nil
}

func (r *memoryAdminRepository) VerifyPassword(ctx context.Context, username, password string) (*models.AdminUser, error) {
	admin, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.IsActive {
		return nil, nil
	}

	// розбіжність пароля - звичайне "ні", а не помилка
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}

	return admin, nil
}

// seedPortfolio заповнює сховище прикладами робіт студії
func (s *MemoryStore) seedPortfolio() {
	published := true
	samples := []CreatePortfolioRequest{
		{
			Type:        "video",
			Category:    "Весільний кліп",
			Couple:      "Анна та Олексій",
			Title:       "Романтична історія кохання",
			Description: "Емоційний кліп з найяскравішими моментами весільного дня",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			IsPublished: &published,
			OrderIndex:  intPtr(1),
		},
		{
			Type:        "video",
			Category:    "Весільний фільм",
			Couple:      "Марія та Дмитро",
			Title:       "Повна історія весільного дня",
			Description: "Детальний фільм з усіма важливими моментами церемонії та банкету",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			IsPublished: &published,
			OrderIndex:  intPtr(2),
		},
		{
			Type:        "photo",
			Category:    "Весільна фотосесія",
			Couple:      "Катерина та Ігор",
			Title:       "Підготовка до свята",
			Description: "Фотозйомка ранкових зборів нареченої та підготовки нареченого",
			Photos: []string{
				"https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1469371670807-013ccf25f16a?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1519741497674-611481863552?w=800&h=600&fit=crop",
			},
			IsPublished: &published,
			OrderIndex:  intPtr(3),
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sample := range samples {
		s.createPortfolioItemLocked(sample)
	}
}

// seedAdmin створює обліковий запис адміністратора за замовчуванням (admin/admin123)
func (s *MemoryStore) seedAdmin() {
	if _, err := s.createAdmin("admin", "admin@kubenko.com", "admin123"); err != nil {
		log.Printf("Увага: не вдалося створити адміністратора за замовчуванням: %v", err)
	}
}

func intPtr(v int) *int {
	return &v
}
