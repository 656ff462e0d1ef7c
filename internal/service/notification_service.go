package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
	"github.com/KlorPe000/kubenko-production-studio/internal/telegram"
)

// ServicePrices - фіксований прайс послуг студії, грн
var ServicePrices = map[string]int{
	"Повнометражний фільм": 16000,
	"Емоційний кліп":       8000,
	"Ранок нареченої":      4000,
	"Збори нареченого":     4000,
	"Фотопослуги":          6000,
	"Love Story":           5000,
}

// DeliveryStrategy - закритий набір способів доставки, який обирається чистою
// функцією класифікації за складом вкладень
type DeliveryStrategy int

const (
	StrategyTextOnly DeliveryStrategy = iota
	StrategySingleMedia
	StrategyMediaGroup
	StrategyDocumentSequence
)

// Sender - те, що диспетчеру потрібно від Telegram-клієнта
type Sender interface {
	Enabled() bool
	SendMessage(ctx context.Context, text string) error
	SendPhoto(ctx context.Context, file models.UploadedFile, caption string) error
	SendVideo(ctx context.Context, file models.UploadedFile, caption string) error
	SendDocument(ctx context.Context, file models.UploadedFile, caption string) error
	SendMediaGroup(ctx context.Context, files []models.UploadedFile, caption string) error
}

type NotificationService interface {
	Dispatch(ctx context.Context, submission *models.ContactSubmission, files []models.UploadedFile, totalPrice int) error
	FormatMessage(submission *models.ContactSubmission, totalPrice int) string
}

type notificationService struct {
	sender   Sender
	location *time.Location
}

func NewNotificationService(sender Sender) NotificationService {
	location, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		// без бази часових поясів показуємо київський час фіксованим зсувом
		location = time.FixedZone("EET", 2*60*60)
	}

	return &notificationService{
		sender:   sender,
		location: location,
	}
}

// IsMediaFile: зображення та відео йдуть у медіагрупу, решта - документами.
// Якщо клієнт не передав тип, визначаємо його за вмістом.
func IsMediaFile(file models.UploadedFile) bool {
	contentType := file.ContentType
	if contentType == "" {
		contentType = mimetype.Detect(file.Data).String()
	}
	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/")
}

// SplitAttachments розділяє вкладення на медіа та документи, зберігаючи порядок
func SplitAttachments(files []models.UploadedFile) (media, documents []models.UploadedFile) {
	for _, file := range files {
		if IsMediaFile(file) {
			media = append(media, file)
		} else {
			documents = append(documents, file)
		}
	}
	return media, documents
}

// ClassifyAttachments обирає стратегію доставки за складом вкладень
func ClassifyAttachments(files []models.UploadedFile) DeliveryStrategy {
	media, documents := SplitAttachments(files)

	switch {
	case len(media) == 0 && len(documents) == 0:
		return StrategyTextOnly
	case len(media) == 1:
		// документи поруч з одним медіа досилаються окремими повідомленнями
		return StrategySingleMedia
	case len(media) > 1:
		return StrategyMediaGroup
	default:
		return StrategyDocumentSequence
	}
}

// Dispatch формує повідомлення про заявку та доставляє його разом з вкладеннями.
// Якщо доставка файлів зірвалася - відправляємо хоча б текст, щоб заявка не
// загубилася.
func (s *notificationService) Dispatch(ctx context.Context, submission *models.ContactSubmission, files []models.UploadedFile, totalPrice int) error {
	if !s.sender.Enabled() {
		log.Println("Telegram не налаштований, сповіщення пропущено")
		return nil
	}

	message := s.FormatMessage(submission, totalPrice)

	if len(files) == 0 {
		return s.sender.SendMessage(ctx, message)
	}

	if err := s.dispatchFiles(ctx, submission, files, message); err != nil {
		log.Printf("Помилка відправки файлів у Telegram: %v", err)
		// запасний варіант: хоча б текстове повідомлення
		return s.sender.SendMessage(ctx, message)
	}

	log.Printf("Файли заявки #%d надіслані: %d шт.", submission.ID, len(files))
	return nil
}

func (s *notificationService) dispatchFiles(ctx context.Context, submission *models.ContactSubmission, files []models.UploadedFile, message string) error {
	media, documents := SplitAttachments(files)

	if len(media) > 0 {
		if len(media) == 1 && len(documents) == 0 {
			return s.sendSingleMedia(ctx, media[0], message)
		}

		if len(media) == 1 {
			if err := s.sendSingleMedia(ctx, media[0], message); err != nil {
				return err
			}
		} else {
			if err := s.sender.SendMediaGroup(ctx, media, message); err != nil {
				return err
			}
		}

		// документи не можуть бути в медіагрупі - надсилаємо окремо з коротким
		// посиланням на заявку
		for _, doc := range documents {
			caption := fmt.Sprintf("📎 Додатковий документ до заявки #%d: %s", submission.ID, doc.FileName)
			if err := s.sender.SendDocument(ctx, doc, caption); err != nil {
				return err
			}
		}

		return nil
	}

	// лише документи: перший несе повне повідомлення, решта - короткий підпис
	for i, doc := range documents {
		caption := fmt.Sprintf("📎 Додатковий документ: %s", doc.FileName)
		if i == 0 {
			caption = message
		}
		if err := s.sender.SendDocument(ctx, doc, caption); err != nil {
			return err
		}
	}

	return nil
}

func (s *notificationService) sendSingleMedia(ctx context.Context, file models.UploadedFile, caption string) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = mimetype.Detect(file.Data).String()
	}

	if strings.HasPrefix(contentType, "image/") {
		return s.sender.SendPhoto(ctx, file, caption)
	}
	return s.sender.SendVideo(ctx, file, caption)
}

// FormatMessage будує детермінований HTML-текст заявки для Telegram
func (s *notificationService) FormatMessage(submission *models.ContactSubmission, totalPrice int) string {
	var b strings.Builder

	b.WriteString("🎬 <b>Нова заявка на весільну зйомку!</b>\n\n")
	fmt.Fprintf(&b, "👰 <b>Наречена:</b> %s\n", submission.BrideName)
	fmt.Fprintf(&b, "🤵 <b>Наречений:</b> %s\n", submission.GroomName)
	fmt.Fprintf(&b, "📞 <b>Телефон:</b> %s\n", submission.Phone)
	fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", submission.Email)
	fmt.Fprintf(&b, "📅 <b>Дата весілля:</b> %s\n", submission.WeddingDate)
	fmt.Fprintf(&b, "📍 <b>Локація:</b> %s\n\n", submission.Location)

	b.WriteString("🎥 <b>Послуги:</b>\n")
	b.WriteString(formatServicesWithPricing(submission.Services))
	b.WriteString("\n")

	if totalPrice > 0 {
		fmt.Fprintf(&b, "\n💰 <b>Загальна вартість:</b> %s грн\n", formatPrice(totalPrice))
	}

	if submission.AdditionalInfo != "" {
		fmt.Fprintf(&b, "\n💬 <b>Додаткова інформація:</b>\n%s\n", submission.AdditionalInfo)
	}

	fmt.Fprintf(&b, "\n📝 <b>ID заявки:</b> %d\n", submission.ID)
	fmt.Fprintf(&b, "⏰ <b>Час подачі:</b> %s", time.Now().In(s.location).Format("02.01.2006, 15:04:05"))

	return b.String()
}

func formatServicesWithPricing(services []string) string {
	if len(services) == 0 {
		return "Не вказано"
	}

	lines := make([]string, 0, len(services))
	for _, service := range services {
		// невідома послуга показується з нульовою ціною
		price := ServicePrices[service]
		lines = append(lines, fmt.Sprintf("• %s - %s грн", service, formatPrice(price)))
	}

	return strings.Join(lines, "\n")
}

// formatPrice розставляє пробіли між групами розрядів: 16000 -> "16 000"
func formatPrice(price int) string {
	digits := fmt.Sprintf("%d", price)
	if price < 0 {
		return "-" + formatPrice(-price)
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// перевірка на етапі компіляції, що клієнт задовольняє інтерфейс відправника
var _ Sender = (*telegram.Client)(nil)
