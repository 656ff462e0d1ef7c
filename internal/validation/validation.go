package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KlorPe000/kubenko-production-studio/internal/repository"
)

// FieldViolation - одне порушення правила для конкретного поля
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError містить повний набір порушень; форма або приймається цілком,
// або відхиляється цілком
type ValidationError struct {
	Violations []FieldViolation `json:"errors"`
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "невірні дані форми: " + strings.Join(messages, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

var digitsPattern = regexp.MustCompile(`^\d+$`)

type submissionRules struct {
	BrideName   string   `validate:"required"`
	GroomName   string   `validate:"required"`
	Phone       string   `validate:"required,digitsonly"`
	Email       string   `validate:"required,email"`
	WeddingDate string   `validate:"required"`
	Location    string   `validate:"required"`
	Services    []string `validate:"required,min=1"`
}

var submissionMessages = map[string]string{
	"BrideName":   "Ім'я нареченої обов'язкове",
	"GroomName":   "Ім'я нареченого обов'язкове",
	"Phone":       "Телефон обов'язковий",
	"Email":       "Невірний формат email",
	"WeddingDate": "Дата весілля обов'язкова",
	"Location":    "Локація весілля обов'язкова",
	"Services":    "Оберіть послуги",
}

var submissionFieldNames = map[string]string{
	"BrideName":   "brideName",
	"GroomName":   "groomName",
	"Phone":       "phone",
	"Email":       "email",
	"WeddingDate": "weddingDate",
	"Location":    "location",
	"Services":    "services",
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// лише цифри, без плюса та пробілів
	_ = v.RegisterValidation("digitsonly", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// ValidateSubmission нормалізує та перевіряє дані форми зв'язку. Повертає
// *ValidationError з повним переліком порушень або nil.
func (v *Validator) ValidateSubmission(req *repository.CreateSubmissionRequest) error {
	// обов'язкові рядкові поля мають бути непорожніми після обрізання пробілів
	req.BrideName = strings.TrimSpace(req.BrideName)
	req.GroomName = strings.TrimSpace(req.GroomName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)
	req.WeddingDate = strings.TrimSpace(req.WeddingDate)
	req.Location = strings.TrimSpace(req.Location)
	req.AdditionalInfo = strings.TrimSpace(req.AdditionalInfo)

	rules := submissionRules{
		BrideName:   req.BrideName,
		GroomName:   req.GroomName,
		Phone:       req.Phone,
		Email:       req.Email,
		WeddingDate: req.WeddingDate,
		Location:    req.Location,
		Services:    req.Services,
	}

	err := v.validate.Struct(rules)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("помилка валідації: %w", err)
	}

	vErr := &ValidationError{}
	for _, fieldError := range validationErrors {
		name := fieldError.StructField()
		message := submissionMessages[name]
		if name == "Phone" && fieldError.Tag() == "digitsonly" {
			message = "Телефон повинен містити лише цифри"
		}
		vErr.add(submissionFieldNames[name], message)
	}

	return vErr
}

// ParseServicesField розбирає поле services з multipart-форми: воно приходить
// JSON-рядком. Невдалий розбір - порушення валідації, а не збій.
func ParseServicesField(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}

	var services []string
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, &ValidationError{Violations: []FieldViolation{
			{Field: "services", Message: "Оберіть послуги"},
		}}
	}

	return services, nil
}

// ValidatePortfolio перевіряє дані нового елемента портфоліо
func (v *Validator) ValidatePortfolio(req *repository.CreatePortfolioRequest) error {
	req.Type = strings.TrimSpace(req.Type)
	req.Category = strings.TrimSpace(req.Category)
	req.Couple = strings.TrimSpace(req.Couple)
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	vErr := &ValidationError{}

	if req.Type != "video" && req.Type != "photo" {
		vErr.add("type", "Тип має бути video або photo")
	}
	if req.Category == "" {
		vErr.add("category", "Категорія обов'язкова")
	}
	if req.Couple == "" {
		vErr.add("couple", "Імена пари обов'язкові")
	}
	if req.Title == "" {
		vErr.add("title", "Заголовок обов'язковий")
	}
	if req.Description == "" {
		vErr.add("description", "Опис обов'язковий")
	}

	if len(vErr.Violations) > 0 {
		return vErr
	}
	return nil
}

// ValidatePortfolioUpdate перевіряє часткове оновлення: правила застосовуються
// лише до переданих полів
func (v *Validator) ValidatePortfolioUpdate(req *repository.UpdatePortfolioRequest) error {
	vErr := &ValidationError{}

	if req.Type != nil {
		*req.Type = strings.TrimSpace(*req.Type)
		if *req.Type != "video" && *req.Type != "photo" {
			vErr.add("type", "Тип має бути video або photo")
		}
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		vErr.add("category", "Категорія обов'язкова")
	}
	if req.Couple != nil && strings.TrimSpace(*req.Couple) == "" {
		vErr.add("couple", "Імена пари обов'язкові")
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		vErr.add("title", "Заголовок обов'язковий")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		vErr.add("description", "Опис обов'язковий")
	}

	if len(vErr.Violations) > 0 {
		return vErr
	}
	return nil
}

// ValidateLogin перевіряє дані входу адміністратора
func (v *Validator) ValidateLogin(username, password string) error {
	vErr := &ValidationError{}

	if strings.TrimSpace(username) == "" {
		vErr.add("username", "Ім'я користувача обов'язкове")
	}
	if password == "" {
		vErr.add("password", "Пароль обов'язковий")
	}

	if len(vErr.Violations) > 0 {
		return vErr
	}
	return nil
}
