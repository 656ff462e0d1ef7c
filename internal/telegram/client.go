package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/KlorPe000/kubenko-production-studio/internal/config"
	"github.com/KlorPe000/kubenko-production-studio/internal/models"
)

// MediaGroupLimit - максимум вкладень в одному sendMediaGroup за обмеженням Bot API
const MediaGroupLimit = 10

// Client - клієнт Telegram Bot API. Текстові повідомлення йдуть JSON-запитом,
// повідомлення з файлами - multipart-формою з буферів у пам'яті.
type Client struct {
	httpClient *http.Client
	apiBase    string
	botToken   string
	chatID     string
}

func NewClient(cfg config.Telegram) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiBase:    strings.TrimSuffix(cfg.APIBase, "/"),
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
	}
}

// Enabled повідомляє, чи налаштований бот
func (c *Client) Enabled() bool {
	return c.botToken != "" && c.chatID != ""
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.botToken, method)
}

// SendMessage надсилає текстове повідомлення з HTML-розміткою
func (c *Client) SendMessage(ctx context.Context, text string) error {
	payload := map[string]string{
		"chat_id":    c.chatID,
		"text":       text,
		"parse_mode": "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("помилка серіалізації повідомлення: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("помилка створення запиту: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, "sendMessage")
}

// SendPhoto надсилає одне зображення з підписом
func (c *Client) SendPhoto(ctx context.Context, file models.UploadedFile, caption string) error {
	return c.sendFile(ctx, "sendPhoto", "photo", file, caption)
}

// SendVideo надсилає одне відео з підписом
func (c *Client) SendVideo(ctx context.Context, file models.UploadedFile, caption string) error {
	return c.sendFile(ctx, "sendVideo", "video", file, caption)
}

// SendDocument надсилає документ з підписом
func (c *Client) SendDocument(ctx context.Context, file models.UploadedFile, caption string) error {
	return c.sendFile(ctx, "sendDocument", "document", file, caption)
}

func (c *Client) sendFile(ctx context.Context, method, field string, file models.UploadedFile, caption string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("chat_id", c.chatID); err != nil {
		return fmt.Errorf("помилка формування форми: %w", err)
	}
	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return fmt.Errorf("помилка формування форми: %w", err)
		}
		if err := writer.WriteField("parse_mode", "HTML"); err != nil {
			return fmt.Errorf("помилка формування форми: %w", err)
		}
	}

	part, err := writer.CreateFormFile(field, file.FileName)
	if err != nil {
		return fmt.Errorf("помилка додавання файлу до форми: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return fmt.Errorf("помилка запису файлу до форми: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("помилка закриття форми: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), &buf)
	if err != nil {
		return fmt.Errorf("помилка створення запиту: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, method)
}

type inputMedia struct {
	Type      string `json:"type"` // photo | video
	Media     string `json:"media"`
	Caption   string `json:"caption,omitempty"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// SendMediaGroup надсилає до десяти медіафайлів одним повідомленням; підпис
// ставиться лише на перший елемент. Зайві файли обрізаються.
func (c *Client) SendMediaGroup(ctx context.Context, files []models.UploadedFile, caption string) error {
	if len(files) > MediaGroupLimit {
		files = files[:MediaGroupLimit]
	}

	media := make([]inputMedia, 0, len(files))
	for i, file := range files {
		item := inputMedia{
			Type:  "photo",
			Media: fmt.Sprintf("attach://file%d", i),
		}
		if strings.HasPrefix(file.ContentType, "video/") {
			item.Type = "video"
		}
		if i == 0 {
			item.Caption = caption
			item.ParseMode = "HTML"
		}
		media = append(media, item)
	}

	mediaJSON, err := json.Marshal(media)
	if err != nil {
		return fmt.Errorf("помилка серіалізації медіагрупи: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("chat_id", c.chatID); err != nil {
		return fmt.Errorf("помилка формування форми: %w", err)
	}
	if err := writer.WriteField("media", string(mediaJSON)); err != nil {
		return fmt.Errorf("помилка формування форми: %w", err)
	}

	for i, file := range files {
		part, err := writer.CreateFormFile(fmt.Sprintf("file%d", i), file.FileName)
		if err != nil {
			return fmt.Errorf("помилка додавання файлу до форми: %w", err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return fmt.Errorf("помилка запису файлу до форми: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("помилка закриття форми: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendMediaGroup"), &buf)
	if err != nil {
		return fmt.Errorf("помилка створення запиту: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, "sendMediaGroup")
}

func (c *Client) do(req *http.Request, method string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("помилка виклику Telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("помилка читання відповіді Telegram %s: %w", method, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("несподівана відповідь Telegram %s (код %d): %w", method, resp.StatusCode, err)
	}

	if !apiResp.OK {
		return fmt.Errorf("Telegram %s відхилив запит: %s", method, apiResp.Description)
	}

	return nil
}
