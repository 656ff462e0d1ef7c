package test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KlorPe000/kubenko-production-studio/internal/models"
)

func validContactBody() map[string]interface{} {
	return map[string]interface{}{
		"brideName":   "Анна",
		"groomName":   "Олексій",
		"phone":       "380972056022",
		"email":       "anna@example.com",
		"weddingDate": "2026-09-12",
		"location":    "Київ",
		"services":    []string{"Love Story"},
	}
}

// newMultipartImage пише у buf multipart-форму з одним PNG-файлом і повертає
// значення заголовка Content-Type
func newMultipartImage(t *testing.T, buf *bytes.Buffer, field, name string) string {
	t.Helper()

	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile(field, name)
	require.NoError(t, err)

	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	_, err = part.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return writer.FormDataContentType()
}

func TestSubmitContact_JSON(t *testing.T) {
	h := newTestHandlers()
	router := newTestRouter(h)

	t.Run("Коректна заявка приймається", func(t *testing.T) {
		body, _ := json.Marshal(validContactBody())
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Success bool `json:"success"`
			ID      int  `json:"id"`
		}
		decodeJSON(t, rr, &response)
		assert.True(t, response.Success)
		assert.Greater(t, response.ID, 0)
	})

	t.Run("Порушення валідації з переліком полів", func(t *testing.T) {
		payload := validContactBody()
		payload["phone"] = "+380 97 205 60 22"
		payload["email"] = "не-email"

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var response struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Errors  []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		decodeJSON(t, rr, &response)
		assert.False(t, response.Success)
		assert.Equal(t, "Невірні дані форми", response.Message)
		require.Len(t, response.Errors, 2)
	})

	t.Run("Зіпсований JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{не json")))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSubmitContact_Multipart(t *testing.T) {
	h := newTestHandlers()
	router := newTestRouter(h)

	t.Run("Форма з файлом приймається", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)

		fields := map[string]string{
			"brideName":   "Марія",
			"groomName":   "Дмитро",
			"phone":       "380501112233",
			"email":       "maria@example.com",
			"weddingDate": "2026-10-01",
			"location":    "Львів",
			"services":    `["Фотопослуги","Love Story"]`,
			"totalPrice":  "11000",
		}
		for field, value := range fields {
			require.NoError(t, writer.WriteField(field, value))
		}

		part, err := writer.CreateFormFile("file0", "venue.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/contact", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		// імена файлів потрапляють у перелік вкладень заявки
		listReq := httptest.NewRequest(http.MethodGet, "/api/contact-submissions", nil)
		listRR := httptest.NewRecorder()
		router.ServeHTTP(listRR, listReq)
		require.Equal(t, http.StatusOK, listRR.Code)

		var submissions []models.ContactSubmission
		decodeJSON(t, listRR, &submissions)
		require.NotEmpty(t, submissions)
		assert.Equal(t, "Марія", submissions[0].BrideName)
		assert.Equal(t, []string{"venue.jpg"}, []string(submissions[0].Attachments))
	})

	t.Run("Зіпсоване поле services - порушення валідації", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("services", "не json"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/contact", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var response struct {
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		decodeJSON(t, rr, &response)
		require.Len(t, response.Errors, 1)
		assert.Equal(t, "services", response.Errors[0].Field)
		assert.Equal(t, "Оберіть послуги", response.Errors[0].Message)
	})
}

func TestGetSubmissions(t *testing.T) {
	h := newTestHandlers()
	router := newTestRouter(h)

	// свіже сховище - порожній масив, а не null
	req := httptest.NewRequest(http.MethodGet, "/api/contact-submissions", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}
