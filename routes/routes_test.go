package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"campus-backend/apperror"
	"campus-backend/controllers"
	"campus-backend/models"
	"campus-backend/services"
)

// In-memory stores backing the full router under test.

type memUserStore struct {
	users []*models.User
}

func (s *memUserStore) Insert(_ context.Context, user *models.User) error {
	for _, existing := range s.users {
		if existing.Phone == user.Phone {
			return apperror.Conflict("phone number " + user.Phone + " is already registered")
		}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

func (s *memUserStore) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	for _, user := range s.users {
		if user.Phone == phone {
			found := *user
			return &found, nil
		}
	}
	return nil, apperror.NotFound("no user found with phone " + phone)
}

func (s *memUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, user := range s.users {
		if user.ID.Hex() == id {
			found := *user
			return &found, nil
		}
	}
	return nil, apperror.NotFound("no user found with id " + id)
}

func (s *memUserStore) CountByRole(_ context.Context, role string) (int64, error) {
	var count int64
	for _, user := range s.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type memMessageStore struct {
	messages []models.Message
}

func (s *memMessageStore) Insert(_ context.Context, msg *models.Message) error {
	msg.ID = primitive.NewObjectID()
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *memMessageStore) FindConversation(_ context.Context, participant string) ([]models.Message, error) {
	var result []models.Message
	for _, msg := range s.messages {
		if msg.Sender == participant || msg.Receiver == participant {
			result = append(result, msg)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

type memImageStore struct {
	images []models.Image
}

func (s *memImageStore) Insert(_ context.Context, img *models.Image) error {
	img.ID = primitive.NewObjectID()
	s.images = append(s.images, *img)
	return nil
}

func (s *memImageStore) FindByOwner(_ context.Context, owner string) ([]models.Image, error) {
	var result []models.Image
	for _, img := range s.images {
		if img.UserID == owner {
			result = append(result, img)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SentAt.After(result[j].SentAt)
	})
	return result, nil
}

type memUploader struct {
	uploads int
}

func (u *memUploader) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	u.uploads++
	return "https://media.test/" + key, nil
}

type testEnv struct {
	router   *gin.Engine
	users    *memUserStore
	messages *memMessageStore
	images   *memImageStore
	uploader *memUploader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	users := &memUserStore{}
	messages := &memMessageStore{}
	images := &memImageStore{}
	uploader := &memUploader{}

	tokens, err := services.NewTokenService("test-secret")
	require.NoError(t, err)

	require.NoError(t, services.EnsureAdminAccount(context.Background(), users, "deploy-secret", log))

	authController := controllers.NewAuthController(services.NewAuthService(users, tokens, log))
	chatController := controllers.NewChatController(services.NewChatService(messages, users, log))
	imageController := controllers.NewImageController(services.NewImageService(images, users, uploader, log))

	r := gin.New()
	SetupRoutes(r, tokens, authController, chatController, imageController)

	return &testEnv{router: r, users: users, messages: messages, images: images, uploader: uploader}
}

func (e *testEnv) postJSON(t *testing.T, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postImage(t *testing.T, token, phone string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("phone", phone))
	part, err := writer.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/send-image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) registerStudent(t *testing.T, phone string) {
	t.Helper()
	w := e.postJSON(t, "/auth/register", "", gin.H{
		"fullName":   "Sara Alghamdi",
		"phone":      phone,
		"university": "KAU",
		"major":      "CS",
		"batch":      "2024",
		"password":   "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (e *testEnv) login(t *testing.T, phone, password string) string {
	t.Helper()
	w := e.postJSON(t, "/auth/login", "", gin.H{"phone": phone, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	w := env.get(t, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegister_BadPhoneIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.postJSON(t, "/auth/register", "", gin.H{
		"fullName":   "Sara Alghamdi",
		"phone":      "412345678",
		"university": "KAU",
		"major":      "CS",
		"batch":      "2024",
		"password":   "s3cret-pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_MissingFieldIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.postJSON(t, "/auth/register", "", gin.H{"phone": "512345678"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateIs400(t *testing.T) {
	env := newTestEnv(t)
	env.registerStudent(t, "512345678")

	w := env.postJSON(t, "/auth/register", "", gin.H{
		"fullName":   "Sara Alghamdi",
		"phone":      "512345678",
		"university": "KAU",
		"major":      "CS",
		"batch":      "2024",
		"password":   "s3cret-pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.registerStudent(t, "512345678")

	unknown := env.postJSON(t, "/auth/login", "", gin.H{"phone": "599999999", "password": "s3cret-pass"})
	wrongPass := env.postJSON(t, "/auth/login", "", gin.H{"phone": "512345678", "password": "nope"})

	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
}

func TestLogin_ReturnsTokenAndProfileWithoutHash(t *testing.T) {
	env := newTestEnv(t)
	env.registerStudent(t, "512345678")

	w := env.postJSON(t, "/auth/login", "", gin.H{"phone": "512345678", "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string         `json:"token"`
		User  models.Profile `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "512345678", resp.User.Phone)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
	assert.NotContains(t, w.Body.String(), "$2a$", "bcrypt hash must never appear in a response")
}

func TestChat_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.postJSON(t, "/chat/send", "", gin.H{"text": "hello"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChat_SendAndList(t *testing.T) {
	env := newTestEnv(t)
	env.registerStudent(t, "512345678")
	token := env.login(t, "512345678", "s3cret-pass")

	w := env.postJSON(t, "/chat/send", token, gin.H{"text": "hello admin"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	list := env.get(t, "/chat/messages", token)
	require.Equal(t, http.StatusOK, list.Code)

	var messages []models.MessageView
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "hello admin", messages[0].Text)
	assert.Equal(t, models.AdminReceiver, messages[0].Receiver)
	assert.Equal(t, "Sara Alghamdi", messages[0].SenderName)
}

func TestSendImage_StudentIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	env.registerStudent(t, "512345678")
	token := env.login(t, "512345678", "s3cret-pass")

	w := env.postImage(t, token, "512345678")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, env.images.images, "a forbidden request must not create a record")
	assert.Zero(t, env.uploader.uploads)
}

func TestSendImage_UnknownPhoneIs404(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.login(t, "500000000", "deploy-secret")

	w := env.postImage(t, adminToken, "599999999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "599999999")
	assert.Empty(t, env.images.images)
}

func TestSendImage_MissingFileIs400(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.login(t, "500000000", "deploy-secret")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("phone", "512345678"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/send-image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendImage_DeliveredToOwnerListing(t *testing.T) {
	env := newTestEnv(t)
	env.registerStudent(t, "512345678")
	studentToken := env.login(t, "512345678", "s3cret-pass")
	adminToken := env.login(t, "500000000", "deploy-secret")

	w := env.postImage(t, adminToken, "512345678")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, env.images.images, 1)

	list := env.get(t, "/images", studentToken)
	require.Equal(t, http.StatusOK, list.Code)

	var images []models.Image
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &images))
	require.Len(t, images, 1)
	assert.Equal(t, "512345678", images[0].ImageName)
	assert.Contains(t, images[0].URL, "https://media.test/images/512345678-")
}
