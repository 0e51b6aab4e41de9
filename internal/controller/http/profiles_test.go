package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"game-platform/internal/models"
	"game-platform/internal/repo"
	"game-platform/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfilesStore is a mock implementation of profilesStore
type MockProfilesStore struct {
	mock.Mock
}

func (m *MockProfilesStore) Create(p *models.Profile) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProfilesStore) GetDetailed(id uint64) (*repo.ProfileDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.ProfileDetail), args.Error(1)
}

func (m *MockProfilesStore) ListDetailed(f repo.ProfileFilter) ([]repo.ProfileDetail, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.ProfileDetail), args.Error(1)
}

func (m *MockProfilesStore) Patch(id uint64, fields map[string]interface{}) (*models.Profile, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfilesStore) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ profilesStore = (*MockProfilesStore)(nil)

func TestListProfiles_FilterParams(t *testing.T) {
	mockStore := new(MockProfilesStore)
	handler := NewProfilesHandler(mockStore, logger.New())

	router := setupTestRouter()
	router.GET("/profiles", handler.List)

	expected := repo.ProfileFilter{Search: "dota", GameID: 3, SortBy: "rating"}
	mockStore.On("ListDetailed", expected).Return([]repo.ProfileDetail{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profiles?search=dota&game=3&sort_by=rating", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockStore.AssertExpectations(t)
}

func TestListProfiles_GameZeroMatchesNothing(t *testing.T) {
	mockStore := new(MockProfilesStore)
	handler := NewProfilesHandler(mockStore, logger.New())

	router := setupTestRouter()
	router.GET("/profiles", handler.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profiles?game=0", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	mockStore.AssertNotCalled(t, "ListDetailed")
}

func TestListProfiles_InvalidGame(t *testing.T) {
	mockStore := new(MockProfilesStore)
	handler := NewProfilesHandler(mockStore, logger.New())

	router := setupTestRouter()
	router.GET("/profiles", handler.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profiles?game=zero", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockStore.AssertNotCalled(t, "ListDetailed")
}

func TestGetProfile_ExpandedResponse(t *testing.T) {
	mockStore := new(MockProfilesStore)
	handler := NewProfilesHandler(mockStore, logger.New())

	router := setupTestRouter()
	router.GET("/profiles/:id", handler.Get)

	mockStore.On("GetDetailed", uint64(5)).Return(&repo.ProfileDetail{
		Profile:        models.Profile{UserID: 5, Country: "DE"},
		User:           models.User{ID: 5, Username: "alice"},
		UserGames:      []models.UserGame{},
		FollowersCount: 12,
		Rating:         4.5,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profiles/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(12), response["followers_count"])
	assert.Equal(t, 4.5, response["rating"])
	assert.Equal(t, "alice", response["user"].(map[string]interface{})["username"])

	mockStore.AssertExpectations(t)
}

func TestUpdateProfile_UserIDNotUpdatable(t *testing.T) {
	mockStore := new(MockProfilesStore)
	handler := NewProfilesHandler(mockStore, logger.New())

	router := setupTestRouter()
	router.PATCH("/profiles/:id", handler.Update)

	mockStore.On("Patch", uint64(5), map[string]interface{}{"country": "FR"}).
		Return(&models.Profile{UserID: 5, Country: "FR"}, nil)
	mockStore.On("GetDetailed", uint64(5)).Return(&repo.ProfileDetail{
		Profile:   models.Profile{UserID: 5, Country: "FR"},
		User:      models.User{ID: 5, Username: "alice"},
		UserGames: []models.UserGame{},
	}, nil)

	body := `{"user_id":999,"country":"FR"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/profiles/5", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockStore.AssertExpectations(t)
}

func TestCreateProfile_RequiresUserID(t *testing.T) {
	mockStore := new(MockProfilesStore)
	handler := NewProfilesHandler(mockStore, logger.New())

	router := setupTestRouter()
	router.POST("/profiles", handler.Create)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/profiles", bytes.NewBufferString(`{"country":"DE"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockStore.AssertNotCalled(t, "Create")
}
