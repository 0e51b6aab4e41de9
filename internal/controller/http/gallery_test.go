package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"game-platform/internal/models"
	"game-platform/internal/repo"
	"game-platform/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGalleryStore is a mock implementation of galleryStore
type MockGalleryStore struct {
	mock.Mock
}

func (m *MockGalleryStore) Create(item *models.UserGallery) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockGalleryStore) Get(id uint64) (*models.UserGallery, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserGallery), args.Error(1)
}

func (m *MockGalleryStore) List() ([]models.UserGallery, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserGallery), args.Error(1)
}

func (m *MockGalleryStore) Patch(id uint64, fields map[string]interface{}) (*models.UserGallery, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserGallery), args.Error(1)
}

func (m *MockGalleryStore) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ galleryStore = (*MockGalleryStore)(nil)

// MockObjectStorage is a mock implementation of objectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) KeyFromURL(rawURL string) string {
	args := m.Called(rawURL)
	return args.String(0)
}

func (m *MockObjectStorage) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

var _ objectStorage = (*MockObjectStorage)(nil)

func TestDeleteGalleryItem_RemovesStoredObject(t *testing.T) {
	mockStore := new(MockGalleryStore)
	mockStorage := new(MockObjectStorage)
	handler := NewGalleryHandler(mockStore, mockStorage, logger.New())

	router := setupTestRouter()
	router.DELETE("/gallery/:id", handler.Delete)

	imageURL := "http://localhost:9000/game-platform-media/gallery/abc.png"
	mockStore.On("Get", uint64(7)).Return(&models.UserGallery{ID: 7, UserID: 1, ImageURL: imageURL}, nil)
	mockStore.On("Delete", uint64(7)).Return(nil)
	mockStorage.On("KeyFromURL", imageURL).Return("gallery/abc.png")
	mockStorage.On("DeleteFile", "gallery/abc.png").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/gallery/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockStore.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
}

func TestDeleteGalleryItem_ForeignURLSkipsStorage(t *testing.T) {
	mockStore := new(MockGalleryStore)
	mockStorage := new(MockObjectStorage)
	handler := NewGalleryHandler(mockStore, mockStorage, logger.New())

	router := setupTestRouter()
	router.DELETE("/gallery/:id", handler.Delete)

	imageURL := "https://example.com/external.png"
	mockStore.On("Get", uint64(7)).Return(&models.UserGallery{ID: 7, UserID: 1, ImageURL: imageURL}, nil)
	mockStore.On("Delete", uint64(7)).Return(nil)
	mockStorage.On("KeyFromURL", imageURL).Return("")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/gallery/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockStorage.AssertNotCalled(t, "DeleteFile")
}

func TestDeleteGalleryItem_StorageFailureStillDeletes(t *testing.T) {
	mockStore := new(MockGalleryStore)
	mockStorage := new(MockObjectStorage)
	handler := NewGalleryHandler(mockStore, mockStorage, logger.New())

	router := setupTestRouter()
	router.DELETE("/gallery/:id", handler.Delete)

	imageURL := "http://localhost:9000/game-platform-media/gallery/abc.png"
	mockStore.On("Get", uint64(7)).Return(&models.UserGallery{ID: 7, UserID: 1, ImageURL: imageURL}, nil)
	mockStore.On("Delete", uint64(7)).Return(nil)
	mockStorage.On("KeyFromURL", imageURL).Return("gallery/abc.png")
	mockStorage.On("DeleteFile", "gallery/abc.png").Return(errors.New("connection refused"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/gallery/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockStore.AssertExpectations(t)
}

func TestDeleteGalleryItem_NilStorage(t *testing.T) {
	mockStore := new(MockGalleryStore)
	handler := NewGalleryHandler(mockStore, nil, logger.New())

	router := setupTestRouter()
	router.DELETE("/gallery/:id", handler.Delete)

	mockStore.On("Get", uint64(7)).Return(&models.UserGallery{ID: 7, UserID: 1, ImageURL: "x"}, nil)
	mockStore.On("Delete", uint64(7)).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/gallery/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockStore.AssertExpectations(t)
}

func TestDeleteGalleryItem_NotFound(t *testing.T) {
	mockStore := new(MockGalleryStore)
	mockStorage := new(MockObjectStorage)
	handler := NewGalleryHandler(mockStore, mockStorage, logger.New())

	router := setupTestRouter()
	router.DELETE("/gallery/:id", handler.Delete)

	mockStore.On("Get", uint64(42)).Return(nil, repo.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/gallery/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockStore.AssertNotCalled(t, "Delete")
	mockStorage.AssertNotCalled(t, "DeleteFile")
}
