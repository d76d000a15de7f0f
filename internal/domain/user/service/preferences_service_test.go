package service

import (
	"errors"
	"testing"

	"blog_platform_api/internal/domain/user/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockPreferencesRepository is a mock of PreferencesRepository
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) GetByClerkID(clerkID string) (*model.UserPreferences, error) {
	args := m.Called(clerkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserPreferences), args.Error(1)
}

func (m *MockPreferencesRepository) Create(prefs *model.UserPreferences) error {
	args := m.Called(prefs)
	return args.Error(0)
}

func (m *MockPreferencesRepository) Update(prefs *model.UserPreferences) error {
	args := m.Called(prefs)
	return args.Error(0)
}

func (m *MockPreferencesRepository) DeleteByClerkID(clerkID string) error {
	args := m.Called(clerkID)
	return args.Error(0)
}

// MockAccountRepository is a mock of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) DeleteAccount(clerkID string) error {
	args := m.Called(clerkID)
	return args.Error(0)
}

func newPreferencesTestService() (*MockPreferencesRepository, *MockAccountRepository, PreferencesService) {
	mockRepo := new(MockPreferencesRepository)
	mockAccount := new(MockAccountRepository)
	return mockRepo, mockAccount, NewPreferencesService(mockRepo, mockAccount)
}

func TestGetOrCreatePreferences(t *testing.T) {
	t.Run("Existing preferences returned as is", func(t *testing.T) {
		mockRepo, _, service := newPreferencesTestService()

		existing := &model.UserPreferences{ClerkID: "user_1", Theme: "dark", Language: "fr"}
		mockRepo.On("GetByClerkID", "user_1").Return(existing, nil)

		prefs, created, err := service.GetOrCreate("user_1")

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "dark", prefs.Theme)
		mockRepo.AssertExpectations(t)
	})

	t.Run("First access creates defaults", func(t *testing.T) {
		mockRepo, _, service := newPreferencesTestService()

		mockRepo.On("GetByClerkID", "user_2").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.UserPreferences")).Return(nil)

		prefs, created, err := service.GetOrCreate("user_2")

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "system", prefs.Theme)
		assert.Equal(t, "en", prefs.Language)
		assert.True(t, prefs.AutoSave)
		assert.False(t, prefs.TwoFactorEnabled)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdatePreferences(t *testing.T) {
	t.Run("Valid partial update", func(t *testing.T) {
		mockRepo, _, service := newPreferencesTestService()

		existing := model.DefaultPreferences("user_1")
		mockRepo.On("GetByClerkID", "user_1").Return(existing, nil)
		mockRepo.On("Update", mock.AnythingOfType("*model.UserPreferences")).Return(nil)

		prefs, created, err := service.Update("user_1", map[string]interface{}{
			"theme":     "dark",
			"auto_save": false,
		})

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "dark", prefs.Theme)
		assert.False(t, prefs.AutoSave)
		// 未提供的字段保持缺省值
		assert.Equal(t, "en", prefs.Language)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty payload rejected", func(t *testing.T) {
		_, _, service := newPreferencesTestService()

		_, _, err := service.Update("user_1", map[string]interface{}{})

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "No data provided.", verr.Error())
	})

	t.Run("Unknown fields rejected sorted", func(t *testing.T) {
		_, _, service := newPreferencesTestService()

		_, _, err := service.Update("user_1", map[string]interface{}{
			"zeta":  1,
			"alpha": 2,
		})

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid fields: alpha, zeta", verr.Error())
	})

	t.Run("Invalid theme rejected", func(t *testing.T) {
		_, _, service := newPreferencesTestService()

		_, _, err := service.Update("user_1", map[string]interface{}{"theme": "neon"})

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Error(), "Invalid theme value")
	})

	t.Run("Invalid language rejected", func(t *testing.T) {
		_, _, service := newPreferencesTestService()

		_, _, err := service.Update("user_1", map[string]interface{}{"language": "xx"})

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Error(), "Invalid language value")
	})

	t.Run("Missing row is created with updates applied", func(t *testing.T) {
		mockRepo, _, service := newPreferencesTestService()

		mockRepo.On("GetByClerkID", "user_3").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.UserPreferences")).Return(nil)

		prefs, created, err := service.Update("user_3", map[string]interface{}{"theme": "light"})

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "light", prefs.Theme)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Legacy truthy encodings accepted", func(t *testing.T) {
		mockRepo, _, service := newPreferencesTestService()

		existing := model.DefaultPreferences("user_1")
		mockRepo.On("GetByClerkID", "user_1").Return(existing, nil)
		mockRepo.On("Update", mock.AnythingOfType("*model.UserPreferences")).Return(nil)

		prefs, _, err := service.Update("user_1", map[string]interface{}{
			"two_factor_enabled": float64(1),
			"auto_save":          "false",
		})

		assert.NoError(t, err)
		assert.True(t, prefs.TwoFactorEnabled)
		assert.False(t, prefs.AutoSave)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("Delegates to account repository", func(t *testing.T) {
		_, mockAccount, service := newPreferencesTestService()

		mockAccount.On("DeleteAccount", "user_1").Return(nil)

		assert.NoError(t, service.DeleteAccount("user_1"))
		mockAccount.AssertExpectations(t)
	})

	t.Run("Missing profile surfaces not found", func(t *testing.T) {
		_, mockAccount, service := newPreferencesTestService()

		mockAccount.On("DeleteAccount", "ghost").Return(gorm.ErrRecordNotFound)

		assert.True(t, errors.Is(service.DeleteAccount("ghost"), gorm.ErrRecordNotFound))
		mockAccount.AssertExpectations(t)
	})
}
