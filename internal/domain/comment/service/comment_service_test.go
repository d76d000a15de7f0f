package service

import (
	"testing"

	"blog_platform_api/internal/domain/comment/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockCommentRepository is a mock of CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id uint) (*model.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByPost(postID uint, onlyApproved, topLevelOnly bool) ([]model.Comment, error) {
	args := m.Called(postID, onlyApproved, topLevelOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetReplies(parentID uint, onlyApproved bool) ([]model.Comment, error) {
	args := m.Called(parentID, onlyApproved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Approve(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommentRepository) GetForModeration() ([]model.ModerationEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ModerationEntry), args.Error(1)
}

func TestCreateComment(t *testing.T) {
	t.Run("Authenticated caller is auto approved", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo)

		mockRepo.On("Create", mock.AnythingOfType("*model.Comment")).Return(nil)

		comment, err := service.Create(CreateInput{
			PostID:     1,
			Content:    "Nice post",
			AuthorName: "Jane",
		}, &Identity{UserID: "user_123"})

		assert.NoError(t, err)
		assert.True(t, comment.IsApproved)
		assert.Equal(t, "user_123", *comment.ClerkID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Anonymous comment awaits moderation", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo)

		mockRepo.On("Create", mock.AnythingOfType("*model.Comment")).Return(nil)

		comment, err := service.Create(CreateInput{
			PostID:     1,
			Content:    "Anon here",
			AuthorName: "Anonymous",
		}, nil)

		assert.NoError(t, err)
		assert.False(t, comment.IsApproved)
		assert.Nil(t, comment.ClerkID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Reply to missing parent is rejected", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo)

		parentID := uint(42)
		mockRepo.On("GetByID", parentID).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Create(CreateInput{
			PostID:     1,
			Content:    "reply",
			AuthorName: "Jane",
			ParentID:   &parentID,
		}, nil)

		assert.ErrorIs(t, err, ErrParentMismatch)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Reply to parent of another post is rejected", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo)

		parentID := uint(42)
		parent := &model.Comment{PostID: 2}
		parent.ID = parentID
		mockRepo.On("GetByID", parentID).Return(parent, nil)

		_, err := service.Create(CreateInput{
			PostID:     1,
			Content:    "reply",
			AuthorName: "Jane",
			ParentID:   &parentID,
		}, nil)

		assert.ErrorIs(t, err, ErrParentMismatch)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Valid reply on same post", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo)

		parentID := uint(42)
		parent := &model.Comment{PostID: 1}
		parent.ID = parentID
		mockRepo.On("GetByID", parentID).Return(parent, nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Comment")).Return(nil)

		comment, err := service.Create(CreateInput{
			PostID:     1,
			Content:    "reply",
			AuthorName: "Jane",
			ParentID:   &parentID,
		}, nil)

		assert.NoError(t, err)
		assert.Equal(t, parentID, *comment.ParentID)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetCommentsByPost(t *testing.T) {
	t.Run("Replies nested under top level comments", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo)

		top := model.Comment{PostID: 1, Content: "top"}
		top.ID = 1
		reply := model.Comment{PostID: 1, Content: "reply"}
		reply.ID = 2

		mockRepo.On("GetByPost", uint(1), true, true).Return([]model.Comment{top}, nil)
		mockRepo.On("GetReplies", uint(1), true).Return([]model.Comment{reply}, nil)

		records, err := service.GetByPost(1, false)

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Len(t, records[0].Replies, 1)
		assert.Equal(t, "reply", records[0].Replies[0].Content)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unapproved included for authenticated callers", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo)

		pending := model.Comment{PostID: 1, Content: "pending", IsApproved: false}
		pending.ID = 3

		mockRepo.On("GetByPost", uint(1), false, true).Return([]model.Comment{pending}, nil)
		mockRepo.On("GetReplies", uint(3), false).Return([]model.Comment{}, nil)

		records, err := service.GetByPost(1, true)

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.NotNil(t, records[0].Replies)
		mockRepo.AssertExpectations(t)
	})
}

func TestApproveComment(t *testing.T) {
	t.Run("Approve existing comment", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo)

		existing := &model.Comment{PostID: 1}
		existing.ID = 5
		mockRepo.On("GetByID", uint(5)).Return(existing, nil)
		mockRepo.On("Approve", uint(5)).Return(nil)

		assert.NoError(t, service.Approve(5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Approve missing comment", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo)

		mockRepo.On("GetByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, service.Approve(404), gorm.ErrRecordNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestCommentExists(t *testing.T) {
	mockRepo := new(MockCommentRepository)
	service := NewCommentService(mockRepo)

	existing := &model.Comment{PostID: 1}
	existing.ID = 1
	mockRepo.On("GetByID", uint(1)).Return(existing, nil)
	mockRepo.On("GetByID", uint(2)).Return(nil, gorm.ErrRecordNotFound)

	ok, err := service.Exists(1)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Exists(2)
	assert.NoError(t, err)
	assert.False(t, ok)
	mockRepo.AssertExpectations(t)
}
