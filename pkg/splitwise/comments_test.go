package splitwise

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCommentService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"comments": [
			{
				"id": 301,
				"content": "Thanks for covering this!",
				"comment_type": "User",
				"user": {"id": 2, "first_name": "Grace"}
			}
		]
	}`

	mockTransport.On("Get", mock.Anything, "get_comments", mock.MatchedBy(func(query url.Values) bool {
		return query.Get("expense_id") == "1001"
	}), mock.Anything).Return(response, nil)

	comments, err := client.Comments.List(context.Background(), 1001)

	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, "Thanks for covering this!", comments[0].Content)
	assert.Equal(t, int64(2), comments[0].User.ID)

	mockTransport.AssertExpectations(t)
}

func TestCommentService_Create(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"comment": {
			"id": 302,
			"content": "Splitting this evenly"
		}
	}`

	mockTransport.On("Post", mock.Anything, "create_comment", mock.MatchedBy(func(body interface{}) bool {
		fields := body.(map[string]interface{})
		return fields["expense_id"] == int64(1001) && fields["content"] == "Splitting this evenly"
	}), mock.Anything).Return(response, nil)

	comment, err := client.Comments.Create(context.Background(), 1001, "Splitting this evenly")

	assert.NoError(t, err)
	assert.Equal(t, int64(302), comment.ID)

	mockTransport.AssertExpectations(t)
}

func TestCommentService_Create_RequiresContent(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	comment, err := client.Comments.Create(context.Background(), 1001, "")

	assert.Error(t, err)
	assert.Nil(t, comment)

	mockTransport.AssertNotCalled(t, "Post")
}
