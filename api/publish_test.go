package api

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tanishksoam/speakhire/schema"
	"github.com/Tanishksoam/speakhire/store"
)

func TestPublishFormEmptyEmails(t *testing.T) {
	ts, ctrl := newTestServer(t)
	defer ctrl.Finish()

	formID := primitive.NewObjectID()
	w := ts.do(t, "POST", "/forms/"+formID.Hex()+"/publish", map[string]interface{}{
		"emails": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublishFormInvalidEmail(t *testing.T) {
	ts, ctrl := newTestServer(t)
	defer ctrl.Finish()

	formID := primitive.NewObjectID()
	w := ts.do(t, "POST", "/forms/"+formID.Hex()+"/publish", map[string]interface{}{
		"emails": []string{"u@test.com", "not an email"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublishFormNotFound(t *testing.T) {
	ts, ctrl := newTestServer(t)
	defer ctrl.Finish()

	formID := primitive.NewObjectID()
	ts.store.EXPECT().
		PublishForm(formID, []string{"u@test.com"}, gomock.Any()).
		Return(nil, store.ErrFormNotFound)

	w := ts.do(t, "POST", "/forms/"+formID.Hex()+"/publish", map[string]interface{}{
		"emails": []string{"u@test.com"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestPublishFormNotifiesOnlyNewRecipients publishes to a form with one
// existing and one new recipient and expects exactly one invitation mail.
func TestPublishFormNotifiesOnlyNewRecipients(t *testing.T) {
	ts, ctrl := newTestServer(t)
	defer ctrl.Finish()

	formID := primitive.NewObjectID()
	existing := schema.Recipient{Email: "old@x.com", Token: "token-old"}
	added := schema.Recipient{Email: "new@x.com", Token: "token-new"}

	ts.store.EXPECT().
		PublishForm(formID, []string{"old@x.com", "new@x.com"}, gomock.Any()).
		Return(&store.PublishResult{
			Title:         "Feedback",
			AccessToken:   "owner-token",
			PublishedURL:  "http://localhost:3000/forms/" + formID.Hex(),
			Recipients:    []schema.Recipient{existing, added},
			NewRecipients: []schema.Recipient{added},
		}, nil)

	ts.mailer.EXPECT().
		SendInvitation(gomock.Any(), "new@x.com", "Feedback", gomock.Any(), "token-new").
		Return(nil)

	w := ts.do(t, "POST", "/forms/"+formID.Hex()+"/publish", map[string]interface{}{
		"emails": []string{"old@x.com", "new@x.com"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, formID.Hex(), body["formId"])
	assert.Contains(t, body["ownerAccessLink"], "owner-token")

	recipients, ok := body["recipients"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, recipients, 2)

	first := recipients[0].(map[string]interface{})
	assert.Equal(t, "old@x.com", first["email"])
	assert.Contains(t, first["link"], "token-old")
	assert.Contains(t, first["link"], formID.Hex())
}

// TestPublishFormMailerFailureStillSucceeds: notification is best effort,
// a dead mail transport must not fail the publish.
func TestPublishFormMailerFailureStillSucceeds(t *testing.T) {
	ts, ctrl := newTestServer(t)
	defer ctrl.Finish()

	formID := primitive.NewObjectID()
	added := schema.Recipient{Email: "u@x.com", Token: "tok"}

	ts.store.EXPECT().
		PublishForm(formID, []string{"u@x.com"}, gomock.Any()).
		Return(&store.PublishResult{
			Title:         "Feedback",
			AccessToken:   "owner-token",
			Recipients:    []schema.Recipient{added},
			NewRecipients: []schema.Recipient{added},
		}, nil)

	ts.mailer.EXPECT().
		SendInvitation(gomock.Any(), "u@x.com", "Feedback", gomock.Any(), "tok").
		Return(assert.AnError)

	w := ts.do(t, "POST", "/forms/"+formID.Hex()+"/publish", map[string]interface{}{
		"emails": []string{"u@x.com"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublishFormNormalizesEmails(t *testing.T) {
	ts, ctrl := newTestServer(t)
	defer ctrl.Finish()

	formID := primitive.NewObjectID()
	ts.store.EXPECT().
		PublishForm(formID, []string{"u@test.com"}, gomock.Any()).
		Return(&store.PublishResult{AccessToken: "tok"}, nil)

	w := ts.do(t, "POST", "/forms/"+formID.Hex()+"/publish", map[string]interface{}{
		"emails": []string{" U@Test.COM "},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
