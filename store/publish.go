package store

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tanishksoam/speakhire/schema"
)

type Publish interface {
	PublishForm(formID primitive.ObjectID, emails []string, publishedURL string) (*PublishResult, error)
}

// PublishResult reports the outcome of a publish call. NewRecipients holds
// only the recipients appended by this call; Recipients is the full set
// after the call, existing invitees included.
type PublishResult struct {
	Title         string
	AccessToken   string
	PublishedURL  string
	Recipients    []schema.Recipient
	NewRecipients []schema.Recipient
}

// PublishForm issues the owner access token if the form has none, appends a
// freshly tokened recipient for every email that is not already invited and
// marks the form published.
//
// Both writes are conditional single-document updates so concurrent
// publishes never mint a second owner token or a second token for the same
// email: the owner-token update is gated on the token being unset and each
// recipient append is gated on the email being absent from the set.
func (m *mongoDB) PublishForm(formID primitive.ObjectID, emails []string, publishedURL string) (*PublishResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if len(emails) == 0 {
		return nil, ErrEmptyRecipientList
	}

	c := m.client.Database(m.database).Collection(schema.FormCollection)

	var form schema.Form
	if err := c.FindOne(ctx, bson.M{"_id": formID}).Decode(&form); err != nil {
		return nil, wrapNotFound(err)
	}

	if form.AccessToken == "" {
		accessToken, err := newToken(accessTokenBytes)
		if err != nil {
			return nil, err
		}

		// Lost races leave ModifiedCount at zero; the winner's token is
		// picked up by the re-read below.
		if _, err := c.UpdateOne(ctx, bson.M{
			"_id": formID,
			"$or": bson.A{
				bson.M{"access_token": ""},
				bson.M{"access_token": bson.M{"$exists": false}},
			},
		}, bson.M{
			"$set": bson.M{
				"access_token":  accessToken,
				"published_url": publishedURL,
				"updated_at":    time.Now().UTC(),
			},
		}); err != nil {
			return nil, err
		}
	}

	newRecipients := make([]schema.Recipient, 0, len(emails))
	seen := map[string]struct{}{}
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}

		token, err := newToken(recipientTokenBytes)
		if err != nil {
			return nil, err
		}

		recipient := schema.Recipient{
			Email:     email,
			Token:     token,
			Used:      false,
			InvitedAt: time.Now().UTC(),
		}

		// The $ne guard and the $push run as one atomic document update,
		// so an email can win at most one of the concurrent appends. A
		// re-invite of an existing recipient, used or not, changes nothing.
		r, err := c.UpdateOne(ctx, bson.M{
			"_id":              formID,
			"recipients.email": bson.M{"$ne": email},
		}, bson.M{
			"$push": bson.M{"recipients": recipient},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
		if err != nil {
			return nil, err
		}

		if r.ModifiedCount == 1 {
			newRecipients = append(newRecipients, recipient)
		} else {
			log.WithFields(log.Fields{
				"prefix": "store",
				"form":   formID.Hex(),
				"email":  email,
			}).Info("email already invited, keeping existing token")
		}
	}

	// Re-read for the authoritative recipient set and owner token.
	if err := c.FindOne(ctx, bson.M{"_id": formID}).Decode(&form); err != nil {
		return nil, wrapNotFound(err)
	}

	return &PublishResult{
		Title:         form.Title,
		AccessToken:   form.AccessToken,
		PublishedURL:  form.PublishedURL,
		Recipients:    form.Recipients,
		NewRecipients: newRecipients,
	}, nil
}
