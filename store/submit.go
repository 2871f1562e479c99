package store

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tanishksoam/speakhire/schema"
)

type Submit interface {
	VerifyRecipientToken(formID primitive.ObjectID, email, token string) (*schema.Form, error)
	SubmitResponse(formID primitive.ObjectID, email, token string, answers map[string]interface{}) (*schema.Response, error)
}

// VerifyRecipientToken checks an (email, token) pair against a form's
// recipient set. It is a pure read and never flips the used flag. Tokens
// compare exactly, no normalization.
func (m *mongoDB) VerifyRecipientToken(formID primitive.ObjectID, email, token string) (*schema.Form, error) {
	form, err := m.GetForm(formID)
	if err != nil {
		return nil, err
	}

	recipient := form.FindRecipient(strings.ToLower(strings.TrimSpace(email)), token)
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}
	if recipient.Used {
		return nil, ErrTokenAlreadyUsed
	}

	return form, nil
}

// SubmitResponse records a submission and consumes the recipient's token.
//
// The used flip and the response append run as one conditional UpdateOne:
// the filter matches the recipient only while used is still false, and the
// update both sets the flag and pushes the response. Concurrent submits
// against the same token therefore serialize on the document. Exactly one
// matches, and losers are classified below against the committed state. A
// reader can never observe one effect without the other.
func (m *mongoDB) SubmitResponse(formID primitive.ObjectID, email, token string, answers map[string]interface{}) (*schema.Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))

	response := schema.Response{
		Email:       email,
		Answers:     answers,
		SubmittedAt: time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.FormCollection)

	r, err := c.UpdateOne(ctx, bson.M{
		"_id": formID,
		"recipients": bson.M{
			"$elemMatch": bson.M{
				"email": email,
				"token": token,
				"used":  false,
			},
		},
	}, bson.M{
		"$set": bson.M{
			"recipients.$.used": true,
			"updated_at":        response.SubmittedAt,
		},
		"$push": bson.M{"responses": response},
	})
	if err != nil {
		return nil, err
	}

	if r.ModifiedCount == 1 {
		return &response, nil
	}

	// The conditional update missed. Re-read only to tell the caller why.
	var form schema.Form
	if err := c.FindOne(ctx, bson.M{"_id": formID}).Decode(&form); err != nil {
		return nil, wrapNotFound(err)
	}

	recipient := form.FindRecipient(email, token)
	if recipient == nil {
		return nil, ErrRecipientNotFound
	}
	if recipient.Used {
		return nil, ErrTokenAlreadyUsed
	}

	return nil, ErrRecipientNotFound
}
