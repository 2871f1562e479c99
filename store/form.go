package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tanishksoam/speakhire/schema"
)

type Form interface {
	CreateForm(title, description string, fields []schema.Field, isTemplate bool) (string, error)
	GetForm(formID primitive.ObjectID) (*schema.Form, error)
	GetPublicForm(formID primitive.ObjectID) (*schema.Form, error)
	GetFormByAccessToken(formID primitive.ObjectID, accessToken string) (*schema.Form, error)
	ListTemplates() ([]schema.Form, error)
}

// CreateForm adds a new form document and returns its id. Field
// definitions are validated here so malformed fields never persist.
func (m *mongoDB) CreateForm(title, description string, fields []schema.Field, isTemplate bool) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := schema.ValidateFields(fields); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidFields, err)
	}

	now := time.Now().UTC()
	form := schema.Form{
		Title:       title,
		Description: description,
		Fields:      fields,
		Recipients:  []schema.Recipient{},
		Responses:   []schema.Response{},
		IsTemplate:  isTemplate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	c := m.client.Database(m.database).Collection(schema.FormCollection)
	r, err := c.InsertOne(ctx, &form)
	if err != nil {
		return "", err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if ok {
		return id.Hex(), nil
	}
	return "", fmt.Errorf("incorrect inserted id")
}

// GetForm fetches the full form document, tokens and responses included.
// Callers other than the admin path must project before returning it.
func (m *mongoDB) GetForm(formID primitive.ObjectID) (*schema.Form, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FormCollection)

	var form schema.Form
	if err := c.FindOne(ctx, bson.M{"_id": formID}).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	return &form, nil
}

// GetPublicForm fetches the public projection of a form. The access token,
// recipient list and response list never leave the database on this path.
func (m *mongoDB) GetPublicForm(formID primitive.ObjectID) (*schema.Form, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FormCollection)

	var form schema.Form
	if err := c.FindOne(ctx, bson.M{"_id": formID}, options.FindOne().SetProjection(bson.M{
		"access_token": 0,
		"recipients":   0,
		"responses":    0,
	})).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	return &form, nil
}

// GetFormByAccessToken fetches the full form iff accessToken matches the
// owner token exactly.
func (m *mongoDB) GetFormByAccessToken(formID primitive.ObjectID, accessToken string) (*schema.Form, error) {
	form, err := m.GetForm(formID)
	if err != nil {
		return nil, err
	}

	if form.AccessToken == "" || form.AccessToken != accessToken {
		return nil, ErrInvalidAccessToken
	}

	return form, nil
}

// ListTemplates returns all template forms in their public projection.
func (m *mongoDB) ListTemplates() ([]schema.Form, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FormCollection)

	cursor, err := c.Find(ctx, bson.M{"is_template": true}, options.Find().SetProjection(bson.M{
		"access_token": 0,
		"recipients":   0,
		"responses":    0,
	}))
	if err != nil {
		return nil, err
	}

	templates := make([]schema.Form, 0)
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}

	return templates, nil
}
