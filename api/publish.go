package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tanishksoam/speakhire/schema"
	"github.com/Tanishksoam/speakhire/store"
)

type publishParams struct {
	Emails []string `json:"emails"`
}

type publishedRecipient struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

// publishForm issues tokens for a form and invites the recipients.
//
// The call is idempotent for already-invited addresses: they keep their
// token and are not notified again. Notification failures are logged and
// swallowed. Token issuance is persisted regardless of deliverability.
func (s *Server) publishForm(c *gin.Context) {
	formID, err := primitive.ObjectIDFromHex(c.Param("formID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid form ID"))
		return
	}

	var params publishParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if len(params.Emails) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyRecipientList)
		return
	}

	emails := make([]string, 0, len(params.Emails))
	for _, email := range params.Emails {
		email = normalizeEmail(email)
		if !isValidEmail(email) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidEmail, fmt.Errorf("invalid email address: %s", email))
			return
		}
		emails = append(emails, email)
	}

	result, err := s.mongoStore.PublishForm(formID, emails, s.formLink(formID))
	if err != nil {
		switch err {
		case store.ErrFormNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorFormNotFound)
		case store.ErrEmptyRecipientList:
			abortWithEncoding(c, http.StatusBadRequest, errorEmptyRecipientList)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.notifyRecipients(c, result.Title, formID, result.NewRecipients)

	recipients := make([]publishedRecipient, 0, len(result.Recipients))
	for _, r := range result.Recipients {
		recipients = append(recipients, publishedRecipient{
			Email: r.Email,
			Link:  s.recipientLink(formID, r.Email, r.Token),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"formId":          formID.Hex(),
		"ownerAccessLink": s.adminLink(formID, result.AccessToken),
		"publishedUrl":    result.PublishedURL,
		"recipients":      recipients,
	})
}

// notifyRecipients sends the invitation mail to every newly added
// recipient. Best effort only.
func (s *Server) notifyRecipients(c *gin.Context, title string, formID primitive.ObjectID, recipients []schema.Recipient) {
	for _, r := range recipients {
		link := s.recipientLink(formID, r.Email, r.Token)
		if err := s.mailer.SendInvitation(c.Request.Context(), r.Email, title, link, r.Token); err != nil {
			log.WithField("email", r.Email).WithError(err).Error("fail to send invitation email")
		}
	}
}

// formLink is the published URL of a form, derived from its id only.
func (s *Server) formLink(formID primitive.ObjectID) string {
	return fmt.Sprintf("%s/forms/%s", s.baseURL, formID.Hex())
}

func (s *Server) recipientLink(formID primitive.ObjectID, email, token string) string {
	return fmt.Sprintf("%s/forms/%s?%s", s.baseURL, formID.Hex(), url.Values{
		"email": []string{email},
		"token": []string{token},
	}.Encode())
}

func (s *Server) adminLink(formID primitive.ObjectID, accessToken string) string {
	return fmt.Sprintf("%s/forms/%s/admin?%s", s.baseURL, formID.Hex(), url.Values{
		"token": []string{accessToken},
	}.Encode())
}
