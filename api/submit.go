package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tanishksoam/speakhire/store"
)

type submitParams struct {
	Email    string                 `json:"email"`
	Token    string                 `json:"token"`
	Response map[string]interface{} `json:"response"`
}

// submitResponse records a recipient's submission and consumes their
// token. Submitted values are stored as sent; required/bounds/pattern
// rules are advisory and enforced only by the builder preview. A reused
// token answers with the distinct already-used message so clients can show
// "already submitted" instead of a generic failure.
func (s *Server) submitResponse(c *gin.Context) {
	formID, err := primitive.ObjectIDFromHex(c.Param("formID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid form ID"))
		return
	}

	var params submitParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Email == "" || params.Token == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("email and token are required"))
		return
	}

	response, err := s.mongoStore.SubmitResponse(formID, params.Email, params.Token, params.Response)
	if err != nil {
		switch err {
		case store.ErrFormNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorFormNotFound)
		case store.ErrTokenAlreadyUsed:
			abortWithEncoding(c, http.StatusForbidden, errorTokenAlreadyUsed)
		case store.ErrRecipientNotFound:
			abortWithEncoding(c, http.StatusForbidden, errorInvalidToken)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	// Acknowledge by mail, best effort. The submission is already durable.
	if form, err := s.mongoStore.GetPublicForm(formID); err == nil {
		if err := s.mailer.SendAcknowledgement(c.Request.Context(), response.Email, form.Title); err != nil {
			log.WithField("email", response.Email).WithError(err).Error("fail to send acknowledgement email")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
