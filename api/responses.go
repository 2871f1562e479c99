package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tanishksoam/speakhire/store"
)

// getResponses returns all stored responses of a form to its owner. The
// query token must equal the form's access token exactly.
func (s *Server) getResponses(c *gin.Context) {
	formID, err := primitive.ObjectIDFromHex(c.Param("formID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid form ID"))
		return
	}

	var params struct {
		Token string `form:"token"`
	}
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	form, err := s.mongoStore.GetFormByAccessToken(formID, params.Token)
	if err != nil {
		switch err {
		case store.ErrFormNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorFormNotFound)
		case store.ErrInvalidAccessToken:
			abortWithEncoding(c, http.StatusForbidden, errorInvalidAccessToken)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"responses":      form.Responses,
		"recipientCount": len(form.Recipients),
		"responseCount":  len(form.Responses),
	})
}
