package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tanishksoam/speakhire/store"
)

type verifyTokenParams struct {
	Email      string `json:"email"`
	Token      string `json:"token"`
	AdminToken string `json:"adminToken"`
}

// verifyToken checks access to a form before it is rendered. With an
// (email, token) pair it validates recipient access and answers with the
// form's fields; with adminToken it validates owner access and answers
// with the full form. It is a pure read and never consumes the token.
func (s *Server) verifyToken(c *gin.Context) {
	formID, err := primitive.ObjectIDFromHex(c.Param("formID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid form ID"))
		return
	}

	var params verifyTokenParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.AdminToken != "" {
		s.verifyAdminToken(c, formID, params.AdminToken)
		return
	}

	// Template forms shortcut the check entirely: they are public.
	if public, err := s.mongoStore.GetPublicForm(formID); err == nil && public.IsTemplate {
		c.JSON(http.StatusOK, gin.H{
			"valid":       true,
			"title":       public.Title,
			"description": public.Description,
			"fields":      public.Fields,
		})
		return
	}

	form, err := s.mongoStore.VerifyRecipientToken(formID, params.Email, params.Token)
	if err != nil {
		switch err {
		case store.ErrFormNotFound:
			c.JSON(http.StatusNotFound, gin.H{
				"valid":   false,
				"message": errorFormNotFound.Message,
			})
		case store.ErrTokenAlreadyUsed:
			c.JSON(http.StatusForbidden, gin.H{
				"valid":   false,
				"message": errorTokenAlreadyUsed.Message,
			})
		case store.ErrRecipientNotFound:
			c.JSON(http.StatusForbidden, gin.H{
				"valid":   false,
				"message": errorInvalidToken.Message,
			})
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":       true,
		"title":       form.Title,
		"description": form.Description,
		"fields":      form.Fields,
	})
}

func (s *Server) verifyAdminToken(c *gin.Context, formID primitive.ObjectID, adminToken string) {
	form, err := s.mongoStore.GetFormByAccessToken(formID, adminToken)
	if err != nil {
		switch err {
		case store.ErrFormNotFound:
			c.JSON(http.StatusNotFound, gin.H{
				"valid":   false,
				"message": errorFormNotFound.Message,
			})
		case store.ErrInvalidAccessToken:
			c.JSON(http.StatusForbidden, gin.H{
				"valid":   false,
				"message": errorInvalidAccessToken.Message,
			})
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":       true,
		"title":       form.Title,
		"description": form.Description,
		"fields":      form.Fields,
		"responses":   form.Responses,
	})
}
