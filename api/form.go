package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tanishksoam/speakhire/schema"
	"github.com/Tanishksoam/speakhire/store"
)

type createFormParams struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Fields      []schema.Field `json:"fields"`
}

// createForm is an api to add a new form
func (s *Server) createForm(c *gin.Context) {
	s.createFormWithTemplateFlag(c, false)
}

// createTemplate is an api to add a new world-readable template form
func (s *Server) createTemplate(c *gin.Context) {
	s.createFormWithTemplateFlag(c, true)
}

func (s *Server) createFormWithTemplateFlag(c *gin.Context, isTemplate bool) {
	var params createFormParams

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	id, err := s.mongoStore.CreateForm(params.Title, params.Description, params.Fields, isTemplate)
	if err != nil {
		if errors.Is(err, store.ErrInvalidFields) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidFields, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"formId": id,
	})
}

// getForm returns the public projection of a form: title, description and
// fields only. Tokens, the recipient set and stored responses stay out.
func (s *Server) getForm(c *gin.Context) {
	formID, err := primitive.ObjectIDFromHex(c.Param("formID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("invalid form ID"))
		return
	}

	form, err := s.mongoStore.GetPublicForm(formID)
	if err != nil {
		switch err {
		case store.ErrFormNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorFormNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          form.ID.Hex(),
		"title":       form.Title,
		"description": form.Description,
		"fields":      form.Fields,
	})
}

// listTemplates returns all template forms in their public projection.
func (s *Server) listTemplates(c *gin.Context) {
	templates, err := s.mongoStore.ListTemplates()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"templates": templates,
	})
}
