package controllers

import (
	"net/http"

	"github.com/Someya222/yoga-backend/services"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	suggestions *services.SuggestionService
	dataset     *services.DatasetService
}

func NewSuggestionController(suggestions *services.SuggestionService, dataset *services.DatasetService) *SuggestionController {
	return &SuggestionController{suggestions: suggestions, dataset: dataset}
}

type GenerateInput struct {
	Goal string `json:"goal" binding:"required"`
}

// Generate relays the upstream model's text untouched under "poses". It is
// expected to be a raw JSON array of 3 poses but clients must parse and
// validate it themselves.
func (sc *SuggestionController) Generate(c *gin.Context) {
	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poses, err := sc.suggestions.Suggest(c.Request.Context(), input.Goal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "AI request failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"poses": poses})
}

func (sc *SuggestionController) GetDataset(c *gin.Context) {
	body, err := sc.dataset.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
