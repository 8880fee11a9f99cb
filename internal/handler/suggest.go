package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/estate-ads/internal/service"
)

// SuggestionHandler relays location-suggestion queries to the external
// provider.
type SuggestionHandler struct {
	Suggestions *service.SuggestionClient
}

func NewSuggestionHandler(s *service.SuggestionClient) *SuggestionHandler {
	return &SuggestionHandler{Suggestions: s}
}

type suggestionReq struct {
	Input string `json:"input"`
}

// GetLocationSuggestions validates the input and returns the provider's
// JSON body unmodified. No outbound call happens for an empty input.
func (h *SuggestionHandler) GetLocationSuggestions(c echo.Context) error {
	var req suggestionReq
	if err := c.Bind(&req); err != nil || req.Input == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  "error",
			"message": "Input parameter is required",
		})
	}

	body, err := h.Suggestions.Fetch(c.Request().Context(), req.Input)
	if err != nil {
		log.Printf("getLocationSuggestions: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  "error",
			"message": "Failed to fetch location suggestions",
		})
	}
	return c.JSONBlob(http.StatusOK, body)
}
