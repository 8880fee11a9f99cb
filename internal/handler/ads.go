package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/estate-ads/internal/model"
	"github.com/iliyamo/estate-ads/internal/queue"
	"github.com/iliyamo/estate-ads/internal/repository"
	"github.com/iliyamo/estate-ads/internal/service"
)

// AdHandler serves the listing endpoints. Publish emits the ad.created
// event after a successful save; it defaults to the RabbitMQ publisher
// and may be nil (tests, broker-less deployments) to skip publishing.
type AdHandler struct {
	Ads     *repository.AdRepo
	Publish func(ctx context.Context, event queue.AdCreatedEvent) error
}

func NewAdHandler(ads *repository.AdRepo) *AdHandler {
	return &AdHandler{Ads: ads, Publish: service.PublishAdCreated}
}

type saveAdReq struct {
	Payload model.AdPayload `json:"payload"`
}

// GetAllAds returns every ad with its location nested, newest first.
func (h *AdHandler) GetAllAds(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ads, err := h.Ads.ListAll(ctx)
	if err != nil {
		log.Printf("getAllAds: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error fetching ads"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"ads":     ads,
	})
}

// SaveAd validates the payload, then runs the transactional write path:
// resolve-or-create the location, insert the ad, read back the assigned
// timestamp. Each stage failure maps to its own generic message; detail
// is logged server-side only.
func (h *AdHandler) SaveAd(c echo.Context) error {
	var req saveAdReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := req.Payload.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Ads.Create(ctx, &req.Payload)
	if err != nil {
		log.Printf("saveAdInDB: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": saveErrMessage(err)})
	}

	if h.Publish != nil {
		evt := queue.AdCreatedEvent{
			AdID:       res.AdID,
			LocationID: res.LocationID,
			PlaceID:    req.Payload.PlaceID,
			Title:      req.Payload.Title,
			AdType:     req.Payload.AdType,
			Price:      req.Payload.Price,
			CreatedAt:  res.CreatedAt,
		}
		// Fire and forget: the ad is committed, a lost event is acceptable.
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pubCancel()
			_ = h.Publish(pubCtx, evt)
		}()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    "Ad created successfully",
		"adId":       res.AdID,
		"locationId": res.LocationID,
		"createdAt":  res.CreatedAt,
	})
}

// saveErrMessage maps a write-path stage error to its client message.
func saveErrMessage(err error) string {
	switch {
	case errors.Is(err, repository.ErrLocationLookup):
		return "Error checking location"
	case errors.Is(err, repository.ErrLocationInsert):
		return "Error inserting location"
	case errors.Is(err, repository.ErrAdInsert):
		return "Error inserting ad"
	case errors.Is(err, repository.ErrTimestampRead):
		return "Error retrieving timestamp"
	default:
		return "Server error"
	}
}
