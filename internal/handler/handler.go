package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ReadySetJoe/branch-out/docs"
	"github.com/ReadySetJoe/branch-out/internal/dto"
	"github.com/ReadySetJoe/branch-out/internal/geocode"
	"github.com/ReadySetJoe/branch-out/internal/service"
)

// Geocoder resolves a free-text location query to candidate places.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]geocode.Place, error)
}

type Handler struct {
	discoveryService service.DiscoveryServicer
	geocoder         Geocoder
	router           *gin.Engine
	log              *zap.Logger
}

func NewHandler(discoveryService service.DiscoveryServicer, geocoder Geocoder, log *zap.Logger) *Handler {
	h := &Handler{
		discoveryService: discoveryService,
		geocoder:         geocoder,
		router:           gin.Default(),
		log:              log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/discover", h.startDiscovery)
	h.router.GET("/discover/:id", h.getStatus)
	h.router.GET("/discover/:id/events", h.getEvents)
	h.router.POST("/discover/:id/playlist", h.createPlaylist)
	h.router.GET("/geocode", h.searchPlaces)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// startDiscovery handles POST /discover
// @Summary Start a discovery run
// @Description Start scanning for nearby events matching the listener's artists
// @Tags discovery
// @Accept json
// @Produce json
// @Param query body dto.DiscoverRequest true "Search area"
// @Success 202 {object} dto.DiscoverResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discover [post]
func (h *Handler) startDiscovery(c *gin.Context) {
	var req dto.DiscoverRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid discover request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	response, err := h.discoveryService.StartDiscovery(&req)
	if err != nil {
		// Bad coordinates or malformed dates are the only failure modes here.
		h.log.Warn("Rejected discover request",
			zap.Error(err),
			zap.Float64("lat", req.Lat),
			zap.Float64("lng", req.Lng))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Discovery started",
		zap.String("session_id", response.SessionID))

	c.JSON(http.StatusAccepted, response)
}

// getStatus handles GET /discover/:id
// @Summary Get discovery status
// @Description Report the lifecycle state and scan progress of a discovery session
// @Tags discovery
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /discover/{id} [get]
func (h *Handler) getStatus(c *gin.Context) {
	response, err := h.discoveryService.Status(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// getEvents handles GET /discover/:id/events
// @Summary Get matched events
// @Description Retrieve the filtered, sorted, paginated result window of a finished session
// @Tags discovery
// @Produce json
// @Param id path string true "Session ID"
// @Param date_from query string false "Earliest event date (YYYY-MM-DD)" example:"2026-09-01"
// @Param date_to query string false "Latest event date (YYYY-MM-DD)" example:"2026-12-31"
// @Param price_min query number false "Minimum ticket price"
// @Param price_max query number false "Maximum ticket price"
// @Param genres query []string false "Genre terms (case-insensitive substring)"
// @Param venues query []string false "Venue terms (case-insensitive substring)"
// @Param sort query string false "Sort key" Enums(date, match, price, name)
// @Param page query int false "Zero-based page index"
// @Success 200 {object} dto.EventsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /discover/{id}/events [get]
func (h *Handler) getEvents(c *gin.Context) {
	var req dto.EventsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid events request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	sessionID := c.Param("id")
	response, err := h.discoveryService.Events(sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		case errors.Is(err, service.ErrScanInProgress):
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Error:   "scan_in_progress",
				Message: err.Error(),
			})
		default:
			h.log.Error("Failed to get events",
				zap.Error(err),
				zap.String("session_id", sessionID))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "internal_error",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// createPlaylist handles POST /discover/:id/playlist
// @Summary Create a playlist from matched artists
// @Description Build a playlist with one top track per matched artist, in discovery order
// @Tags discovery
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} dto.PlaylistResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discover/{id}/playlist [post]
func (h *Handler) createPlaylist(c *gin.Context) {
	sessionID := c.Param("id")

	response, err := h.discoveryService.CreatePlaylist(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
		case errors.Is(err, service.ErrScanInProgress):
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Error:   "scan_in_progress",
				Message: err.Error(),
			})
		case errors.Is(err, service.ErrNoMatches):
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Error:   "no_matches",
				Message: err.Error(),
			})
		default:
			h.log.Error("Failed to create playlist",
				zap.Error(err),
				zap.String("session_id", sessionID))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "internal_error",
				Message: err.Error(),
			})
		}
		return
	}

	h.log.Info("Playlist created",
		zap.String("session_id", sessionID),
		zap.String("playlist_id", response.ID))

	c.JSON(http.StatusCreated, response)
}

// searchPlaces handles GET /geocode
// @Summary Search for a place
// @Description Resolve a free-text location query to candidate coordinates
// @Tags geocode
// @Produce json
// @Param q query string true "Location query" example:"Austin, TX"
// @Success 200 {object} dto.GeocodeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /geocode [get]
func (h *Handler) searchPlaces(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "q is required",
		})
		return
	}

	places, err := h.geocoder.Search(c.Request.Context(), query)
	if err != nil {
		h.log.Error("Failed to geocode query",
			zap.Error(err),
			zap.String("query", query))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	response := dto.GeocodeResponse{Places: make([]dto.PlaceData, 0, len(places))}
	for _, p := range places {
		response.Places = append(response.Places, dto.PlaceData{Name: p.Name, Lat: p.Lat, Lng: p.Lng})
	}

	c.JSON(http.StatusOK, response)
}
