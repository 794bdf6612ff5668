package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "copydesk/internal/adapter/http/dto/request"
	response "copydesk/internal/adapter/http/dto/response"
	"copydesk/internal/usecase"
	"copydesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVersionPayload = pkg.NewDomainErrorSimple("INVALID_VERSION_INPUT", "Invalid version payload", http.StatusBadRequest)
	errInvalidVersionNumber  = pkg.NewDomainErrorSimple("INVALID_VERSION_NUMBER", "Invalid version number", http.StatusBadRequest)
)

// VersionHandler handles HTTP requests for the content version store.

type VersionHandler struct {
	usecase usecase.IVersionUseCase
}

func NewVersionHandler(uc usecase.IVersionUseCase) *VersionHandler {
	return &VersionHandler{usecase: uc}
}

// CreateVersion appends a draft; it never becomes active implicitly.
func (h *VersionHandler) CreateVersion(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.VersionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVersionPayload.HTTPStatus, errInvalidVersionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateVersion(c.Request.Context(), payload.ToInput(orderID))
	if err != nil {
		log.Printf("[version][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[version][handler] create success order_id=%s version=%d", orderID, created.Version)

	c.JSON(http.StatusCreated, response.FromVersion(created))
}

func (h *VersionHandler) ListVersions(c *gin.Context) {
	orderID := c.Param("order_id")

	versions, err := h.usecase.List(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[version][handler] list failed order_id=%s err=%v", orderID, err)
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVersions(versions))
}

// ActivateVersion flips the single active flag to the target version.
func (h *VersionHandler) ActivateVersion(c *gin.Context) {
	orderID := c.Param("order_id")
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil {
		c.JSON(errInvalidVersionNumber.HTTPStatus, errInvalidVersionNumber.ToHTTPError())
		return
	}

	activated, err := h.usecase.Activate(c.Request.Context(), orderID, version)
	if err != nil {
		log.Printf("[version][handler] activate failed order_id=%s version=%d err=%v", orderID, version, err)
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[version][handler] activate success order_id=%s version=%d", orderID, version)

	c.JSON(http.StatusOK, response.FromVersion(activated))
}

func (h *VersionHandler) GetActiveVersion(c *gin.Context) {
	orderID := c.Param("order_id")

	active, err := h.usecase.LatestActive(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[version][handler] get-active failed order_id=%s err=%v", orderID, err)
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVersion(active))
}

// CompareVersions returns the line diff between two versions of the order.
func (h *VersionHandler) CompareVersions(c *gin.Context) {
	orderID := c.Param("order_id")
	fromVersion, errFrom := strconv.Atoi(c.Query("from"))
	toVersion, errTo := strconv.Atoi(c.Query("to"))
	if errFrom != nil || errTo != nil {
		c.JSON(errInvalidVersionNumber.HTTPStatus, errInvalidVersionNumber.ToHTTPError())
		return
	}

	changes, err := h.usecase.Compare(c.Request.Context(), orderID, fromVersion, toVersion)
	if err != nil {
		log.Printf("[version][handler] compare failed order_id=%s from=%d to=%d err=%v", orderID, fromVersion, toVersion, err)
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVersionCompare(orderID, fromVersion, toVersion, changes))
}

func (h *VersionHandler) ExportVersion(c *gin.Context) {
	orderID := c.Param("order_id")
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil {
		c.JSON(errInvalidVersionNumber.HTTPStatus, errInvalidVersionNumber.ToHTTPError())
		return
	}

	data, contentType, err := h.usecase.Export(c.Request.Context(), orderID, version)
	if err != nil {
		log.Printf("[version][handler] export failed order_id=%s version=%d err=%v", orderID, version, err)
		appErr := mapVersionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

func mapVersionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidVersionInput), errors.Is(err, usecase.ErrInvalidQualityScore):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVersionNumber):
		return pkg.NewDomainErrorSimple("INVALID_VERSION_NUMBER", "Invalid version number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCrossOrderComparison):
		return pkg.NewDomainErrorSimple("CROSS_ORDER_COMPARISON", "Versions belong to different orders", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionNotFound):
		return pkg.NewDomainErrorSimple("VERSION_NOT_FOUND", "Content version not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActiveVersion):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_VERSION", "No active version", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExporterNotConfigured):
		return pkg.NewDomainErrorSimple("EXPORTER_NOT_CONFIGURED", "Version exporter not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
