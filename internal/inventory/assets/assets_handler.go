package assets

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/gin-gonic/gin"
)

type AssetsHandler struct {
	service Service
}

func NewAssetsHandler(service Service) *AssetsHandler {
	return &AssetsHandler{service: service}
}

func (h *AssetsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/assets", h.GetAssetList)
	router.GET("/assets/:id", h.GetAsset)
	router.POST("/assets", h.CreateAsset)
	router.PUT("/assets/:id", h.UpdateAsset)
}

func (h *AssetsHandler) GetAssetList(c *gin.Context) {
	assets, err := h.service.GetAssetList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *AssetsHandler) GetAsset(c *gin.Context) {
	assetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	asset, err := h.service.GetAsset(assetID)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find asset"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetsHandler) CreateAsset(c *gin.Context) {
	var req models.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	result, err := h.service.CreateAsset(req)
	if err != nil {
		h.abortOnWriteError(c, err, "Failed to create asset")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *AssetsHandler) UpdateAsset(c *gin.Context) {
	assetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID"})
		return
	}

	var req models.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	asset, err := h.service.UpdateAsset(assetID, req)
	if err != nil {
		h.abortOnWriteError(c, err, "Failed to update asset")
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetsHandler) abortOnWriteError(c *gin.Context, err error, fallback string) {
	switch e := err.(type) {
	case *custom_error.ValidationError:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	case *custom_error.UniqueViolationError:
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Asset conflicts with an existing record", "details": e.Error()})
	case *custom_error.ForeignKeyViolationError:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Asset references a missing record", "details": e.Error()})
	case *custom_error.PartialWriteError:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Asset and assignment writes did not complete together", "details": e.Error()})
	default:
		if errors.Is(err, ErrAssetNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unable to find asset"})
			return
		}
		if errors.Is(err, ErrEmployeeNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unable to find assignee"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
