package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/photoclash/internal/api/middleware"
	"github.com/d60-Lab/photoclash/internal/service"
	"github.com/d60-Lab/photoclash/pkg/response"
)

type publishPhotoRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	PhotoURL   string `json:"photo_url" binding:"required,url"`
	Caption    string `json:"caption"`
}

// PublishPhoto 发布照片
// @Summary 发布照片到分类
// @Tags 照片
// @Accept json
// @Produce json
// @Param request body publishPhotoRequest true "照片信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/photos [post]
func (h *Handler) PublishPhoto(c *gin.Context) {
	var req publishPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	userID := c.GetString(middleware.ContextUserID)
	p, err := h.photoSvc.Publish(c.Request.Context(), userID, req.CategoryID, req.PhotoURL, req.Caption)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) || errors.Is(err, service.ErrCategoryInactive) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, p)
}

// ListPhotos 按分类浏览照片
// @Summary 分类照片列表
// @Tags 照片
// @Param category_id query string true "分类ID"
// @Param sort query string false "排序 recent/trending" default(recent)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/photos [get]
func (h *Handler) ListPhotos(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		response.BadRequest(c, "missing category_id")
		return
	}
	sortBy := c.DefaultQuery("sort", "recent")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	photos, err := h.photoSvc.ListByCategory(c.Request.Context(), categoryID, sortBy, page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": photos})
}
