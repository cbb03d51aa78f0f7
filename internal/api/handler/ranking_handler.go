package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/d60-Lab/photoclash/internal/model"
	"github.com/d60-Lab/photoclash/internal/service"
	"github.com/d60-Lab/photoclash/pkg/response"
)

// GetLeaderboard 查询分类的本周排行榜
// @Summary 本周排行榜
// @Tags 排行
// @Param category_id query string true "分类ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/leaderboard [get]
func (h *Handler) GetLeaderboard(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		response.BadRequest(c, "missing category_id")
		return
	}
	now := time.Now()
	weekStart, _ := service.WeekWindow(now)

	rows, err := h.rankCache.GetLeaderboard(c.Request.Context(), categoryID, weekStart,
		func(ctx context.Context) ([]*model.WeeklyLeaderboard, error) {
			return h.lbSvc.GetCurrentWeek(ctx, categoryID, now)
		})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, rows)
}

// GetHallOfFame 查询分类的月度名人堂
// @Summary 月度名人堂
// @Tags 排行
// @Param category_id query string true "分类ID"
// @Param month query string false "YYYY-MM，缺省为当月"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/hall-of-fame [get]
func (h *Handler) GetHallOfFame(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		response.BadRequest(c, "missing category_id")
		return
	}
	monthYear := c.Query("month")
	if monthYear == "" {
		_, _, monthYear = service.MonthWindow(time.Now())
	}

	rows, err := h.rankCache.GetHallOfFame(c.Request.Context(), categoryID, monthYear,
		func(ctx context.Context) ([]*model.HallOfFameEntry, error) {
			return h.hofSvc.GetMonth(ctx, categoryID, monthYear)
		})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, rows)
}

// ListCategories 分类列表
// @Summary 分类列表
// @Tags 分类
// @Param active query bool false "只看 active"
// @Success 200 {object} response.Response
// @Router /api/v1/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	list, err := h.categoryRepo.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, list)
}

// GetProfile 个人页：用户信息 + 照片 + 战绩徽章
// @Summary 个人页
// @Tags 用户
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/profile/{user_id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.profileSvc.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, p)
}
