package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/photoclash/pkg/response"
)

// 定时任务入口：外部调度器按周期触发，全部幂等，重复/重叠触发安全。
// 内部错误只回兜底状态，细节进日志（由 response.InternalError 保证）。

// ArchiveCategories 归档到期的 weekly 分类
// @Summary 归档到期分类
// @Tags 定时任务
// @Security CronSecret
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/cron/archive-categories [get]
func (h *Handler) ArchiveCategories(c *gin.Context) {
	archived, err := h.archiveSvc.ArchiveExpired(c.Request.Context(), time.Now())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"archived": archived, "success": true})
}

// CalculateHallOfFame 计算当月名人堂
// @Summary 计算月度名人堂
// @Tags 定时任务
// @Security CronSecret
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/cron/calculate-hall-of-fame [get]
func (h *Handler) CalculateHallOfFame(c *gin.Context) {
	res, err := h.hofSvc.CalculateMonth(c.Request.Context(), time.Now())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"month_year": res.MonthYear, "entries_added": res.EntriesAdded, "success": true})
}

// CalculateLeaderboards 对全部 active 分类计算本周排行榜
// @Summary 计算周排行榜
// @Tags 定时任务
// @Security CronSecret
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/cron/calculate-leaderboards [get]
func (h *Handler) CalculateLeaderboards(c *gin.Context) {
	categories, rows, err := h.lbSvc.CalculateAll(c.Request.Context(), time.Now())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"categories": categories, "rows": rows, "success": true})
}
