package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/d60-Lab/photoclash/internal/api/middleware"
	"github.com/d60-Lab/photoclash/internal/service"
	"github.com/d60-Lab/photoclash/pkg/response"
)

type voteRequest struct {
	PhotoID  string `json:"photo_id" binding:"required"`
	VoteType string `json:"vote_type" binding:"required,oneof=like dislike"`
}

// SubmitVote 投票（同一人重复投票为改票）
// @Summary 给照片投票
// @Tags 投票
// @Accept json
// @Produce json
// @Param request body voteRequest true "投票信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/votes [post]
func (h *Handler) SubmitVote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	userID := c.GetString(middleware.ContextUserID)

	tally, err := h.scoreSvc.SubmitVote(c.Request.Context(), req.PhotoID, userID, req.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVoteType):
			response.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFound(c, "photo not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, tally)
}
