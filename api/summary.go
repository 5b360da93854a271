package api

import (
	"errors"
	"log"

	"wellness/database"
	"wellness/history"
	"wellness/middleware"
	"wellness/models"
	"wellness/risk"
	"wellness/service"

	"github.com/gin-gonic/gin"
)

// HistorySummaryResponse 历史汇总
type HistorySummaryResponse struct {
	Count        int     `json:"count" example:"5"`
	AverageScore float64 `json:"average_score" example:"68.4"`
	BestScore    int     `json:"best_score" example:"82"`
	WorstScore   int     `json:"worst_score" example:"51"`
	LatestScore  int     `json:"latest_score" example:"74"`
	TotalWorkout int     `json:"total_workout_minutes" example:"150"`
	DaysMetGoal  int     `json:"days_met_workout_goal" example:"3"`
	WorkoutGoal  int     `json:"workout_goal_minutes" example:"30"`
}

// summarize 统计历史记录
func summarize(entries []history.Entry, goal int) HistorySummaryResponse {
	s := HistorySummaryResponse{Count: len(entries), WorkoutGoal: goal}
	if len(entries) == 0 {
		return s
	}
	s.BestScore = entries[0].Score
	s.WorstScore = entries[0].Score
	total := 0
	for _, e := range entries {
		total += e.Score
		if e.Score > s.BestScore {
			s.BestScore = e.Score
		}
		if e.Score < s.WorstScore {
			s.WorstScore = e.Score
		}
		s.TotalWorkout += e.WorkoutMinutes
		if e.WorkoutMinutes >= goal {
			s.DaysMetGoal++
		}
	}
	s.AverageScore = float64(total) / float64(len(entries))
	s.LatestScore = entries[len(entries)-1].Score
	return s
}

// Summary 获取历史汇总
// @Summary 获取历史汇总
// @Description 统计当前会话历史的平均/最高/最低总分与运动达标次数
// @Tags 健康评估
// @Produce json
// @Success 200 {object} Response{data=HistorySummaryResponse} "获取成功"
// @Router /api/v1/wellness/summary [get]
func (h *WellnessHandler) Summary(c *gin.Context) {
	entries := h.store.Entries(middleware.GetSessionKey(c))
	Success(c, summarize(entries, risk.ExerciseGoalMinutes))
}

// EmailSummary 发送历史汇总邮件
// @Summary 发送历史汇总邮件
// @Description 把当前用户最近的分析记录汇总发送到账号邮箱
// @Tags 健康评估
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "未设置邮箱或暂无历史"
// @Failure 401 {object} Response "未授权"
// @Failure 503 {object} Response "邮件服务未启用"
// @Router /api/v1/wellness/history/email [post]
func (h *WellnessHandler) EmailSummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}
	if user.Email == "" {
		BadRequest(c, "账号未设置邮箱")
		return
	}

	entries := h.store.Entries(middleware.UserSessionKey(userID))
	if len(entries) == 0 {
		BadRequest(c, "暂无历史记录")
		return
	}

	if err := h.mailer.SendWeeklySummary(user.Email, user.Username, entries); err != nil {
		if errors.Is(err, service.ErrEmailDisabled) {
			ServiceUnavailable(c, "邮件服务未启用")
			return
		}
		log.Printf("发送汇总邮件失败: user=%d err=%v", userID, err)
		InternalError(c, SafeErrorMessage(err, "发送邮件失败"))
		return
	}

	SuccessWithMessage(c, "汇总邮件已发送", nil)
}
