package controllers

import (
	"github.com/gin-gonic/gin"

	"bukutamu/internal/services"
	"bukutamu/pkg/utils"
)

// VisitsController serves the two read-only reception dashboard projections.
type VisitsController struct {
	scheduleService services.ScheduleServiceInterface
	historyService  services.HistoryServiceInterface
}

func NewVisitsController(
	scheduleService services.ScheduleServiceInterface,
	historyService services.HistoryServiceInterface) *VisitsController {
	return &VisitsController{
		scheduleService: scheduleService,
		historyService:  historyService,
	}
}

// Schedule godoc
// @Summary Pending visitors
// @Description Guests registered in the last 30 days who have not checked in yet
// @Tags Visits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /schedule [get]
func (v *VisitsController) Schedule(c *gin.Context) {
	schedule, err := v.scheduleService.GetSchedule(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"schedule": schedule, "total": len(schedule)}, "")
}

// History godoc
// @Summary Reception activity log
// @Description The last 100 reception log entries joined with their guests
// @Tags Visits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /history [get]
func (v *VisitsController) History(c *gin.Context) {
	history, err := v.historyService.GetHistory(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"history": history, "total": len(history)}, "")
}
