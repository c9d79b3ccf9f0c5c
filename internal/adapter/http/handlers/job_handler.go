package handlers

import (
	"net/http"

	request "turnover_service/internal/adapter/http/dto/request"
	response "turnover_service/internal/adapter/http/dto/response"
	"turnover_service/internal/usecase"
	"turnover_service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// JobHandler handles HTTP requests for jobs and their checklists.
type JobHandler struct {
	usecase usecase.IJobUseCase
	log     logger.Logger
}

func NewJobHandler(uc usecase.IJobUseCase, log logger.Logger) *JobHandler {
	return &JobHandler{usecase: uc, log: log}
}

// CreateJob schedules a job, pricing it unless the body carries a price.
//
// @Summary  Create a job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Success  201 {object} response.JobResponse
// @Router   /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	body, appErr := readObject(c)
	if appErr != nil {
		respondError(c, h.log, "[job][handler] create", appErr)
		return
	}

	payload, err := request.ParseJobRequest(body)
	if err != nil {
		respondError(c, h.log, "[job][handler] create", mapInputError(err))
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, h.log, "[job][handler] create", mapResourceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob returns a stored job.
//
// @Summary  Get a job
// @Tags     jobs
// @Produce  json
// @Param    id path string true "Job id"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "[job][handler] get", mapResourceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateChecklist sets the supplied checklist fields and returns the job.
//
// @Summary  Update a job checklist
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id path string true "Job id"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{id}/checklist [patch]
func (h *JobHandler) UpdateChecklist(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, h.log, "[job][handler] checklist", errInvalidRequest)
		return
	}

	updates, err := request.ParseChecklistUpdate(raw)
	if err != nil {
		respondError(c, h.log, "[job][handler] checklist", mapInputError(err))
		return
	}

	job, err := h.usecase.UpdateChecklist(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		respondError(c, h.log, "[job][handler] checklist", mapResourceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}
