// Package jobapplication provides HTTP handlers for job application records.
package jobapplication

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Gokulvemuri/job-application-manager/internal/database"
	"github.com/Gokulvemuri/job-application-manager/internal/middleware"
	"github.com/Gokulvemuri/job-application-manager/internal/model"
	"github.com/Gokulvemuri/job-application-manager/internal/repository"
	"github.com/Gokulvemuri/job-application-manager/internal/utilities"
)

// Fixed client facing messages
const (
	MsgServerError = "Server error"
	MsgNotFound    = "Not found"
	MsgDeleted     = "Job has been deleted."
	MsgInvalidBody = "Invalid request body"
	MsgBodyTooBig  = "Request body too large"
)

// JobApplicationController handles job application endpoints
type JobApplicationController struct {
	Repo   *repository.JobApplicationRepository
	Logger *zap.Logger
}

// NewJobApplicationController creates a new instance of JobApplicationController
func NewJobApplicationController(db *database.DBinstanceStruct, logger *zap.Logger) *JobApplicationController {
	return &JobApplicationController{
		Repo:   repository.NewJobApplicationRepository(db.DB),
		Logger: logger,
	}
}

// CreateJob stores a new job application.
// @Summary Create job application
// @Description Status flags cannot be set on creation, they stay null until the first update
// @Tags Job
// @Accept json
// @Produce json
// @Param Job body model.CreatableJobInfo true "Job application fields, all optional"
// @Success 201 {object} model.JobApplication "Created job application"
// @Failure 400 {object} utilities.ErrorResponse "Body is not a job application"
// @Failure 413 {object} utilities.ErrorResponse "Body too large"
// @Failure 500 {string} string "Server error"
// @Router /job [post]
func (jc *JobApplicationController) CreateJob(c *gin.Context) {
	var info model.CreatableJobInfo
	if !jc.bindBody(c, &info) {
		return
	}

	rec, err := jc.Repo.Create(c.Request.Context(), info)
	if err != nil {
		jc.serverError(c, "POST /job error", err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// GetJobs lists every job application, newest first.
// @Summary List job applications
// @Description Ordered by id descending
// @Tags Job
// @Produce json
// @Success 200 {array} model.JobApplication "All job applications"
// @Failure 500 {string} string "Server error"
// @Router /job [get]
func (jc *JobApplicationController) GetJobs(c *gin.Context) {
	recs, err := jc.Repo.ListAll(c.Request.Context())
	if err != nil {
		jc.serverError(c, "GET /job error", err)
		return
	}

	c.JSON(http.StatusOK, recs)
}

// GetJobByID fetches a single job application.
// @Summary Get job application by ID
// @Tags Job
// @Produce json
// @Param id path integer true "ID of desired job application"
// @Success 200 {object} model.JobApplication "Job application with the given ID"
// @Failure 404 {object} utilities.ErrorResponse "Not found"
// @Failure 500 {string} string "Server error"
// @Router /job/{id} [get]
func (jc *JobApplicationController) GetJobByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := jc.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		jc.respondError(c, "GET /job/:id error", err, id)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// UpdateJob replaces every mutable field of a job application.
// @Summary Replace job application
// @Description Full replace: omitted fields become null and omitted status flags become false
// @Tags Job
// @Accept json
// @Produce json
// @Param id path integer true "ID of desired job application"
// @Param Job body model.EditableJobInfo true "All mutable job application fields"
// @Success 200 {object} model.JobApplication "Updated job application"
// @Failure 400 {object} utilities.ErrorResponse "Body is not a job application"
// @Failure 404 {object} utilities.ErrorResponse "Not found"
// @Failure 413 {object} utilities.ErrorResponse "Body too large"
// @Failure 500 {string} string "Server error"
// @Router /job/{id} [put]
func (jc *JobApplicationController) UpdateJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var info model.EditableJobInfo
	if !jc.bindBody(c, &info) {
		return
	}

	rec, err := jc.Repo.UpdateByID(c.Request.Context(), id, info)
	if err != nil {
		jc.respondError(c, "PUT /job/:id error", err, id)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DeleteJob removes a job application.
// @Summary Delete job application
// @Tags Job
// @Produce json
// @Param id path integer true "ID of desired job application"
// @Success 200 {object} utilities.DeleteResponse "Deleted job application before removal"
// @Failure 404 {object} utilities.ErrorResponse "Not found"
// @Failure 500 {string} string "Server error"
// @Router /job/{id} [delete]
func (jc *JobApplicationController) DeleteJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := jc.Repo.DeleteByID(c.Request.Context(), id)
	if err != nil {
		jc.respondError(c, "DELETE /job/:id error", err, id)
		return
	}

	c.JSON(http.StatusOK, utilities.DeleteResponse{
		Message: MsgDeleted,
		Deleted: *rec,
	})
}

// parseID reads the id path parameter. An id that is not an integer
// cannot match a record, so it is answered as not found.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: MsgNotFound})
		return 0, false
	}
	return id, true
}

// errTrailingData reports content after the JSON body
var errTrailingData = errors.New("unexpected data after JSON body")

// bindBody decodes the request body into dst. Unknown fields are ignored
// and an empty body counts as an empty object.
func (jc *JobApplicationController) bindBody(c *gin.Context, dst interface{}) bool {
	dec := json.NewDecoder(c.Request.Body)
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		err = endOfBody(dec)
	}
	if err == nil {
		return true
	}

	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{Error: MsgBodyTooBig})
		return false
	}

	jc.Logger.Debug("rejected request body",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: MsgInvalidBody})
	return false
}

// endOfBody succeeds when only whitespace follows the decoded value
func endOfBody(dec *json.Decoder) error {
	_, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return errTrailingData
}

func (jc *JobApplicationController) respondError(c *gin.Context, op string, err error, id int64) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: MsgNotFound})
		return
	}
	jc.serverError(c, op, err, zap.Int64("id", id))
}

// serverError logs err under the operation label and hides it from the client
func (jc *JobApplicationController) serverError(c *gin.Context, op string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.Error(err),
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields = append(fields, zap.String("sqlstate", pgErr.Code))
	}

	if errors.Is(err, context.Canceled) {
		jc.Logger.Warn(op, fields...)
	} else {
		jc.Logger.Error(op, fields...)
	}

	c.String(http.StatusInternalServerError, MsgServerError)
}
