package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/briefing-team/briefing-analyzer/errors"
	dto "github.com/briefing-team/briefing-analyzer/internal/adapter/dto/briefing"
	"github.com/briefing-team/briefing-analyzer/internal/adapter/presenter"
	"github.com/briefing-team/briefing-analyzer/internal/usecase/analysis"
)

// Briefing handles the briefing analysis endpoints
type Briefing struct {
	svc      analysis.Service
	keywords []string
	logger   *zap.Logger
}

// NewBriefing creates a new briefing handler. The keyword set is only used
// to label the rendered markdown report.
func NewBriefing(svc analysis.Service, keywords []string, logger *zap.Logger) *Briefing {
	return &Briefing{svc: svc, keywords: keywords, logger: logger}
}

// Analyze runs the full pipeline on a submitted batch. A rejected batch
// yields 422 with the validation report; a malformed payload or input text
// yields 400; a scored batch yields 200. With ?render=markdown the rendered
// report is returned as text instead of JSON.
func (h *Briefing) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	format, err := analysis.ParseFormat(req.Format)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.svc.Analyze(c.Request().Context(), req.Data, format)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	renderMarkdown := c.QueryParam("render") == "markdown"

	if result.State == analysis.StateRejected {
		if renderMarkdown {
			return c.Blob(http.StatusUnprocessableEntity, "text/markdown; charset=utf-8",
				[]byte(presenter.RenderValidationReport(result.Report)))
		}
		body := dto.RejectedResponse{
			InvocationID: result.InvocationID.String(),
			State:        string(result.State),
			Report:       result.Report,
		}
		return c.JSON(http.StatusUnprocessableEntity, body)
	}

	if renderMarkdown {
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8",
			[]byte(presenter.RenderBatchReport(result.Batch, h.keywords)))
	}

	return HandleSuccess(h.logger, c, dto.AnalyzeResponse{
		InvocationID: result.InvocationID.String(),
		State:        string(result.State),
		Report:       result.Report,
		Result:       result.Batch,
	})
}

// Validate runs parse and field validation only, returning the report for
// valid and invalid batches alike
func (h *Briefing) Validate(c echo.Context) error {
	var req dto.ValidateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	format, err := analysis.ParseFormat(req.Format)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	report, err := h.svc.Validate(c.Request().Context(), req.Data, format)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if c.QueryParam("render") == "markdown" {
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8",
			[]byte(presenter.RenderValidationReport(report)))
	}

	return HandleSuccess(h.logger, c, dto.ValidateResponse{Report: report})
}
