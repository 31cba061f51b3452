package api

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/foliopulse/internal/domain/dto"
	"github.com/guttosm/foliopulse/internal/importer"
	"github.com/guttosm/foliopulse/internal/insights"
	"github.com/guttosm/foliopulse/internal/portfolio"
	"github.com/guttosm/foliopulse/internal/service"
)

// uploadField is the multipart form field carrying the portfolio CSV.
const uploadField = "file"

// templateCSV is the sample file offered to users before their first
// upload. The last row shows the option contract format.
const templateCSV = `Symbol,Shares
AAPL,10
GOOGL,5
MSFT,15
TSLA,20
AMZN,8
QQQ 01/15/2027 380.00 C,5
`

// Handler provides HTTP handlers for the portfolio analysis endpoints.
//
// Responsibilities:
//   - Accept and validate the multipart CSV upload
//   - Run the analysis pipeline through the service layer
//   - Translate pipeline results into response DTOs or CSV bodies
type Handler struct {
	svc service.AnalyzeService
	ai  insights.Commentator // nil when insights are not configured
}

// NewHandler constructs a Handler. ai may be nil; the insights
// endpoint then reports 503.
func NewHandler(svc service.AnalyzeService, ai insights.Commentator) *Handler {
	return &Handler{svc: svc, ai: ai}
}

// analyzeUpload opens the uploaded CSV and runs the pipeline, writing
// the error response itself when anything fails. ok is false in that
// case.
func (h *Handler) analyzeUpload(c *gin.Context) (analysis *service.Analysis, ok bool) {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("missing CSV upload in field \"file\"", err))
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to open upload", err))
		return nil, false
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	analysis, err = h.svc.Analyze(c.Request.Context(), f)
	if err != nil {
		var ve *importer.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid CSV file", ve))
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("analysis failed", err))
		return nil, false
	}
	return analysis, true
}

// Analyze handles POST /api/v1/portfolio/analyze requests.
//
// Analyze godoc
// @Summary      Analyze a portfolio CSV
// @Description  Parses the uploaded CSV, resolves current prices, and returns per-holding values, percentage allocations, chart slices, and warnings
// @Tags         portfolio
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV with Symbol and Shares columns"
// @Success      200   {object}  dto.AnalyzeResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse    "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/portfolio/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	analysis, ok := h.analyzeUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newAnalyzeResponse(analysis))
}

// Export handles POST /api/v1/portfolio/export requests, returning the
// analyzed portfolio as a downloadable CSV.
//
// Export godoc
// @Summary      Export the analyzed portfolio as CSV
// @Description  Same pipeline as /analyze, but responds with the analyzed table as text/csv
// @Tags         portfolio
// @Accept       multipart/form-data
// @Produce      text/csv
// @Param        file  formData  file  true  "CSV with Symbol and Shares columns"
// @Success      200   {string}  string             "CSV document"
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/portfolio/export [post]
func (h *Handler) Export(c *gin.Context) {
	analysis, ok := h.analyzeUpload(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := portfolio.WriteCSV(&buf, analysis.Report); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build CSV export", err))
		return
	}

	name := fmt.Sprintf("portfolio_analysis_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// Insights handles POST /api/v1/portfolio/insights requests.
//
// Insights godoc
// @Summary      AI commentary for a portfolio CSV
// @Description  Runs the analysis pipeline and asks the configured model for commentary on the allocation
// @Tags         portfolio
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV with Symbol and Shares columns"
// @Success      200   {object}  dto.InsightsResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse     "Bad Request"
// @Failure      502   {object}  dto.ErrorResponse     "Upstream model failure"
// @Failure      503   {object}  dto.ErrorResponse     "Insights not configured"
// @Router       /api/v1/portfolio/insights [post]
func (h *Handler) Insights(c *gin.Context) {
	if h.ai == nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("insights are not configured (set GEMINI_API_KEY)", nil))
		return
	}

	analysis, ok := h.analyzeUpload(c)
	if !ok {
		return
	}

	comment, err := h.ai.Comment(c.Request.Context(), analysis.Report, analysis.Summary)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("insights generation failed", err))
		return
	}

	c.JSON(http.StatusOK, dto.InsightsResponse{
		Insights: comment,
		Report:   newAnalyzeResponse(analysis),
	})
}

// Template handles GET /api/v1/portfolio/template requests.
//
// Template godoc
// @Summary      Download a sample portfolio CSV
// @Tags         portfolio
// @Produce      text/csv
// @Success      200  {string}  string  "CSV template"
// @Router       /api/v1/portfolio/template [get]
func (h *Handler) Template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="portfolio_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(templateCSV))
}

func newAnalyzeResponse(analysis *service.Analysis) dto.AnalyzeResponse {
	warnings := make([]string, 0, len(analysis.Warnings))
	for _, w := range analysis.Warnings {
		warnings = append(warnings, w.String())
	}
	return dto.NewAnalyzeResponse(analysis.Report, analysis.Summary, analysis.Chart, warnings)
}
