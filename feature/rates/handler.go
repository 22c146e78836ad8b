package rates

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"vendor-rates/core/logger"
	"vendor-rates/feature/rates/vendor"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rate comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the rates routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/rates")
	group.Post("/comparison", h.HandleComparison)
	group.Get("/vendors", h.HandleListVendors)
}

// HandleComparison accepts a vendor's rate sheets and schedules the
// reconciliation in the background. The result reaches the requester by
// email.
// @Summary Submit Rate Comparison
// @Description Upload a vendor's rate sheets for reconciliation against the master routing data. Vendors shipping one file per sheet upload them in the declared sheet order (see /rates/vendors). The generated rate file is emailed to the requester and archived.
// @Tags rates
// @Accept multipart/form-data
// @Produce json
// @Param vendor_name formData string true "Vendor name, display name or keyword (e.g. 'Sunrise')"
// @Param email formData string true "Recipient of the result notification"
// @Param files formData file true "Rate sheet workbook(s), .xlsx or .xls"
// @Success 202 {object} rates.ComparisonResponse "Accepted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Unprocessable Entity"
// @Router /rates/comparison [post]
func (h *Handler) HandleComparison(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "expected a multipart form upload",
		})
	}

	vendorName := firstValue(form.Value["vendor_name"])
	email := firstValue(form.Value["email"])
	if vendorName == "" || email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "vendor_name and email are required",
		})
	}

	desc, ok := vendor.Find(vendorName)
	if !ok {
		l.Warn("Unknown vendor requested", zap.String("vendor_name", vendorName))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("unknown vendor %q", vendorName),
		})
	}

	uploads, err := readUploads(form.File["files"])
	if err != nil {
		l.Error("Failed to read uploaded files", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded files",
		})
	}

	if err := h.service.ValidateUploads(desc, uploads); err != nil {
		l.Warn("Upload rejected", zap.String("vendor", desc.Key), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	jobID := uuid.NewString()
	h.service.Submit(desc, jobID, email, uploads)

	l.Info("Comparison accepted",
		zap.String("vendor", desc.Key),
		zap.String("job_id", jobID),
		zap.Int("files", len(uploads)))

	return c.Status(fiber.StatusAccepted).JSON(ComparisonResponse{
		JobID:  jobID,
		Vendor: desc.DisplayName,
		Status: "processing",
	})
}

// HandleListVendors returns the registered vendors and their expected
// upload shape.
// @Summary List Vendors
// @Description List the vendors rate sheets can be submitted for, with the number of files each expects and the declared sheet order.
// @Tags rates
// @Produce json
// @Success 200 {array} rates.VendorInfo "Vendors"
// @Router /rates/vendors [get]
func (h *Handler) HandleListVendors(c *fiber.Ctx) error {
	all := vendor.All()
	out := make([]VendorInfo, 0, len(all))
	for _, d := range all {
		files := 1
		if d.Shape == vendor.ShapeFiles {
			files = len(d.Sheets)
		}
		out = append(out, VendorInfo{
			Key:         d.Key,
			DisplayName: d.DisplayName,
			Strategy:    string(d.Strategy),
			Files:       files,
			Sheets:      d.Sheets,
		})
	}
	return c.JSON(out)
}

// statusFor maps the error taxonomy onto HTTP statuses: configuration
// problems are the caller's to fix, empty row-sets are a data problem.
func statusFor(err error) int {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return fiber.StatusBadRequest
	}
	var ie *IncompleteDataError
	if errors.As(err, &ie) {
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// readUploads pulls every uploaded file into memory so processing can
// outlive the request.
func readUploads(files []*multipart.FileHeader) ([]Upload, error) {
	uploads := make([]Upload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
		}
		uploads = append(uploads, Upload{Name: fh.Filename, Data: data})
	}
	return uploads, nil
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
