package handlers

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

// Values with characters other than letters, digits and dashes, or longer
// than a typical project code, are taken to be worker names.
var projectCodePattern = regexp.MustCompile(`^[a-zA-Z0-9-]{1,20}$`)

// QRCodeHandler renders QR codes that open the landing page with a form field prefilled.
type QRCodeHandler struct{}

func NewQRCodeHandler() *QRCodeHandler {
	return &QRCodeHandler{}
}

// PrefillField picks the form field a QR payload should prefill. An explicit
// field wins; otherwise the value's shape decides.
func PrefillField(value, field string) (string, error) {
	switch field {
	case "project_number", "worker_name":
		return field, nil
	case "":
		if projectCodePattern.MatchString(value) {
			return "project_number", nil
		}
		return "worker_name", nil
	}
	return "", fmt.Errorf("unsupported field %q", field)
}

// GetQRCode renders a PNG QR code
// @Summary QR code for a prefilled form
// @Description PNG QR code linking to the landing page with project_number or worker_name prefilled
// @Tags pages
// @Produce png
// @Param data query string true "Value to prefill"
// @Param field query string false "project_number or worker_name; guessed when empty"
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} map[string]interface{} "Missing or invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /qrcode [get]
func (h *QRCodeHandler) GetQRCode(c *fiber.Ctx) error {
	data := strings.TrimSpace(c.Query("data"))
	if data == "" {
		return jsonError(c, fiber.StatusBadRequest, "Query parameter data is required")
	}
	field, err := PrefillField(data, c.Query("field"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Query parameter field must be project_number or worker_name")
	}

	target := fmt.Sprintf("%s/?%s", c.BaseURL(), url.Values{field: []string{data}}.Encode())
	png, err := qrcode.Encode(target, qrcode.High, qrCodeSize)
	if err != nil {
		requestLogger(c).Error("error generating qr code", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Could not generate QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
