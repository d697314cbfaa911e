package fees

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"acacia-schools/app/client"
	"acacia-schools/app/ledger"
	"acacia-schools/app/models"
	"acacia-schools/app/routes/auth"
	"acacia-schools/app/services"
)

var validate = validator.New()

// PaymentRequestBody mirrors the payment-entry form.
type PaymentRequestBody struct {
	StudentID     string     `json:"studentId" validate:"required"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	PaymentMethod string     `json:"paymentMethod" validate:"required,oneof=cash cheque online card upi"`
	ReceiptNumber string     `json:"receiptNumber"`
	Description   string     `json:"description"`
	PaymentDate   *time.Time `json:"paymentDate"`
}

// GetOverviewAPI returns the filtered roster with per-student statuses and
// the statistics over that filtered set.
func GetOverviewAPI(c *fiber.Ctx, svc *services.FeeService) error {
	overview, err := svc.Overview(c.UserContext(), auth.Token(c), criteriaFromQuery(c))
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    overview,
	})
}

// GetStudentCardAPI returns one student's fee card.
func GetStudentCardAPI(c *fiber.Ctx, svc *services.FeeService) error {
	card, err := svc.StudentCard(c.UserContext(), auth.Token(c), c.Params("studentId"))
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    card,
	})
}

// GetPaymentHistoryAPI returns a student's full ledger, newest first.
func GetPaymentHistoryAPI(c *fiber.Ctx, svc *services.FeeService) error {
	history, err := svc.PaymentHistory(c.UserContext(), auth.Token(c), c.Params("studentId"))
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    history,
	})
}

// RecordPaymentAPI validates and records a payment, returning the student's
// refreshed fee card.
func RecordPaymentAPI(c *fiber.Ctx, svc *services.FeeService) error {
	var body PaymentRequestBody
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return apiError(c, &ledger.ValidationError{Reason: err.Error()})
	}

	req := client.PaymentRequest{
		StudentID:     body.StudentID,
		Amount:        body.Amount,
		PaymentMethod: models.PaymentMethod(body.PaymentMethod),
		ReceiptNumber: body.ReceiptNumber,
		Description:   body.Description,
	}
	if body.PaymentDate != nil {
		req.PaymentDate = *body.PaymentDate
	}

	card, err := svc.RecordPayment(c.UserContext(), auth.Token(c), req)
	if err != nil {
		return apiError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    card,
		"message": "Payment recorded successfully",
	})
}

// UpdateStructureAPI validates and replaces a student's fee structure,
// returning the refreshed fee card.
func UpdateStructureAPI(c *fiber.Ctx, svc *services.FeeService) error {
	var structure models.FeeStructure
	if err := c.BodyParser(&structure); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(structure); err != nil {
		return apiError(c, &ledger.ValidationError{Reason: err.Error()})
	}

	card, err := svc.UpdateStructure(c.UserContext(), auth.Token(c), c.Params("studentId"), structure)
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    card,
		"message": "Fee structure updated successfully",
	})
}

// GetAnalyticsAPI proxies the fees service's pre-aggregated statistics.
func GetAnalyticsAPI(c *fiber.Ctx, svc *services.FeeService) error {
	stats, err := svc.Analytics(c.UserContext(), auth.Token(c))
	if err != nil {
		return apiError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// ExportCollectionSheetAPI streams the filtered roster as an xlsx
// collection sheet.
func ExportCollectionSheetAPI(c *fiber.Ctx, svc *services.FeeService) error {
	sheet, err := svc.ExportCollectionSheet(c.UserContext(), auth.Token(c), criteriaFromQuery(c))
	if err != nil {
		return apiError(c, err)
	}
	buf, err := sheet.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to write export")
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="fee-collection.xlsx"`)
	return c.Send(buf.Bytes())
}

// criteriaFromQuery reads the filter params. Absent params mean no
// constraint, and malformed amount bounds read as absent rather than
// failing the request.
func criteriaFromQuery(c *fiber.Ctx) ledger.Criteria {
	criteria := ledger.Criteria{
		Class:         c.Query("class"),
		Section:       c.Query("section"),
		AcademicYear:  c.Query("academicYear"),
		PaymentStatus: models.PaymentStatus(c.Query("paymentStatus")),
		Search:        c.Query("search"),
	}
	if v, err := strconv.ParseFloat(c.Query("minAmount"), 64); err == nil {
		criteria.MinAmount = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxAmount"), 64); err == nil {
		criteria.MaxAmount = &v
	}
	return criteria
}

// apiError maps the ledger error taxonomy onto HTTP statuses: validation
// resolves locally as 400, auth failures pass through as 401, and fees
// service failures surface as 502.
func apiError(c *fiber.Ctx, err error) error {
	var validationErr *ledger.ValidationError
	var authErr *ledger.AuthError
	var persistenceErr *ledger.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validationErr.Reason,
		})
	case errors.As(err, &authErr):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   authErr.Reason,
		})
	case errors.Is(err, services.ErrStudentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Student not found",
		})
	case errors.As(err, &persistenceErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   persistenceErr.Reason,
		})
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
