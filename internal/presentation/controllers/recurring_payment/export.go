package recurring_payment

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pennyflow/finance-backend/internal/domain/models"
	"github.com/pennyflow/finance-backend/internal/domain/usecase"
	"github.com/pennyflow/finance-backend/internal/infra/db/mongodb/repositories/report_repository"
	"github.com/pennyflow/finance-backend/internal/presentation/helpers"
	presentationProtocols "github.com/pennyflow/finance-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// workbookCacheTTL bounds staleness of the cached export; mutations do not
// invalidate it.
const workbookCacheTTL = 10 * time.Minute

type ExportRecurringPaymentsController struct {
	FindRecurringPaymentsByUserIdRepository usecase.FindRecurringPaymentsByUserIdRepository
	RedisURL                                string
}

func NewExportRecurringPaymentsController(
	findByUserId usecase.FindRecurringPaymentsByUserIdRepository,
	redisURL string,
) *ExportRecurringPaymentsController {
	return &ExportRecurringPaymentsController{
		FindRecurringPaymentsByUserIdRepository: findByUserId,
		RedisURL:                                redisURL,
	}
}

func (c *ExportRecurringPaymentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateError("Invalid user ID format", http.StatusBadRequest)
	}

	if cached, err := report_repository.FindWorkbook(c.RedisURL, userId.Hex()); err != nil {
		log.Println("schedule export cache lookup:", err)
	} else if cached != nil {
		return helpers.CreateFileResponse(cached, xlsxContentType, http.StatusOK)
	}

	payments, err := c.FindRecurringPaymentsByUserIdRepository.FindByUserId(userId)
	if err != nil {
		return helpers.CreateError("an error occurred when listing recurring payments", http.StatusInternalServerError)
	}

	workbook, err := buildScheduleWorkbook(payments)
	if err != nil {
		return helpers.CreateError("an error occurred when building export", http.StatusInternalServerError)
	}

	if err := report_repository.SaveWorkbook(c.RedisURL, userId.Hex(), workbook, workbookCacheTTL); err != nil {
		log.Println("schedule export cache save:", err)
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return helpers.CreateError("an error occurred when building export", http.StatusInternalServerError)
	}

	return helpers.CreateFileResponse(buf.Bytes(), xlsxContentType, http.StatusOK)
}

func buildScheduleWorkbook(payments []models.RecurringPayment) (*excelize.File, error) {
	workbook := excelize.NewFile()
	sheet := "Schedule"

	index, err := workbook.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	workbook.SetActiveSheet(index)
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Name", "Amount", "Frequency", "Interval", "Start Date", "End Date", "Status", "Last Generated"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := workbook.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, payment := range payments {
		endDate := ""
		if payment.EndDate != nil {
			endDate = payment.EndDate.Format("2006-01-02")
		}
		lastGenerated := ""
		if payment.LastGenerated != nil {
			lastGenerated = payment.LastGenerated.Format("2006-01-02")
		}

		values := []interface{}{
			payment.Name,
			payment.Amount,
			payment.Frequency,
			payment.CustomInterval,
			payment.StartDate.Format("2006-01-02"),
			endDate,
			payment.Status,
			lastGenerated,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := workbook.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if len(payments) == 0 {
		// keep a visible hint instead of a bare header row
		if err := workbook.SetCellValue(sheet, "A2", fmt.Sprintf("No recurring payments as of %s", time.Now().Format("2006-01-02"))); err != nil {
			return nil, err
		}
	}

	return workbook, nil
}
