package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/rental-desk/internal/metrics"
	"github.com/sjperalta/rental-desk/internal/models"
	"github.com/sjperalta/rental-desk/internal/pricing"
	"github.com/sjperalta/rental-desk/internal/rentalapi"
	"github.com/sjperalta/rental-desk/internal/repository"
	"github.com/sjperalta/rental-desk/internal/session"
	"github.com/sjperalta/rental-desk/pkg/logger"
)

const apiDateLayout = "2006-01-02"

// SubmitResult is returned after the backend accepted a contract
type SubmitResult struct {
	ContractID    *int64          `json:"contract_id"`
	SubmissionID  uint            `json:"submission_id"`
	Summary       pricing.Summary `json:"summary"`
	PaymentQueued bool            `json:"payment_queued"`
	Message       string          `json:"message"`
}

type ContractService struct {
	api         RentalAPI
	sessions    *SessionService
	submissions repository.SubmissionRepository
	auditSvc    *AuditService
	exportSvc   *ExportService
	storage     DocumentStore
	worker      Enqueuer
}

func NewContractService(
	api RentalAPI,
	sessions *SessionService,
	submissions repository.SubmissionRepository,
	auditSvc *AuditService,
	exportSvc *ExportService,
	storage DocumentStore,
	worker Enqueuer,
) *ContractService {
	return &ContractService{
		api:         api,
		sessions:    sessions,
		submissions: submissions,
		auditSvc:    auditSvc,
		exportSvc:   exportSvc,
		storage:     storage,
		worker:      worker,
	}
}

// Submit validates the draft and creates the contract on the rental backend.
// The backend is called at most once per call. On failure the draft is kept
// for another attempt; on success the session is reset for the next
// contract.
func (s *ContractService) Submit(ctx context.Context, sessionID string, actor Actor) (*SubmitResult, error) {
	sess, err := s.sessions.Get(ctx, sessionID, actor)
	if err != nil {
		return nil, err
	}

	draft, err := sess.BeginSubmit(ctx)
	if err != nil {
		err = translate(err)
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			metrics.ContractSubmissions.WithLabelValues("incomplete").Inc()
		}
		return nil, err
	}

	payload := BuildContractRequest(draft)
	created, err := s.api.CreateContract(ctx, payload)
	if err != nil {
		if failErr := sess.FailSubmit(ctx); failErr != nil {
			logger.Error("Failed to reopen draft after submit error", "session_id", sessionID, "error", failErr)
		}
		s.recordFailure(ctx, actor, draft, payload, err)
		metrics.ContractSubmissions.WithLabelValues(failureResult(err)).Inc()
		return nil, fmt.Errorf("create contract: %w", err)
	}
	metrics.ContractSubmissions.WithLabelValues("created").Inc()

	contractID, hasID := created.ID()
	collected := draft.Summary.CollectedNow()
	queuePayment := hasID && (draft.Summary.PaidNow.IsPositive() || draft.Summary.Deposit.IsPositive())

	sub := newSubmission(actor, draft, payload, models.SubmissionCreated)
	if hasID {
		id := contractID
		sub.ContractID = &id
	}
	if queuePayment {
		sub.PaymentStatus = models.PaymentPending
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		logger.Error("Failed to store submission record", "session_id", sessionID, "error", err)
	}

	entityID := sessionID
	if hasID {
		entityID = strconv.FormatInt(contractID, 10)
	}
	s.auditSvc.Log(ctx, actor, models.AuditSubmit, "Contract", entityID,
		fmt.Sprintf("Contract created for customer %d, vehicle %d. Total: %s", payload.CustomerID, carID(payload), draft.Summary.GrandTotal))

	if queuePayment {
		s.queuePayment(actor, sub.ID, contractID, collected, draft.Form.PaymentMethod)
	}
	s.queueArchive(draft, sub.ID)

	if err := sess.CompleteSubmit(ctx); err != nil {
		logger.Error("Failed to reset draft after submit", "session_id", sessionID, "error", err)
	}

	logger.Info("Contract submitted", "session_id", sessionID, "contract_id", contractID, "user_id", actor.UserID)

	result := &SubmitResult{
		SubmissionID:  sub.ID,
		Summary:       draft.Summary,
		PaymentQueued: queuePayment,
		Message:       "Contract created successfully",
	}
	if hasID {
		result.ContractID = sub.ContractID
	}
	return result, nil
}

// failureResult labels a failed create call: rejected when the backend
// answered with a client error, failed otherwise.
func failureResult(err error) string {
	var apiErr *rentalapi.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return "rejected"
	}
	return "failed"
}

// queuePayment records the amount collected at the desk. Failures are
// logged and swallowed; the contract stays created.
func (s *ContractService) queuePayment(actor Actor, submissionID uint, contractID int64, amount decimal.Decimal, method string) {
	s.worker.EnqueueAsync(func(ctx context.Context) error {
		status := models.PaymentRecorded
		if err := s.api.RecordPayment(ctx, contractID, amount, method); err != nil {
			logger.Warn("Failed to record payment", "contract_id", contractID, "amount", amount.String(), "error", err)
			status = models.PaymentFailed
			metrics.PaymentRecordings.WithLabelValues("failed").Inc()
		} else {
			metrics.PaymentRecordings.WithLabelValues("recorded").Inc()
			s.auditSvc.Log(ctx, actor, models.AuditPayment, "Contract", strconv.FormatInt(contractID, 10),
				fmt.Sprintf("Payment of %s recorded (%s)", amount, method))
		}
		if submissionID != 0 {
			if err := s.submissions.UpdatePaymentStatus(ctx, submissionID, status); err != nil {
				logger.Warn("Failed to update payment status", "submission_id", submissionID, "error", err)
			}
		}
		return nil
	})
}

// queueArchive stores a quote PDF of the submitted draft
func (s *ContractService) queueArchive(draft session.Draft, submissionID uint) {
	if s.storage == nil || s.exportSvc == nil {
		return
	}
	s.worker.Enqueue(func(ctx context.Context) error {
		data, filename, err := s.exportSvc.QuotePDF(draft)
		if err != nil {
			return fmt.Errorf("render quote: %w", err)
		}
		path, err := s.storage.UploadFromBytes(data, filename, "quotes")
		if err != nil {
			return fmt.Errorf("archive quote: %w", err)
		}
		if submissionID != 0 {
			return s.submissions.UpdateQuotePath(ctx, submissionID, path)
		}
		return nil
	})
}

func (s *ContractService) recordFailure(ctx context.Context, actor Actor, draft session.Draft, payload rentalapi.ContractCreate, cause error) {
	sub := newSubmission(actor, draft, payload, models.SubmissionFailed)
	sub.ErrorMessage = SubmitErrorMessage(cause)
	if err := s.submissions.Create(ctx, sub); err != nil {
		logger.Error("Failed to store failed submission", "session_id", draft.SessionID, "error", err)
	}
	s.auditSvc.Log(ctx, actor, models.AuditFail, "Session", draft.SessionID, sub.ErrorMessage)

	status := rentalapi.StatusOf(cause)
	if status == 0 || status >= http.StatusInternalServerError {
		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub()
		}
		hub.CaptureException(cause)
	}
	logger.Warn("Contract submission failed", "session_id", draft.SessionID, "status", status, "error", cause)
}

// List returns submission records
func (s *ContractService) List(ctx context.Context, query *repository.ListQuery) ([]models.Submission, int64, error) {
	return s.submissions.List(ctx, query)
}

// BuildContractRequest assembles the backend payload from a draft. The car
// amount is days times the daily rate.
func BuildContractRequest(d session.Draft) rentalapi.ContractCreate {
	req := rentalapi.ContractCreate{
		Notes:      d.Form.Notes,
		Cars:       []rentalapi.ContractCar{},
		Surcharges: make([]rentalapi.ContractSurcharge, 0, len(d.Surcharges)),
	}
	if c := d.Form.Customer; c != nil {
		req.CustomerID = c.CustomerID
	}
	if t := d.Form.Period.Start; t != nil {
		v := t.Format(apiDateLayout)
		req.StartDate = &v
	}
	if t := d.Form.Period.End; t != nil {
		v := t.Format(apiDateLayout)
		req.EndDate = &v
	}
	if v := d.Form.Vehicle; v != nil {
		req.Cars = append(req.Cars, rentalapi.ContractCar{
			CarID:     v.Key(),
			DailyRate: d.Summary.DailyRate,
			Amount:    d.Summary.DailyRate.Mul(decimal.NewFromInt(int64(d.Summary.Days))),
		})
	}
	for _, it := range d.Surcharges {
		req.Surcharges = append(req.Surcharges, rentalapi.ContractSurcharge{
			SurchargeID: it.ID,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		})
	}
	total := d.Summary.GrandTotal
	req.TotalAmount = &total
	return req
}

// SubmitErrorMessage picks the message shown to the operator: the backend
// detail when present, otherwise a generic text.
func SubmitErrorMessage(err error) string {
	var apiErr *rentalapi.APIError
	if errors.As(err, &apiErr) {
		if detail := apiErr.Detail(); detail != "" {
			return detail
		}
		return fmt.Sprintf("Failed to create contract (%d %s)", apiErr.Status, apiErr.StatusText)
	}
	return "Failed to create contract"
}

func newSubmission(actor Actor, d session.Draft, payload rentalapi.ContractCreate, status string) *models.Submission {
	raw, _ := json.Marshal(payload)
	sum := d.Summary
	sub := &models.Submission{
		SessionID:       d.SessionID,
		UserID:          actor.UserID,
		Status:          status,
		CustomerID:      payload.CustomerID,
		CarID:           carID(payload),
		StartDate:       d.Form.Period.Start,
		EndDate:         d.Form.Period.End,
		RentalDays:      sum.Days,
		SurchargeCount:  len(d.Surcharges),
		SurchargeTotal:  sum.SurchargeTotal,
		Discount:        sum.Discount,
		Deposit:         sum.Deposit,
		PaidNow:         sum.PaidNow,
		GrandTotal:      sum.GrandTotal,
		Remaining:       sum.Remaining,
		PaymentMethod:   d.Form.PaymentMethod,
		PaymentStatus:   models.PaymentNone,
		PickupBranchID:  d.Form.PickupBranchID,
		DropoffBranchID: d.Form.DropoffBranchID,
		EmployeeID:      d.Form.EmployeeID,
		Payload:         string(raw),
	}
	return sub
}

func carID(payload rentalapi.ContractCreate) int64 {
	if len(payload.Cars) == 0 {
		return 0
	}
	return payload.Cars[0].CarID
}
