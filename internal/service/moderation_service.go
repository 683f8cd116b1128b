package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/sirupsen/logrus"
)

type ModerationService struct {
	uow   uow.UOW
	repo  ModerationRepository
	cache Cache
	log   *logrus.Entry
}

func NewModerationService(u uow.UOW, cache Cache, logger *logrus.Logger) (*ModerationService, error) {
	repo, err := repoFromUOW[ModerationRepository](u, repoargs.ModerationRepoName)
	if err != nil {
		return nil, err
	}
	return &ModerationService{
		uow:   u,
		repo:  repo,
		cache: cache,
		log:   logger.WithField("component", "moderation_service"),
	}, nil
}

type CreateReportArgs struct {
	Type              domain.ReportType
	Description       string
	ReportedUserID    *int64
	ReportedProductID *int64
	ReportedMessageID *int64
}

// CreateReport создает жалобу. Жалоба на пользователя, товар или сообщение должна указывать ровно один объект
// соответствующего типа.
func (m *ModerationService) CreateReport(ctx context.Context, actor Actor, args CreateReportArgs) (*domain.Report, error) {
	if err := checkReportTarget(args); err != nil {
		return nil, fmt.Errorf("creating report: %w", err)
	}
	if strings.TrimSpace(args.Description) == "" {
		return nil, fmt.Errorf("creating report: %w", domain.NewValidationError("description", "required"))
	}
	report, err := m.repo.CreateReport(ctx, repoargs.CreateReport{
		ReporterID:        actor.UserID,
		ReportedUserID:    args.ReportedUserID,
		ReportedProductID: args.ReportedProductID,
		ReportedMessageID: args.ReportedMessageID,
		Type:              args.Type,
		Description:       args.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("creating report: %w", err)
	}
	return report, nil
}

func checkReportTarget(args CreateReportArgs) error {
	targets := 0
	for _, t := range []*int64{args.ReportedUserID, args.ReportedProductID, args.ReportedMessageID} {
		if t != nil {
			targets++
		}
	}
	var target *int64
	switch args.Type {
	case domain.ReportTypeUser:
		target = args.ReportedUserID
	case domain.ReportTypeProduct:
		target = args.ReportedProductID
	case domain.ReportTypeMessage:
		target = args.ReportedMessageID
	case domain.ReportTypeDelivery, domain.ReportTypeOther:
		if targets > 1 {
			return domain.NewValidationError("target", "at most one target allowed")
		}
		return nil
	default:
		return domain.NewValidationError("report_type", "unknown report type")
	}
	if target == nil || targets != 1 {
		return domain.NewValidationError("target", fmt.Sprintf("%s report requires exactly one reported %s",
			args.Type, args.Type))
	}
	return nil
}

// adminDo выполняет действие администратора в транзакции.
func (m *ModerationService) adminDo(ctx context.Context, actor Actor, fn func(ctx context.Context, tx uow.TX) error) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return m.uow.Do(ctx, fn) //nolint:wrapcheck
}

func (m *ModerationService) Reports(
	ctx context.Context,
	actor Actor,
	status domain.ReportStatusType,
	page repoargs.Page,
) ([]domain.Report, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("listing reports: %w", domain.ErrForbidden)
	}
	reports, err := m.repo.ListReports(ctx, status, page)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	return reports, nil
}

// UpdateReportStatus переводит жалобу в работу или закрывает ее. Закрытые жалобы не меняются.
func (m *ModerationService) UpdateReportStatus(
	ctx context.Context,
	actor Actor,
	reportID int64,
	status domain.ReportStatusType,
	notes string,
) (*domain.Report, error) {
	switch status {
	case domain.ReportStatusInvestigating, domain.ReportStatusResolved, domain.ReportStatusDismissed:
	default:
		return nil, fmt.Errorf("updating report: %w", domain.NewValidationError("status", "unsupported status"))
	}

	var report *domain.Report
	err := m.adminDo(ctx, actor, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[ModerationRepository](tx, repoargs.ModerationRepoName)
		if err != nil {
			return err
		}
		current, err := repo.FindReportByID(ctx, reportID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if current.Status.IsFinal() {
			return fmt.Errorf("report %d is %s: %w", reportID, current.Status, domain.ErrInvalidStatusTransition)
		}
		args := repoargs.UpdateReportStatus{ID: reportID, Status: status, ResolutionNotes: notes}
		if status.IsFinal() {
			args.ResolvedBy = &actor.UserID
		}
		if report, err = repo.UpdateReportStatus(ctx, args); err != nil {
			return err //nolint:wrapcheck
		}
		return recordAdminAction(ctx, tx, actor, "update_report_status", "report", &reportID, string(status))
	})
	if err != nil {
		return nil, fmt.Errorf("updating report %d: %w", reportID, err)
	}
	return report, nil
}

func (m *ModerationService) VerifyUser(ctx context.Context, actor Actor, userID int64) (*domain.User, error) {
	var user *domain.User
	err := m.adminDo(ctx, actor, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err
		}
		if user, err = repo.SetVerified(ctx, userID, true); err != nil {
			return err //nolint:wrapcheck
		}
		return recordAdminAction(ctx, tx, actor, "verify_user", "user", &userID, "")
	})
	if err != nil {
		return nil, fmt.Errorf("verifying user %d: %w", userID, err)
	}
	return user, nil
}

type BlockUserArgs struct {
	UserID      int64
	Reason      string
	IsPermanent bool
	UnblockDate *time.Time
}

// BlockUser блокирует пользователя навсегда или до UnblockDate. Повторная блокировка перезаписывает условия.
func (m *ModerationService) BlockUser(ctx context.Context, actor Actor, args BlockUserArgs) (*domain.BlockedUser, error) {
	if strings.TrimSpace(args.Reason) == "" {
		return nil, fmt.Errorf("blocking user: %w", domain.NewValidationError("reason", "required"))
	}
	if !args.IsPermanent && (args.UnblockDate == nil || !args.UnblockDate.After(time.Now())) {
		return nil, fmt.Errorf("blocking user: %w",
			domain.NewValidationError("unblock_date", "temporary block requires a future date"))
	}
	if args.IsPermanent {
		args.UnblockDate = nil
	}
	if args.UserID == actor.UserID {
		return nil, fmt.Errorf("blocking user: %w", domain.NewValidationError("user_id", "cannot block yourself"))
	}

	var blocked *domain.BlockedUser
	err := m.adminDo(ctx, actor, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[ModerationRepository](tx, repoargs.ModerationRepoName)
		if err != nil {
			return err
		}
		blocked, err = repo.BlockUser(ctx, repoargs.BlockUser{
			UserID:      args.UserID,
			BlockedBy:   actor.UserID,
			Reason:      args.Reason,
			IsPermanent: args.IsPermanent,
			UnblockDate: args.UnblockDate,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		return recordAdminAction(ctx, tx, actor, "block_user", "user", &args.UserID, args.Reason)
	})
	if err != nil {
		return nil, fmt.Errorf("blocking user %d: %w", args.UserID, err)
	}
	return blocked, nil
}

func (m *ModerationService) UnblockUser(ctx context.Context, actor Actor, userID int64) error {
	err := m.adminDo(ctx, actor, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[ModerationRepository](tx, repoargs.ModerationRepoName)
		if err != nil {
			return err
		}
		if err = repo.UnblockUser(ctx, userID); err != nil {
			return err //nolint:wrapcheck
		}
		return recordAdminAction(ctx, tx, actor, "unblock_user", "user", &userID, "")
	})
	if err != nil {
		return fmt.Errorf("unblocking user %d: %w", userID, err)
	}
	return nil
}

// ReviewBusinessVerification одобряет или отклоняет заявку. Одобрение также делает пользователя проверенным.
func (m *ModerationService) ReviewBusinessVerification(
	ctx context.Context,
	actor Actor,
	userID int64,
	approved bool,
	notes string,
) (*domain.BusinessVerification, error) {
	status := domain.VerificationStatusRejected
	if approved {
		status = domain.VerificationStatusApproved
	}

	var bv *domain.BusinessVerification
	err := m.adminDo(ctx, actor, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err
		}
		bv, err = repo.ReviewBusinessVerification(ctx, repoargs.ReviewBusinessVerification{
			UserID: userID,
			Status: status,
			Notes:  notes,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if approved {
			if _, err = repo.SetVerified(ctx, userID, true); err != nil {
				return err //nolint:wrapcheck
			}
		}
		return recordAdminAction(ctx, tx, actor, "review_business_verification", "business_verification",
			&userID, string(status))
	})
	if err != nil {
		return nil, fmt.Errorf("reviewing business verification of user %d: %w", userID, err)
	}
	return bv, nil
}

// VerifyPickupShop подтверждает пункт выдачи, после чего он появляется в списках и может принимать заказы.
func (m *ModerationService) VerifyPickupShop(ctx context.Context, actor Actor, shopID int64) (*domain.PickupShop, error) {
	var shop *domain.PickupShop
	err := m.adminDo(ctx, actor, func(ctx context.Context, tx uow.TX) error {
		repo, err := repoFromTX[PickupShopRepository](tx, repoargs.PickupShopRepoName)
		if err != nil {
			return err
		}
		if shop, err = repo.SetVerified(ctx, shopID, true); err != nil {
			return err //nolint:wrapcheck
		}
		return recordAdminAction(ctx, tx, actor, "verify_pickup_shop", "pickup_shop", &shopID, "")
	})
	if err != nil {
		return nil, fmt.Errorf("verifying pickup shop %d: %w", shopID, err)
	}
	if cacheErr := m.cache.DeleteByPrefix(ctx, pickupShopsCachePrefix); cacheErr != nil {
		m.log.WithError(cacheErr).Warn("pickup shops cache invalidation failed")
	}
	return shop, nil
}

// AssignCourier назначает курьера на доставку. Назначать можно только пользователей с ролью delivery.
func (m *ModerationService) AssignCourier(
	ctx context.Context,
	actor Actor,
	deliveryID, courierID int64,
) (*domain.Delivery, error) {
	var delivery *domain.Delivery
	err := m.adminDo(ctx, actor, func(ctx context.Context, tx uow.TX) error {
		userRepo, err := repoFromTX[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err
		}
		deliveryRepo, err := repoFromTX[DeliveryRepository](tx, repoargs.DeliveryRepoName)
		if err != nil {
			return err
		}
		courier, err := userRepo.FindUserByID(ctx, courierID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if courier.UserType != domain.UserTypeDelivery {
			return domain.NewValidationError("courier_id", "user is not a courier")
		}
		if delivery, err = deliveryRepo.AssignCourier(ctx, deliveryID, courierID, false); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = deliveryRepo.AddTracking(ctx, repoargs.AddTracking{
			DeliveryID: deliveryID,
			Status:     delivery.Status,
			Notes:      "Courier assigned by admin",
		}); err != nil {
			return err //nolint:wrapcheck
		}
		return recordAdminAction(ctx, tx, actor, "assign_courier", "delivery", &deliveryID,
			fmt.Sprintf("courier %d", courierID))
	})
	if err != nil {
		return nil, fmt.Errorf("assigning courier to delivery %d: %w", deliveryID, err)
	}
	return delivery, nil
}

func (m *ModerationService) AdminLogs(ctx context.Context, actor Actor, page repoargs.Page) ([]domain.AdminLog, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("listing admin logs: %w", domain.ErrForbidden)
	}
	logs, err := m.repo.ListAdminLogs(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing admin logs: %w", err)
	}
	return logs, nil
}
