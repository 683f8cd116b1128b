package pgrepo

import (
	"context"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const (
	reportColumns = `id, created_at, reporter_id, reported_user_id, reported_product_id, reported_message_id, type,
	description, status, resolved_by, resolution_notes, resolved_at`
	adminLogColumns    = `id, admin_id, action, model_affected, object_id, timestamp, ip_address, details`
	blockedUserColumns = `user_id, blocked_at, blocked_by, reason, is_permanent, unblock_date`

	defaultModerationLimit uint = 50
	maxModerationLimit     uint = 200
)

type ModerationRepository struct {
	conn uow.DBTX
}

func NewModerationRepository(conn uow.DBTX) *ModerationRepository {
	return &ModerationRepository{conn: conn}
}

func (m *ModerationRepository) CreateReport(ctx context.Context, args repoargs.CreateReport) (*domain.Report, error) {
	row := m.conn.QueryRow(ctx, `INSERT INTO reports
		(reporter_id, reported_user_id, reported_product_id, reported_message_id, type, description)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+reportColumns,
		args.ReporterID, args.ReportedUserID, args.ReportedProductID, args.ReportedMessageID, args.Type,
		args.Description,
	)
	report, err := scanReport(row)
	if err != nil {
		return nil, convertErr(err, "creating report")
	}
	return report, nil
}

func (m *ModerationRepository) FindReportByID(ctx context.Context, id int64) (*domain.Report, error) {
	report, err := scanReport(m.conn.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding report %d", id)
	}
	return report, nil
}

// ListReports жалобы, новые первыми. Пустой status означает все статусы.
func (m *ModerationRepository) ListReports(
	ctx context.Context,
	status domain.ReportStatusType,
	page repoargs.Page,
) ([]domain.Report, error) {
	limit := limitOrDefault(page.Limit, defaultModerationLimit, maxModerationLimit)
	rows, err := m.conn.Query(ctx, `SELECT `+reportColumns+` FROM reports
		WHERE $1 = '' OR status::text = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`, string(status), limit, page.Offset)
	if err != nil {
		return nil, convertErr(err, "listing reports")
	}
	reports, err := collect(rows, scanReport)
	if err != nil {
		return nil, convertErr(err, "listing reports")
	}
	return reports, nil
}

// UpdateReportStatus меняет статус жалобы. Для финальных статусов фиксируется время решения.
func (m *ModerationRepository) UpdateReportStatus(
	ctx context.Context,
	args repoargs.UpdateReportStatus,
) (*domain.Report, error) {
	row := m.conn.QueryRow(ctx, `UPDATE reports SET status = $2, resolved_by = $3, resolution_notes = $4,
			resolved_at = CASE WHEN $2::report_status IN ('resolved', 'dismissed') THEN now() ELSE NULL END
		WHERE id = $1 RETURNING `+reportColumns,
		args.ID, args.Status, args.ResolvedBy, args.ResolutionNotes,
	)
	report, err := scanReport(row)
	if err != nil {
		return nil, convertErr(err, "updating report %d", args.ID)
	}
	return report, nil
}

func (m *ModerationRepository) CreateAdminLog(ctx context.Context, args repoargs.CreateAdminLog) (*domain.AdminLog, error) {
	row := m.conn.QueryRow(ctx, `INSERT INTO admin_logs (admin_id, action, model_affected, object_id, ip_address, details)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+adminLogColumns,
		args.AdminID, args.Action, args.ModelAffected, args.ObjectID, args.IPAddress, args.Details,
	)
	l, err := scanAdminLog(row)
	if err != nil {
		return nil, convertErr(err, "creating admin log")
	}
	return l, nil
}

func (m *ModerationRepository) ListAdminLogs(ctx context.Context, page repoargs.Page) ([]domain.AdminLog, error) {
	limit := limitOrDefault(page.Limit, defaultModerationLimit, maxModerationLimit)
	rows, err := m.conn.Query(ctx, `SELECT `+adminLogColumns+` FROM admin_logs
		ORDER BY timestamp DESC, id DESC LIMIT $1 OFFSET $2`, limit, page.Offset)
	if err != nil {
		return nil, convertErr(err, "listing admin logs")
	}
	logs, err := collect(rows, scanAdminLog)
	if err != nil {
		return nil, convertErr(err, "listing admin logs")
	}
	return logs, nil
}

// BlockUser блокирует пользователя. Повторная блокировка перезаписывает условия.
func (m *ModerationRepository) BlockUser(ctx context.Context, args repoargs.BlockUser) (*domain.BlockedUser, error) {
	row := m.conn.QueryRow(ctx, `INSERT INTO blocked_users (user_id, blocked_by, reason, is_permanent, unblock_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET blocked_by = EXCLUDED.blocked_by, reason = EXCLUDED.reason,
			is_permanent = EXCLUDED.is_permanent, unblock_date = EXCLUDED.unblock_date, blocked_at = now()
		RETURNING `+blockedUserColumns,
		args.UserID, args.BlockedBy, args.Reason, args.IsPermanent, args.UnblockDate,
	)
	b, err := scanBlockedUser(row)
	if err != nil {
		return nil, convertErr(err, "blocking user %d", args.UserID)
	}
	return b, nil
}

// UnblockUser снимает блокировку. Если блокировки нет, возвращает domain.ErrRecordNotFound.
func (m *ModerationRepository) UnblockUser(ctx context.Context, userID int64) error {
	tag, err := m.conn.Exec(ctx, `DELETE FROM blocked_users WHERE user_id = $1`, userID)
	if err != nil {
		return convertErr(err, "unblocking user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "unblocking user %d", userID)
	}
	return nil
}

func (m *ModerationRepository) FindBlock(ctx context.Context, userID int64) (*domain.BlockedUser, error) {
	row := m.conn.QueryRow(ctx, `SELECT `+blockedUserColumns+` FROM blocked_users WHERE user_id = $1`, userID)
	b, err := scanBlockedUser(row)
	if err != nil {
		return nil, convertErr(err, "finding block of user %d", userID)
	}
	return b, nil
}

func scanReport(row scanner) (*domain.Report, error) {
	var r domain.Report
	if err := row.Scan(
		&r.ID,
		&r.CreatedAt,
		&r.ReporterID,
		&r.ReportedUserID,
		&r.ReportedProductID,
		&r.ReportedMessageID,
		&r.Type,
		&r.Description,
		&r.Status,
		&r.ResolvedBy,
		&r.ResolutionNotes,
		&r.ResolvedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &r, nil
}

func scanAdminLog(row scanner) (*domain.AdminLog, error) {
	var l domain.AdminLog
	if err := row.Scan(
		&l.ID, &l.AdminID, &l.Action, &l.ModelAffected, &l.ObjectID, &l.Timestamp, &l.IPAddress, &l.Details,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &l, nil
}

func scanBlockedUser(row scanner) (*domain.BlockedUser, error) {
	var b domain.BlockedUser
	if err := row.Scan(&b.UserID, &b.BlockedAt, &b.BlockedBy, &b.Reason, &b.IsPermanent, &b.UnblockDate); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &b, nil
}
