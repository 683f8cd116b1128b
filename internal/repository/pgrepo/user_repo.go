package pgrepo

import (
	"context"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/repository/repoargs"
	"github.com/fsdevblog/village-connect/pkg/uow"
)

const userColumns = `id, created_at, updated_at, username, encrypted_password, email, phone_number,
	user_type, is_verified, preferred_language`

const profileColumns = `user_id, picture_key, state, lga, community, bio, date_of_birth, updated_at`

const verificationColumns = `user_id, certificate_key, rc_number, tin, status, notes, submitted_at, verified_at`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser создает юзера в базе данных. В случае конфликта юзернейма или телефона возвращает ошибку
// domain.ErrDuplicateKey, во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `INSERT INTO users
		(username, encrypted_password, email, phone_number, user_type, preferred_language)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+userColumns,
		user.Username, user.Password, user.Email, user.PhoneNumber, user.UserType, user.PreferredLanguage,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return dbUser, nil
}

// FindUserByUsername ищет юзера по его юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return dbUser, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return dbUser, nil
}

func (u *UserRepository) SetVerified(ctx context.Context, id int64, verified bool) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `UPDATE users SET is_verified = $2, updated_at = now()
		WHERE id = $1 RETURNING `+userColumns, id, verified)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting user %d verified", id)
	}
	return dbUser, nil
}

func (u *UserRepository) CreateProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := u.conn.QueryRow(ctx, `INSERT INTO profiles (user_id) VALUES ($1) RETURNING `+profileColumns, userID)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "creating profile for user %d", userID)
	}
	return profile, nil
}

func (u *UserRepository) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "getting profile for user %d", userID)
	}
	return profile, nil
}

// UpdateProfile обновляет профиль и предпочитаемый язык пользователя.
// Должен выполняться в транзакции, так как затрагивает две таблицы.
func (u *UserRepository) UpdateProfile(ctx context.Context, args repoargs.UpdateProfile) (*domain.Profile, error) {
	if _, err := u.conn.Exec(ctx, `UPDATE users SET preferred_language = $2, updated_at = now() WHERE id = $1`,
		args.UserID, args.PreferredLanguage); err != nil {
		return nil, convertErr(err, "updating language of user %d", args.UserID)
	}
	row := u.conn.QueryRow(ctx, `UPDATE profiles
		SET state = $2, lga = $3, community = $4, bio = $5, date_of_birth = $6, updated_at = now()
		WHERE user_id = $1 RETURNING `+profileColumns,
		args.UserID, args.State, args.LGA, args.Community, args.Bio, args.DateOfBirth,
	)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "updating profile of user %d", args.UserID)
	}
	return profile, nil
}

func (u *UserRepository) SetProfilePicture(ctx context.Context, userID int64, key string) (*domain.Profile, error) {
	row := u.conn.QueryRow(ctx, `UPDATE profiles SET picture_key = $2, updated_at = now()
		WHERE user_id = $1 RETURNING `+profileColumns, userID, key)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "setting picture of user %d", userID)
	}
	return profile, nil
}

// UpsertBusinessVerification создает заявку на верификацию бизнеса. Повторная подача сбрасывает статус в pending.
// Если новый сертификат не передан, остается предыдущий.
func (u *UserRepository) UpsertBusinessVerification(
	ctx context.Context,
	args repoargs.UpsertBusinessVerification,
) (*domain.BusinessVerification, error) {
	row := u.conn.QueryRow(ctx, `INSERT INTO business_verifications (user_id, certificate_key, rc_number, tin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			certificate_key = COALESCE(EXCLUDED.certificate_key, business_verifications.certificate_key),
			rc_number = EXCLUDED.rc_number,
			tin = EXCLUDED.tin,
			status = 'pending',
			notes = '',
			submitted_at = now(),
			verified_at = NULL
		RETURNING `+verificationColumns,
		args.UserID, args.CertificateKey, args.RCNumber, args.TIN,
	)
	bv, err := scanVerification(row)
	if err != nil {
		return nil, convertErr(err, "upserting business verification of user %d", args.UserID)
	}
	return bv, nil
}

func (u *UserRepository) GetBusinessVerification(ctx context.Context, userID int64) (*domain.BusinessVerification, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+verificationColumns+` FROM business_verifications WHERE user_id = $1`,
		userID)
	bv, err := scanVerification(row)
	if err != nil {
		return nil, convertErr(err, "getting business verification of user %d", userID)
	}
	return bv, nil
}

// ReviewBusinessVerification выставляет решение модератора. verified_at заполняется только при одобрении.
func (u *UserRepository) ReviewBusinessVerification(
	ctx context.Context,
	args repoargs.ReviewBusinessVerification,
) (*domain.BusinessVerification, error) {
	row := u.conn.QueryRow(ctx, `UPDATE business_verifications
		SET status = $2, notes = $3,
			verified_at = CASE WHEN $2::verification_status = 'approved' THEN now() ELSE NULL END
		WHERE user_id = $1 RETURNING `+verificationColumns,
		args.UserID, args.Status, args.Notes,
	)
	bv, err := scanVerification(row)
	if err != nil {
		return nil, convertErr(err, "reviewing business verification of user %d", args.UserID)
	}
	return bv, nil
}

func scanUser(row scanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.EncryptedPassword,
		&user.Email,
		&user.PhoneNumber,
		&user.UserType,
		&user.IsVerified,
		&user.PreferredLanguage,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}

func scanProfile(row scanner) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(
		&p.UserID, &p.PictureKey, &p.State, &p.LGA, &p.Community, &p.Bio, &p.DateOfBirth, &p.UpdatedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

func scanVerification(row scanner) (*domain.BusinessVerification, error) {
	var bv domain.BusinessVerification
	if err := row.Scan(
		&bv.UserID, &bv.CertificateKey, &bv.RCNumber, &bv.TIN, &bv.Status, &bv.Notes, &bv.SubmittedAt, &bv.VerifiedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &bv, nil
}
