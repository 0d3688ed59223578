package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/elovate/library-api/internal/errs"
	"github.com/elovate/library-api/internal/model"
)

func (r *repository) CreateUser(ctx context.Context, user model.User) (int64, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("username", "email", "password_hash", "is_admin").
		Values(user.Username, user.Email, user.PasswordHash, user.IsAdmin).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, q, args...); err != nil {
		if isUniqueViolation(err) {
			return 0, errs.ErrDuplicateEmail
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	q, args, err := qb.Select("id", "username", "email", "password_hash", "is_admin").
		From(usersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var users []model.User
	if err := r.db.SelectContext(ctx, &users, q, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username})
}

func (r *repository) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	q, args, err := qb.Select("id", "username", "email", "password_hash", "is_admin").
		From(usersTableName).
		Where(where).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) UpdateUser(ctx context.Context, id int64, upd model.UserUpdate) error {
	if upd.Username == nil && upd.Email == nil && upd.Password == nil && upd.IsAdmin == nil {
		// nothing to set, but an unknown id must still be a not found
		var one int
		if err := r.db.GetContext(ctx, &one, `select 1 from users where id = $1`, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		return nil
	}
	q := qb.Update(usersTableName).Where(sq.Eq{"id": id})
	if upd.Username != nil {
		q = q.Set("username", *upd.Username)
	}
	if upd.Email != nil {
		q = q.Set("email", *upd.Email)
	}
	if upd.Password != nil {
		// upd.Password already holds the re-hashed credential here.
		q = q.Set("password_hash", *upd.Password)
	}
	if upd.IsAdmin != nil {
		q = q.Set("is_admin", *upd.IsAdmin)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrDuplicateEmail
		}
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// DeleteUser cascades deletion of the user's loans. Availability counters
// on affected books are left as-is, matching the original behavior.
func (r *repository) DeleteUser(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(usersTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
