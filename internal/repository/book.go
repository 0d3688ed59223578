package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/elovate/library-api/internal/errs"
	"github.com/elovate/library-api/internal/model"
)

func (r *repository) CreateBook(ctx context.Context, book model.Book) (int64, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "total_copies", "available_copies").
		Values(book.Title, book.Author, book.TotalCopies, book.AvailableCopies).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "total_copies", "available_copies").
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return r.getBook(ctx, sq.Eq{"id": id})
}

// GetBookByTitle returns the first match by lowest id; titles are not unique.
func (r *repository) GetBookByTitle(ctx context.Context, title string) (model.Book, error) {
	return r.getBook(ctx, sq.Eq{"title": title})
}

func (r *repository) getBook(ctx context.Context, where sq.Eq) (model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "total_copies", "available_copies").
		From(booksTableName).
		Where(where).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook applies a partial update inside one transaction, locking the
// row so the clamp of available_copies cannot race a concurrent checkout.
func (r *repository) UpdateBook(ctx context.Context, id int64, upd model.BookUpdate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var book model.Book
	q := `select id, title, author, total_copies, available_copies from books where id = $1 for update`
	if err := tx.GetContext(ctx, &book, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}

	if upd.Title != nil {
		book.Title = *upd.Title
	}
	if upd.Author != nil {
		book.Author = *upd.Author
	}
	if upd.TotalCopies != nil {
		book.TotalCopies = *upd.TotalCopies
	}
	if upd.AvailableCopies != nil {
		book.AvailableCopies = *upd.AvailableCopies
	}
	book.AvailableCopies = model.ClampCopies(book.AvailableCopies, book.TotalCopies)

	query, args, err := qb.Update(booksTableName).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("total_copies", book.TotalCopies).
		Set("available_copies", book.AvailableCopies).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
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
