package notes

import (
	"context"
	"database/sql"
	"time"

	"github.com/booklogapp/booklog/pkg/errcodes"
	"github.com/booklogapp/booklog/pkg/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type RetrieveNoteOptions struct {
	ID *string
}

type ListNotesOptions struct {
	BookID *string
}

type UpdateNoteOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateNote(ctx context.Context, note *models.Note) error {
	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = note.CreatedAt

	if note.ID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return errors.WithStack(err)
		}
		note.ID = id.String()
	}
	if note.FavouriteQuotes == nil {
		note.FavouriteQuotes = models.StringList{}
	}

	_, err := svc.db.
		NewInsert().
		Model(note).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveNote(ctx context.Context, opts RetrieveNoteOptions) (*models.Note, error) {
	note := &models.Note{}

	q := svc.db.
		NewSelect().
		Model(note)

	if opts.ID != nil {
		q = q.Where("n.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Note")
		}
		return nil, errors.WithStack(err)
	}

	return note, nil
}

// ListNotes returns notes newest-created first. It does not verify that the
// referenced book exists.
func (svc *Service) ListNotes(ctx context.Context, opts ListNotesOptions) ([]*models.Note, error) {
	notes := []*models.Note{}

	q := svc.db.
		NewSelect().
		Model(&notes).
		Order("n.created_at DESC")

	if opts.BookID != nil {
		q = q.Where("n.book_id = ?", *opts.BookID)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	return notes, nil
}

func (svc *Service) UpdateNote(ctx context.Context, note *models.Note, opts UpdateNoteOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	note.UpdatedAt = time.Now()
	columns := append(opts.Columns, "updated_at")

	_, err := svc.db.
		NewUpdate().
		Model(note).
		Column(columns...).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) DeleteNote(ctx context.Context, id string) error {
	_, err := svc.db.
		NewDelete().
		Model((*models.Note)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return errors.WithStack(err)
}
