package numbering

import (
	"context"
	"errors"
	"fmt"

	"projektrack-backend/internal/domain/sequence"
	"projektrack-backend/internal/domain/uow"

	"gorm.io/gorm"
)

// Kind selects the identifier prefix.
type Kind string

const (
	KindProject Kind = "PROJ"
	KindNotice  Kind = "NOC"
)

var ErrUnknownKind = errors.New("unknown numbering kind")

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Format renders PREFIX/YYYY/NNN with a zero-padded 3-digit counter.
func Format(kind Kind, year, n int) string {
	return fmt.Sprintf("%s/%04d/%03d", kind, year, n)
}

// Next issues the next identifier for (kind, year). Issuance is serialized
// through a locked counter row; a missing counter is seeded from the highest
// already-persisted identifier of that kind and year, so numbering continues
// correctly for years that predate the counter table. Two concurrent callers
// can race the first insert for a year; the loser retries against the row
// the winner created. Gaps are tolerated, duplicates are not.
func (u *Usecase) Next(ctx context.Context, kind Kind, year int) (string, error) {
	issue := func() (string, error) {
		var out string
		err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
			seq, err := r.Sequences.GetForUpdate(ctx, string(kind), year)
			switch {
			case err == nil:
			case errors.Is(err, gorm.ErrRecordNotFound):
				start, serr := seed(ctx, r, kind, year)
				if serr != nil {
					return serr
				}
				seq = &sequence.Sequence{Kind: string(kind), Year: year, Last: start}
				if cerr := r.Sequences.Create(ctx, seq); cerr != nil {
					return cerr
				}
			default:
				return err
			}
			seq.Last++
			if err := r.Sequences.Save(ctx, seq); err != nil {
				return err
			}
			out = Format(kind, year, seq.Last)
			return nil
		})
		return out, err
	}

	out, err := issue()
	if uow.IsConflict(err) {
		out, err = issue()
	}
	return out, err
}

func seed(ctx context.Context, r uow.Repos, kind Kind, year int) (int, error) {
	switch kind {
	case KindProject:
		return r.Projects.MaxRecordSuffix(ctx, string(kind), year)
	case KindNotice:
		return r.Notices.MaxNoticeSuffix(ctx, string(kind), year)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
