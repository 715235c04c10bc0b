package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/migrations"
	"github.com/MKhiriev/go-dream-cipher/models"
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &noteRepository{
		db:     newDB(db, migrations.DialectPostgres, NewPostgresErrorClassifier(), l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	note := models.Note{
		Owner:               testOwner,
		CreatedAt:           1700000000,
		EncryptedBody:       []byte("aa:bb"),
		InterpretationCount: testHandle,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(4)))
	mock.ExpectExec("INSERT INTO notes").
		WithArgs(int64(4), accountKey(testOwner), int64(1700000000), []byte("aa:bb"), testHandle.Hex()).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectQuery("INSERT INTO events").
		WithArgs(string(models.EventDreamSubmitted), int64(4), accountKey(testOwner), int64(1700000000)).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(9)))
	mock.ExpectCommit()

	created, event, err := repo.CreateNote(context.Background(), note)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("expected id 4, got %d", created.ID)
	}
	if event.Seq != 9 || event.Name != models.EventDreamSubmitted || event.NoteID != 4 || event.Account != testOwner {
		t.Errorf("unexpected event: %+v", event)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateNote_EventFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(int64(0)))
	mock.ExpectExec("INSERT INTO notes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO events").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, _, err := repo.CreateNote(context.Background(), models.Note{Owner: testOwner, EncryptedBody: []byte("x")})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateNote_BeginFailureIsRetryable(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, _, err := repo.CreateNote(context.Background(), models.Note{Owner: testOwner})
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Errorf("expected ErrBeginningTransaction, got %v", err)
	}
	if !errors.Is(err, ErrTemporarilyUnavailable) {
		t.Errorf("expected ErrTemporarilyUnavailable, got %v", err)
	}
}

func TestCountNotes(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notes$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notes WHERE owner`).
		WithArgs(accountKey(testOwner)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	total, err := repo.CountNotes(context.Background())
	if err != nil || total != 3 {
		t.Fatalf("CountNotes = %d, %v; want 3, nil", total, err)
	}

	mine, err := repo.CountNotesByOwner(context.Background(), testOwner)
	if err != nil || mine != 1 {
		t.Fatalf("CountNotesByOwner = %d, %v; want 1, nil", mine, err)
	}
}

func TestListIDsByOwner(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM notes").
		WithArgs(accountKey(testOwner)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(0)).AddRow(int64(2)))

	ids, err := repo.ListIDsByOwner(context.Background(), testOwner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 0 || ids[1] != 2 {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestListIDsByOwner_Empty(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM notes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.ListIDsByOwner(context.Background(), common.HexToAddress("0x01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", ids)
	}
}

func TestGetNote(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner, created_at, encrypted_body, count_handle FROM notes").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(noteColumns).
			AddRow(int64(1), accountKey(testOwner), int64(42), []byte("iv:ct"), testHandle.Hex()))

	note, err := repo.GetNote(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.Owner != testOwner || note.CreatedAt != 42 || string(note.EncryptedBody) != "iv:ct" || note.InterpretationCount != testHandle {
		t.Errorf("unexpected note %+v", note)
	}
}

func TestGetNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetNote(context.Background(), 7)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestUpdateInterpretationCount(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	interpreter := common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE notes SET count_handle").
		WithArgs(testHandle.Hex(), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO events").
		WithArgs(string(models.EventInterpretationCountIncremented), int64(2), accountKey(interpreter), int64(55)).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(12)))
	mock.ExpectCommit()

	event, err := repo.UpdateInterpretationCount(context.Background(), 2, testHandle, interpreter, 55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Seq != 12 || event.Account != interpreter || event.NoteID != 2 {
		t.Errorf("unexpected event %+v", event)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateInterpretationCount_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE notes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UpdateInterpretationCount(context.Background(), 99, testHandle, testOwner, 1)
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLiteBusyIsRetryable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := &noteRepository{db: newDB(db, migrations.DialectSQLite, NewSQLiteErrorClassifier(), logger.Nop()), logger: logger.Nop()}
	mock.ExpectQuery("SELECT COUNT").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, err = repo.CountNotes(context.Background())
	if !errors.Is(err, ErrTemporarilyUnavailable) {
		t.Errorf("expected ErrTemporarilyUnavailable, got %v", err)
	}
}
