package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"
)

const (
	tableNotes       = "notes"
	tableEvents      = "events"
	tableCiphertexts = "ciphertexts"
	tableACL         = "acl"
)

var (
	noteColumns  = []string{"id", "owner", "created_at", "encrypted_body", "count_handle"}
	eventColumns = []string{"seq", "name", "note_id", "account", "ts"}
)

// accountKey is the stored form of an address: lower-case 0x hex.
func accountKey(account common.Address) string {
	return strings.ToLower(account.Hex())
}

func nextNoteIDQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("COALESCE(MAX(id) + 1, 0)").From(tableNotes)
}

func insertNoteQuery(b sq.StatementBuilderType, id int64, owner common.Address, createdAt int64, body []byte, handle common.Hash) sq.InsertBuilder {
	return b.Insert(tableNotes).
		Columns(noteColumns...).
		Values(id, accountKey(owner), createdAt, body, handle.Hex())
}

func insertEventQuery(b sq.StatementBuilderType, name string, noteID int64, account common.Address, ts int64) sq.InsertBuilder {
	return b.Insert(tableEvents).
		Columns("name", "note_id", "account", "ts").
		Values(name, noteID, accountKey(account), ts).
		Suffix("RETURNING seq")
}

func countNotesQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("COUNT(*)").From(tableNotes)
}

func countNotesByOwnerQuery(b sq.StatementBuilderType, owner common.Address) sq.SelectBuilder {
	return countNotesQuery(b).Where(sq.Eq{"owner": accountKey(owner)})
}

func listIDsByOwnerQuery(b sq.StatementBuilderType, owner common.Address) sq.SelectBuilder {
	return b.Select("id").From(tableNotes).Where(sq.Eq{"owner": accountKey(owner)}).OrderBy("id")
}

func getNoteQuery(b sq.StatementBuilderType, id int64) sq.SelectBuilder {
	return b.Select(noteColumns...).From(tableNotes).Where(sq.Eq{"id": id})
}

func updateCountHandleQuery(b sq.StatementBuilderType, id int64, handle common.Hash) sq.UpdateBuilder {
	return b.Update(tableNotes).Set("count_handle", handle.Hex()).Where(sq.Eq{"id": id})
}

func listEventsQuery(b sq.StatementBuilderType, fromSeq, limit uint64) sq.SelectBuilder {
	return b.Select(eventColumns...).
		From(tableEvents).
		Where(sq.Gt{"seq": int64(fromSeq)}).
		OrderBy("seq").
		Limit(limit)
}

func insertCiphertextQuery(b sq.StatementBuilderType, handle common.Hash, typ uint8, value uint64) sq.InsertBuilder {
	return b.Insert(tableCiphertexts).
		Columns("handle", "type", "value").
		Values(handle.Hex(), int64(typ), int64(value))
}

func getCiphertextQuery(b sq.StatementBuilderType, handle common.Hash) sq.SelectBuilder {
	return b.Select("handle", "type", "value").From(tableCiphertexts).Where(sq.Eq{"handle": handle.Hex()})
}

func insertACLQuery(b sq.StatementBuilderType, handle common.Hash, account common.Address) sq.InsertBuilder {
	return b.Insert(tableACL).
		Columns("handle", "account").
		Values(handle.Hex(), accountKey(account)).
		Suffix("ON CONFLICT DO NOTHING")
}

func isAllowedQuery(b sq.StatementBuilderType, handle common.Hash, account common.Address) sq.SelectBuilder {
	return b.Select("COUNT(*)").From(tableACL).Where(sq.Eq{"handle": handle.Hex(), "account": accountKey(account)})
}
