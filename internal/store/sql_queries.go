package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	recordsTable        = "records"
	recordKeyColumn     = "record_key"
	recordValueColumn   = "value"
	recordUpdatedColumn = "updated_at"

	upsertRecordSuffix = "ON CONFLICT (record_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

func buildGetRecordQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(recordValueColumn).
		From(recordsTable).
		Where(sq.Eq{recordKeyColumn: key}).
		ToSql()
}

func buildListKeysQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(recordKeyColumn).
		From(recordsTable).
		OrderBy(recordKeyColumn).
		ToSql()
}

func buildUpsertRecordQuery(b sq.StatementBuilderType, key string, value []byte, now time.Time) (string, []any, error) {
	return b.Insert(recordsTable).
		Columns(recordKeyColumn, recordValueColumn, recordUpdatedColumn).
		Values(key, string(value), now.UTC()).
		Suffix(upsertRecordSuffix).
		ToSql()
}

func buildDeleteRecordsQuery(b sq.StatementBuilderType, keys []string) (string, []any, error) {
	return b.Delete(recordsTable).
		Where(sq.Eq{recordKeyColumn: keys}).
		ToSql()
}
