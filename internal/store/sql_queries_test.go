// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildGetRecordQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildGetRecordQuery(postgresBuilder, "state")
	require.NoError(t, err)

	require.Equal(t, []any{"state"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select value")
	require.Contains(t, q, "from records")
	require.Contains(t, q, "where record_key = $1")
}

func Test_buildListKeysQuery(t *testing.T) {
	query, args, err := buildListKeysQuery(sqliteBuilder)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t, "SELECT record_key FROM records ORDER BY record_key", query)
}

func Test_buildUpsertRecordQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	tests := []struct {
		name         string
		builder      sq.StatementBuilderType
		placeholders []string
	}{
		{name: "sqlite", builder: sqliteBuilder, placeholders: []string{"(?,?,?)"}},
		{name: "postgres", builder: postgresBuilder, placeholders: []string{"($1,$2,$3)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpsertRecordQuery(tt.builder, "state", []byte(`{"v":350}`), now)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Contains(t, q, "insert into records (record_key,value,updated_at)")
			for _, p := range tt.placeholders {
				assert.Contains(t, query, p)
			}
			assert.Contains(t, q, "on conflict (record_key) do update")

			require.Len(t, args, 3)
			assert.Equal(t, "state", args[0])
			assert.Equal(t, `{"v":350}`, args[1])
			assert.Equal(t, now.UTC(), args[2])
		})
	}
}

func Test_buildDeleteRecordsQuery(t *testing.T) {
	query, args, err := buildDeleteRecordsQuery(postgresBuilder, []string{"state", "pin-metadata"})
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM records WHERE record_key IN ($1,$2)", query)
	assert.Equal(t, []any{"state", "pin-metadata"}, args)
}
