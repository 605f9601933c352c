package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"pdfsettings/internal/model"
	"pdfsettings/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsColumns = []string{"app_id", "exclude_from_pdf", "updated_at"}

func TestSettingsPostgres_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSettingsPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	tests := []struct {
		name    string
		exclude []string
		arg     any
		stored  any
	}{
		{"populated list", []string{"summary", "attachments"}, `["summary","attachments"]`, `["summary","attachments"]`},
		{"empty list", []string{}, `[]`, `[]`},
		{"unset list", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &model.AppSettings{AppID: "ttd/app", UpdatedAt: now}
			in.Settings.SetExcludeFromPdf(tt.exclude)

			mock.ExpectQuery("INSERT INTO pdf_component_settings").
				WithArgs("ttd/app", tt.arg, now).
				WillReturnRows(sqlmock.NewRows(settingsColumns).AddRow("ttd/app", tt.stored, now))

			out, err := repo.Upsert(ctx, in)
			require.NoError(t, err)
			assert.Equal(t, "ttd/app", out.AppID)
			assert.Equal(t, tt.exclude, out.Settings.GetExcludeFromPdf())
			assert.Equal(t, tt.exclude == nil, out.Settings.GetExcludeFromPdf() == nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingsPostgres_FindByApp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSettingsPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pdf_component_settings WHERE app_id = ?").
			WithArgs("ttd/app").
			WillReturnRows(sqlmock.NewRows(settingsColumns).AddRow("ttd/app", `["a"]`, time.Now()))

		s, err := repo.FindByApp(ctx, "ttd/app")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, s.Settings.ExcludeFromPdf)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pdf_component_settings WHERE app_id = ?").
			WithArgs("ttd/missing").
			WillReturnError(sql.ErrNoRows)

		s, err := repo.FindByApp(ctx, "ttd/missing")
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, s)
	})

	t.Run("corrupt column", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pdf_component_settings WHERE app_id = ?").
			WithArgs("ttd/app").
			WillReturnRows(sqlmock.NewRows(settingsColumns).AddRow("ttd/app", `{"a":1}`, time.Now()))

		_, err := repo.FindByApp(ctx, "ttd/app")
		assert.ErrorContains(t, err, "decode exclude_from_pdf")
	})
}

func TestSettingsPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSettingsPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM pdf_component_settings").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery("SELECT (.+) FROM pdf_component_settings ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(settingsColumns).
				AddRow("ttd/a", `["x"]`, time.Now()).
				AddRow("ttd/b", nil, time.Now()))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Items, 2)
		assert.Nil(t, res.Items[1].Settings.ExcludeFromPdf)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM pdf_component_settings").
			WillReturnError(errors.New("count failed"))

		_, err := repo.List(ctx, repository.PageQuery{Limit: 10})
		assert.EqualError(t, err, "count failed")
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM pdf_component_settings").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM pdf_component_settings ORDER BY").
			WithArgs(5, 5).
			WillReturnError(errors.New("query failed"))

		_, err := repo.List(ctx, repository.PageQuery{Limit: 5, Offset: 5})
		assert.EqualError(t, err, "query failed")
	})
}

func TestSettingsPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSettingsPostgres(db)

	mock.ExpectExec("DELETE FROM pdf_component_settings WHERE app_id = ?").
		WithArgs("ttd/app").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "ttd/app"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
