package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/OmarAymanHeikal/Cms-Discovery/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// SkipDefaultTransaction keeps single-statement writes out of implicit
	// transactions so expectations stay one statement per call.
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return gdb, mock
}

// composedSQL renders the filter and sort chain without touching the
// database, so assertions run against the exact statement text.
func composedSQL(t *testing.T, db *gorm.DB, c models.SearchCriteria) (string, []any) {
	t.Helper()

	session := db.Session(&gorm.Session{DryRun: true})
	tx := applySort(applyFilters(session.Model(&models.Program{}), c), c).Find(&[]models.Program{})
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestApplyFiltersDefaultsToPublished(t *testing.T) {
	db, _ := newMockDB(t)

	sql, vars := composedSQL(t, db, models.SearchCriteria{SortBy: models.SortByCreatedAt})

	assert.Contains(t, sql, `programs.is_deleted = $1`)
	assert.Contains(t, sql, `programs.status = $2`)
	assert.Contains(t, vars, models.StatusPublished)
}

func TestApplyFiltersStatusAllLiftsStatusFilter(t *testing.T) {
	db, _ := newMockDB(t)

	all := models.StatusAll
	sql, _ := composedSQL(t, db, models.SearchCriteria{Status: &all, SortBy: models.SortByCreatedAt})

	assert.Contains(t, sql, `programs.is_deleted = $1`)
	assert.NotContains(t, sql, "programs.status")
}

func TestApplyFiltersExplicitStatus(t *testing.T) {
	db, _ := newMockDB(t)

	draft := models.StatusDraft
	sql, vars := composedSQL(t, db, models.SearchCriteria{Status: &draft, SortBy: models.SortByCreatedAt})

	assert.Contains(t, sql, "programs.status")
	assert.Contains(t, vars, models.StatusDraft)
}

func TestApplyFiltersSearchTerm(t *testing.T) {
	db, _ := newMockDB(t)

	published := models.StatusPublished
	sql, vars := composedSQL(t, db, models.SearchCriteria{
		SearchTerm: "  golang  ",
		Status:     &published,
		SortBy:     models.SortByCreatedAt,
	})

	assert.Contains(t, sql, "programs.title ILIKE")
	assert.Contains(t, sql, "programs.description ILIKE")
	assert.Contains(t, vars, "%golang%")
}

func TestApplyFiltersBlankSearchTermIgnored(t *testing.T) {
	db, _ := newMockDB(t)

	published := models.StatusPublished
	sql, _ := composedSQL(t, db, models.SearchCriteria{
		SearchTerm: "   ",
		Status:     &published,
		SortBy:     models.SortByCreatedAt,
	})

	assert.NotContains(t, sql, "ILIKE")
}

func TestApplyFiltersTypeAndLanguage(t *testing.T) {
	db, _ := newMockDB(t)

	typ := models.TypeDocumentary
	lang := models.LanguageArabic
	published := models.StatusPublished
	sql, vars := composedSQL(t, db, models.SearchCriteria{
		Type:     &typ,
		Language: &lang,
		Status:   &published,
		SortBy:   models.SortByCreatedAt,
	})

	assert.Contains(t, sql, "programs.type")
	assert.Contains(t, sql, "programs.language")
	assert.Contains(t, vars, models.TypeDocumentary)
	assert.Contains(t, vars, models.LanguageArabic)
}

func TestApplyFiltersAssociationSets(t *testing.T) {
	db, _ := newMockDB(t)

	published := models.StatusPublished
	sql, _ := composedSQL(t, db, models.SearchCriteria{
		CategoryIDs: []uuid.UUID{uuid.New(), uuid.New()},
		TagIDs:      []uuid.UUID{uuid.New()},
		Status:      &published,
		SortBy:      models.SortByCreatedAt,
	})

	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM program_categories pc")
	assert.Contains(t, sql, "pc.category_id IN")
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM program_tags pt")
	assert.Contains(t, sql, "pt.tag_id IN")
}

func TestApplyFiltersDateRange(t *testing.T) {
	db, _ := newMockDB(t)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	published := models.StatusPublished
	sql, vars := composedSQL(t, db, models.SearchCriteria{
		FromDate: &from,
		ToDate:   &to,
		Status:   &published,
		SortBy:   models.SortByCreatedAt,
	})

	assert.Contains(t, sql, "programs.published_date >=")
	assert.Contains(t, sql, "programs.published_date <=")
	assert.Contains(t, vars, from)
	assert.Contains(t, vars, to)
}

func TestApplySortWhitelistedColumnsWithTiebreak(t *testing.T) {
	db, _ := newMockDB(t)

	tests := []struct {
		name     string
		criteria models.SearchCriteria
		expected string
	}{
		{
			name:     "default ascending",
			criteria: models.SearchCriteria{SortBy: models.SortByCreatedAt},
			expected: "programs.created_at ASC, programs.id ASC",
		},
		{
			name:     "view count descending",
			criteria: models.SearchCriteria{SortBy: models.SortByViewCount, SortDescending: true},
			expected: "programs.view_count DESC, programs.id ASC",
		},
		{
			name:     "published date descending",
			criteria: models.SearchCriteria{SortBy: models.SortByPublishedDate, SortDescending: true},
			expected: "programs.published_date DESC, programs.id ASC",
		},
		{
			name:     "duration ascending",
			criteria: models.SearchCriteria{SortBy: models.SortByDuration},
			expected: "programs.duration_sec ASC, programs.id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := composedSQL(t, db, tt.criteria)
			assert.Contains(t, sql, tt.expected)
		})
	}
}

func TestSearchCountsBeforePaging(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewProgramRepository(db, zap.NewNop())

	idA := uuid.New()
	idB := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "programs"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT \* FROM "programs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status", "view_count"}).
			AddRow(idA.String(), "First", int(models.StatusPublished), 10).
			AddRow(idB.String(), "Second", int(models.StatusPublished), 5))
	mock.ExpectQuery(`SELECT \* FROM "program_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"program_id", "category_id"}))
	mock.ExpectQuery(`SELECT \* FROM "program_tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"program_id", "tag_id"}))

	published := models.StatusPublished
	result, err := repo.Search(context.Background(), models.SearchCriteria{
		Status:   &published,
		Page:     2,
		PageSize: 10,
		SortBy:   models.SortByCreatedAt,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), result.TotalCount)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.PageSize)
	assert.Equal(t, "First", result.Items[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchEmptyPageIsValid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgramRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "programs"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "programs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	published := models.StatusPublished
	result, err := repo.Search(context.Background(), models.SearchCriteria{
		Status:   &published,
		Page:     9,
		PageSize: 10,
		SortBy:   models.SortByCreatedAt,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(3), result.TotalCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDExcludesDeletedByDefault(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewProgramRepository(db, zap.NewNop())

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "programs" WHERE is_deleted = \$1 AND id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status"}).
			AddRow(id.String(), "Go Deep Dive", int(models.StatusPublished)))
	mock.ExpectQuery(`SELECT \* FROM "program_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"program_id", "category_id"}))
	mock.ExpectQuery(`SELECT \* FROM "program_tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"program_id", "tag_id"}))
	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	program, err := repo.GetByID(context.Background(), id, false)
	require.NoError(t, err)

	assert.Equal(t, id, program.ID)
	assert.Equal(t, "Go Deep Dive", program.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDIncludeDeletedSkipsFilter(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	repo := NewProgramRepository(db, zap.NewNop())

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "programs" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_deleted"}).
			AddRow(id.String(), "Archived Item", true))
	mock.ExpectQuery(`SELECT \* FROM "program_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"program_id", "category_id"}))
	mock.ExpectQuery(`SELECT \* FROM "program_tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"program_id", "tag_id"}))
	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	program, err := repo.GetByID(context.Background(), id, true)
	require.NoError(t, err)

	assert.True(t, program.IsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgramRepository(db, zap.NewNop())

	mock.ExpectQuery(`SELECT \* FROM "programs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViewCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgramRepository(db, zap.NewNop())

	id := uuid.New()
	mock.ExpectExec(`UPDATE "programs" SET "view_count"=view_count \+ 1 WHERE id = \$1 AND is_deleted = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementViewCount(context.Background(), id)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViewCountLeavesUpdatedAtAlone(t *testing.T) {
	db, _ := newMockDB(t)

	session := db.Session(&gorm.Session{DryRun: true})
	tx := session.Model(&models.Program{}).
		Where("id = ? AND is_deleted = ?", uuid.New(), false).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	require.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.True(t, strings.Contains(sql, "view_count + 1"))
	assert.NotContains(t, sql, "updated_at")
}
