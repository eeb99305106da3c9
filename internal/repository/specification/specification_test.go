package specification

import (
	"testing"

	"smartmess-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func buildMessQuery(t *testing.T, specs ...Specification) *gorm.Statement {
	t.Helper()
	db := newDryRunDB(t).Model(&model.Mess{})
	for _, s := range specs {
		db = s.Apply(db)
	}
	return db.Find(&[]model.Mess{}).Statement
}

func TestVerifiedOnlyClause(t *testing.T) {
	stmt := buildMessQuery(t, VerifiedOnly{})

	assert.Contains(t, stmt.SQL.String(), "is_verified")
	assert.Contains(t, stmt.Vars, true)
}

func TestCityContainsClause(t *testing.T) {
	stmt := buildMessQuery(t, CityContains{City: "pune"})

	assert.Contains(t, stmt.SQL.String(), "city ILIKE")
	assert.Contains(t, stmt.Vars, "%pune%")
}

func TestStateContainsClause(t *testing.T) {
	stmt := buildMessQuery(t, StateContains{State: "maha"})

	assert.Contains(t, stmt.SQL.String(), "state ILIKE")
	assert.Contains(t, stmt.Vars, "%maha%")
}

func TestSearchCombinesVerifiedAndFilters(t *testing.T) {
	stmt := buildMessQuery(t, VerifiedOnly{}, CityContains{City: "pune"}, Limit{N: 100})

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "is_verified")
	assert.Contains(t, sql, "city ILIKE")
	assert.Contains(t, sql, "LIMIT")
}

func TestByIDClause(t *testing.T) {
	id := uuid.New()
	stmt := buildMessQuery(t, ByID{ID: id})

	assert.Contains(t, stmt.SQL.String(), "id = ")
	assert.Contains(t, stmt.Vars, id)
}

func TestRoleIsClause(t *testing.T) {
	db := newDryRunDB(t).Model(&model.User{})
	stmt := RoleIs{Role: "owner"}.Apply(db).Find(&[]model.User{}).Statement

	assert.Contains(t, stmt.SQL.String(), "role = ")
	assert.Contains(t, stmt.Vars, "owner")
}

func TestOrderByClause(t *testing.T) {
	stmt := buildMessQuery(t, OrderBy{Field: "created_at", Desc: true})

	assert.Contains(t, stmt.SQL.String(), "created_at DESC")
}
