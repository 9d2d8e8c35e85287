package querybuilder

import (
	"reflect"
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	sql, args, err := Select("public_id", "home_team").
		From("games").
		Where(Eq("sport", "nfl"), Eq("week", 3)).
		OrderBy("kickoff_at ASC", "public_id ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	wantSQL := "SELECT public_id, home_team FROM games WHERE sport = $1 AND week = $2 ORDER BY kickoff_at ASC, public_id ASC"
	if sql != wantSQL {
		t.Fatalf("sql = %q, want %q", sql, wantSQL)
	}
	if !reflect.DeepEqual(args, []any{"nfl", 3}) {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectBuilderRange(t *testing.T) {
	from := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)
	to := from.Add(96 * time.Hour)

	sql, args, err := Select("public_id").
		From("games").
		Where(Eq("sport", "cfb"), Gte("kickoff_at", from), Lte("kickoff_at", to)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	wantSQL := "SELECT public_id FROM games WHERE sport = $1 AND kickoff_at >= $2 AND kickoff_at <= $3"
	if sql != wantSQL {
		t.Fatalf("sql = %q", sql)
	}
	if len(args) != 3 || args[1] != from || args[2] != to {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectBuilderNullAndIn(t *testing.T) {
	sql, args, err := Select("public_id").
		From("picks").
		Where(Eq("user_id", "u1"), IsNull("group_id"), In("market", []any{"spreads", "totals"})).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	wantSQL := "SELECT public_id FROM picks WHERE user_id = $1 AND group_id IS NULL AND market IN ($2, $3)"
	if sql != wantSQL {
		t.Fatalf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"u1", "spreads", "totals"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectBuilderEmptyIn(t *testing.T) {
	sql, _, err := Select("public_id").
		From("picks").
		Where(In("market", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}
	if sql != "SELECT public_id FROM picks WHERE 1=0" {
		t.Fatalf("sql = %q", sql)
	}
}

func TestSelectBuilderValidation(t *testing.T) {
	if _, _, err := Select().From("games").ToSQL(); err == nil {
		t.Fatal("expected error for missing columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestInsertBuilderSuffix(t *testing.T) {
	sql, args, err := InsertInto("picks").
		Columns("user_id", "game_public_id", "market").
		Values("u1", "g1", "spreads").
		Suffix("ON CONFLICT (user_id, game_public_id) DO UPDATE SET market = EXCLUDED.market RETURNING public_id").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	wantSQL := "INSERT INTO picks (user_id, game_public_id, market) VALUES ($1, $2, $3) " +
		"ON CONFLICT (user_id, game_public_id) DO UPDATE SET market = EXCLUDED.market RETURNING public_id"
	if sql != wantSQL {
		t.Fatalf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"u1", "g1", "spreads"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertBuilderRowMismatch(t *testing.T) {
	_, _, err := InsertInto("games").
		Columns("a", "b").
		Values("only-one").
		ToSQL()
	if err == nil {
		t.Fatal("expected error for row/column mismatch")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		PublicID  string `db:"public_id"`
		UserID    string `db:"user_id"`
		Generated string `db:"updated_at,readonly"`
		Ignored   string `db:"-"`
	}

	sql, args, err := InsertModel("picks", row{PublicID: "p1", UserID: "u1", Generated: "x", Ignored: "y"}, "RETURNING created_at")
	if err != nil {
		t.Fatalf("InsertModel: %v", err)
	}

	wantSQL := "INSERT INTO picks (public_id, user_id) VALUES ($1, $2) RETURNING created_at"
	if sql != wantSQL {
		t.Fatalf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"p1", "u1"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertModelRejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("picks", 42, ""); err == nil {
		t.Fatal("expected error for non-struct model")
	}
	var p *struct{}
	if _, _, err := InsertModel("picks", p, ""); err == nil {
		t.Fatal("expected error for nil model")
	}
}
