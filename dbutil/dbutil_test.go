package dbutil

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestEncodeFieldPair(t *testing.T) {
	tests := []struct {
		name, typeDesc, pk, autoInc string
		expected                    string
		desc                        string
	}{
		{"name", "VARCHAR(20)", "id", "", "name VARCHAR(20)", "Plain field"},
		{"name", "VARCHAR(20)", "name", "", "name VARCHAR(20) PRIMARY KEY", "Primary key field"},
		{"name", "VARCHAR(20)", "id", "blah", "name VARCHAR(20)", "Auto-inc name matches nothing"},
		{"name", "VARCHAR(20)", "id", "name", "name VARCHAR(20) AUTO_INCREMENT", "Auto-inc field"},
		{"name", "VARCHAR(20)", "name", "name", "name VARCHAR(20) PRIMARY KEY AUTO_INCREMENT", "Both annotations"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := EncodeFieldPair(tt.name, tt.typeDesc, tt.pk, tt.autoInc)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuildFieldDescriptor(t *testing.T) {
	fields := []string{"name VARCHAR(20)", "id INT", "freq DOUBLE"}

	desc, err := BuildFieldDescriptor(fields, "id", "")
	if err != nil {
		t.Fatalf("BuildFieldDescriptor: %v", err)
	}
	want := "(name VARCHAR(20), id INT PRIMARY KEY, freq DOUBLE)"
	if desc != want {
		t.Errorf("got %q, want %q", desc, want)
	}

	if n := strings.Count(desc, "PRIMARY KEY"); n != 1 {
		t.Errorf("PRIMARY KEY count = %d, want 1", n)
	}

	desc, err = BuildFieldDescriptor(fields, "id", "freq")
	if err != nil {
		t.Fatalf("BuildFieldDescriptor with autoInc: %v", err)
	}
	if n := strings.Count(desc, "AUTO_INCREMENT"); n != 1 {
		t.Errorf("AUTO_INCREMENT count = %d, want 1", n)
	}
	if !strings.Contains(desc, "freq DOUBLE AUTO_INCREMENT") {
		t.Errorf("AUTO_INCREMENT attached to wrong field: %q", desc)
	}

	// Auto-inc name that matches no field adds no annotation.
	desc, err = BuildFieldDescriptor(fields, "id", "missing")
	if err != nil {
		t.Fatalf("BuildFieldDescriptor: %v", err)
	}
	if strings.Contains(desc, "AUTO_INCREMENT") {
		t.Errorf("unexpected AUTO_INCREMENT in %q", desc)
	}
}

func TestBuildFieldDescriptorErrors(t *testing.T) {
	if _, err := BuildFieldDescriptor([]string{"nameonly"}, "nameonly", ""); err == nil {
		t.Error("expected error for field without type")
	}
	if _, err := BuildFieldDescriptor([]string{"id INT"}, "missing", ""); err == nil {
		t.Error("expected error for absent primary key")
	}
}

func TestBuildCreateCommand(t *testing.T) {
	if got := BuildCreateCommand("foobar", false); got != "CREATE TABLE foobar" {
		t.Errorf("got %q", got)
	}
	if got := BuildCreateCommand("foobar", true); got != "CREATE TABLE IF NOT EXISTS foobar" {
		t.Errorf("got %q", got)
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateDropTable(t *testing.T) {
	db := openTestDB(t)

	fields := []string{"id INT", "name VARCHAR(20)", "freq DOUBLE"}
	if err := CreateTable(db, "words", fields, "id", "", false); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}

	// Creating the same table again fails without IF NOT EXISTS...
	if err := CreateTable(db, "words", fields, "id", "", false); err == nil {
		t.Error("expected error creating duplicate table")
	}
	// ...and succeeds with it.
	if err := CreateTable(db, "words", fields, "id", "", true); err != nil {
		t.Errorf("CreateTable IF NOT EXISTS: %v", err)
	}

	if err := DropTable(db, "words"); err != nil {
		t.Fatalf("DropTable: %v", err)
	}
	if err := DropTable(db, "words"); err == nil {
		t.Error("expected error dropping missing table")
	}
}

func TestColumn(t *testing.T) {
	db := openTestDB(t)

	if err := CreateTable(db, "writers", []string{"id INT", "name VARCHAR(40)"}, "id", "", false); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	for i, name := range []string{"Tanizaki", "Woolf", "Borges"} {
		if _, err := db.Exec("INSERT INTO writers (id, name) VALUES (?, ?)", i+1, name); err != nil {
			t.Fatal(err)
		}
	}

	names, err := Column(db, "writers", "name", 0)
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if len(names) != 3 || names[0] != "Tanizaki" || names[2] != "Borges" {
		t.Errorf("Column = %v", names)
	}

	limited, err := Column(db, "writers", "id", 2)
	if err != nil {
		t.Fatalf("Column with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited Column = %v, want 2 rows", limited)
	}

	if _, err := Column(db, "writers", "nope", 0); err == nil {
		t.Error("expected error for missing column")
	}
}

func TestRunQueryAndExec(t *testing.T) {
	db := openTestDB(t)

	if err := Exec(db, "CREATE TABLE t (x INT PRIMARY KEY)"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if err := Exec(db, "INSERT INTO t VALUES (7)"); err != nil {
		t.Fatalf("Exec insert: %v", err)
	}

	rows, err := RunQuery(db, "SELECT x FROM t")
	if err != nil {
		t.Fatalf("RunQuery: %v", err)
	}
	defer rows.Close()

	var x int
	if !rows.Next() {
		t.Fatal("no rows")
	}
	if err := rows.Scan(&x); err != nil {
		t.Fatal(err)
	}
	if x != 7 {
		t.Errorf("x = %d, want 7", x)
	}

	if _, err := RunQuery(db, "SELECT broken FROM nowhere"); err == nil {
		t.Error("expected error for bad query")
	}
}
