package users

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMap_FlattensEveryRecord(t *testing.T) {
	records := []Record{
		{
			Gender:   "male",
			Name:     Name{First: "John", Last: "Smith"},
			Location: Location{City: "Leeds", State: "West Yorkshire", Country: "United Kingdom"},
			Email:    "john.smith@example.com",
			Login:    Login{Username: "John123"},
			DOB:      DOB{Age: 40},
			Phone:    "01-234-5678",
			Nat:      "GB",
		},
		{
			Gender: "female",
			Name:   Name{First: "Maria", Last: "Garcia"},
			Email:  "maria.garcia@example.com",
			DOB:    DOB{Age: 22},
		},
	}

	items := Map(records)
	if len(items) != len(records) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(records))
	}
	for i, r := range records {
		it := items[i]
		if it.Email != r.Email {
			t.Fatalf("items[%d].Email = %q, want %q", i, it.Email, r.Email)
		}
		if want := r.Name.First + " " + r.Name.Last; it.Name != want {
			t.Fatalf("items[%d].Name = %q, want %q", i, it.Name, want)
		}
		if want := r.Location.City + " " + r.Location.State + " " + r.Location.Country; it.Location != want {
			t.Fatalf("items[%d].Location = %q, want %q", i, it.Location, want)
		}
		if it.Age != r.DOB.Age || it.Username != r.Login.Username || it.Gender != r.Gender {
			t.Fatalf("items[%d] = %#v, fields not copied from %#v", i, it, r)
		}
	}
	if items[0].Location != "Leeds West Yorkshire United Kingdom" {
		t.Fatalf("Location = %q", items[0].Location)
	}
}

func TestMap_MissingNestedFieldsJoinEmpty(t *testing.T) {
	items := Map([]Record{{Email: "x@example.com"}})
	if items[0].Location != "  " {
		t.Fatalf("Location = %q, want two spaces", items[0].Location)
	}
	if items[0].Name != " " {
		t.Fatalf("Name = %q, want one space", items[0].Name)
	}
}

func TestMap_Empty(t *testing.T) {
	if got := Map(nil); len(got) != 0 {
		t.Fatalf("Map(nil) = %#v, want empty", got)
	}
}

func TestItemField(t *testing.T) {
	it := Item{Username: "u", Email: "e", Age: 31, Gender: "female", Phone: "p", Location: "l", Name: "n", Nat: "FR"}
	cases := map[string]string{
		"username": "u",
		"email":    "e",
		"age":      "31",
		"gender":   "female",
		"phone":    "p",
		"location": "l",
		"name":     "n",
		"nat":      "FR",
		"bogus":    "",
	}
	for field, want := range cases {
		if got := it.Field(field); got != want {
			t.Fatalf("Field(%q) = %q, want %q", field, got, want)
		}
	}
	if it.Key() != "e" {
		t.Fatalf("Key() = %q, want e", it.Key())
	}
}

func TestDecode(t *testing.T) {
	records, err := Decode(strings.NewReader(`{"results":[{"email":"a@b.c","login":{"username":"abc"},"dob":{"age":5},"extra":true}]}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(records) != 1 || records[0].Login.Username != "abc" || records[0].DOB.Age != 5 {
		t.Fatalf("records = %#v", records)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"info":{}}`)); !errors.Is(err, ErrNoResults) {
		t.Fatalf("Decode without results err = %v, want ErrNoResults", err)
	}
	_, err := Decode(strings.NewReader(`{"results": [`))
	if err == nil || !strings.Contains(err.Error(), "decode fixture") {
		t.Fatalf("Decode malformed err = %v, want decode fixture error", err)
	}
	records, err := Decode(strings.NewReader(`{"results": []}`))
	if err != nil || len(records) != 0 {
		t.Fatalf("Decode empty = %#v, %v; want empty, nil", records, err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte(`{"results":[{"email":"a@b.c"},{"email":"d@e.f"}]}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(records) != 2 || records[1].Email != "d@e.f" {
		t.Fatalf("records = %#v", records)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadFile missing err = %v, want os.ErrNotExist", err)
	}
}

func TestDefault_EmbeddedFixtureHasUniqueKeys(t *testing.T) {
	records, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	if len(records) != 25 {
		t.Fatalf("len(records) = %d, want 25", len(records))
	}
	seen := make(map[string]bool)
	for _, it := range Map(records) {
		if it.Email == "" {
			t.Fatalf("row with empty key: %#v", it)
		}
		if seen[it.Email] {
			t.Fatalf("duplicate key %q", it.Email)
		}
		seen[it.Email] = true
	}
}
