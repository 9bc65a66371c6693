package users

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

//go:embed usersmock.json
var defaultFixture []byte

// ErrNoResults is returned when a fixture has no "results" key.
var ErrNoResults = errors.New("fixture has no results")

// Record mirrors one entry of the fixture's results array.
type Record struct {
	Gender   string   `json:"gender"`
	Name     Name     `json:"name"`
	Location Location `json:"location"`
	Email    string   `json:"email"`
	Login    Login    `json:"login"`
	DOB      DOB      `json:"dob"`
	Phone    string   `json:"phone"`
	Nat      string   `json:"nat"`
}

// Name holds the person's given and family names.
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Location is the subset of the address the table shows.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Login carries account identifiers.
type Login struct {
	Username string `json:"username"`
}

// DOB carries the date-of-birth block; only the age is used.
type DOB struct {
	Age int `json:"age"`
}

// Item is the flat, display-ready projection of a Record.
type Item struct {
	Username string
	Email    string
	Age      int
	Gender   string
	Phone    string
	Location string
	Name     string
	Nat      string
}

// Key returns the row identity.
func (it Item) Key() string {
	return it.Email
}

// Field returns the string form of the named field, or "" for unknown names.
func (it Item) Field(name string) string {
	switch name {
	case "username":
		return it.Username
	case "email":
		return it.Email
	case "age":
		return strconv.Itoa(it.Age)
	case "gender":
		return it.Gender
	case "phone":
		return it.Phone
	case "location":
		return it.Location
	case "name":
		return it.Name
	case "nat":
		return it.Nat
	default:
		return ""
	}
}

// FromRecord flattens a single record.
func FromRecord(r Record) Item {
	return Item{
		Username: r.Login.Username,
		Email:    r.Email,
		Age:      r.DOB.Age,
		Gender:   r.Gender,
		Phone:    r.Phone,
		Location: r.Location.City + " " + r.Location.State + " " + r.Location.Country,
		Name:     r.Name.First + " " + r.Name.Last,
		Nat:      r.Nat,
	}
}

// Map flattens records in order, one item per record.
func Map(records []Record) []Item {
	items := make([]Item, len(records))
	for i, r := range records {
		items[i] = FromRecord(r)
	}
	return items
}

// Decode reads a fixture document of the form {"results": [...]}.
func Decode(r io.Reader) ([]Record, error) {
	var doc struct {
		Results *[]Record `json:"results"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if doc.Results == nil {
		return nil, ErrNoResults
	}
	return *doc.Results, nil
}

// LoadFile decodes the fixture at path.
func LoadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Default decodes the fixture compiled into the binary.
func Default() ([]Record, error) {
	return Decode(bytes.NewReader(defaultFixture))
}

// Load returns the records at path, or the built-in fixture when path is empty.
func Load(path string) ([]Record, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
