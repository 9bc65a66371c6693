// Package users loads the user fixture and flattens its nested records into
// the rows shown by the table.
//
// The fixture follows the randomuser.me layout: a JSON object whose "results"
// array holds one record per user. Only the fields the table displays are
// decoded. Mapping is one-to-one and keeps fixture order; the email address is
// the row key.
//
// A copy of the fixture is embedded so the binary works without any files:
//
//	records, err := users.Load("")      // embedded fixture
//	records, err := users.Load(path)    // explicit file
//	items := users.Map(records)
package users
