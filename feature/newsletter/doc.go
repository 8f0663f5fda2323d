// Package newsletter implements the release newsletter signup.
//
// Subscribers are kept in a flat JSON file next to the other static data
// artifacts. Emails are normalized and deduplicated; a duplicate signup is a
// quiet success so the frontend never has to special-case it.
package newsletter
