// Package domain holds the raw and canonical post types for ingestion
package domain

import (
	perr "sentimenttech/internal/platform/errors"
)

// RawComment is one unnormalized social-platform record about a ticker.
// Pointer counters distinguish an absent field from a legitimate zero.
// sentiment is a precomputed label supplied by the platform pipeline, if any
type RawComment struct {
	ID        string `json:"id" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Upvotes   *int   `json:"upvotes" validate:"required,min=0"`
	Replies   *int   `json:"replies" validate:"required,min=0"`
	Time      string `json:"time" validate:"required"`
	Source    string `json:"source" validate:"required"`
	Sentiment string `json:"sentiment,omitempty"`
}

// Post is the canonical, schema-stable record returned to API consumers.
// StockMentions is nil (absent on the wire) when the content has no cashtags;
// consumers rely on the absent/empty distinction
type Post struct {
	ID            string   `json:"id"`
	Author        string   `json:"author"`
	Content       string   `json:"content"`
	Likes         int      `json:"likes"`
	Replies       int      `json:"replies"`
	Timestamp     string   `json:"timestamp"`
	Source        string   `json:"source"`
	StockMentions []string `json:"stockMentions,omitempty"`
	Sentiment     string   `json:"sentiment,omitempty"`
}

// MissingField builds the error for a required RawComment field that is absent
func MissingField(name string) error {
	return perr.WithField(perr.Validationf("missing required field %q", name), name)
}

// IsMissingField reports whether err is a missing-field failure, and for which field
func IsMissingField(err error) (string, bool) {
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		return "", false
	}
	f := perr.FieldOf(err)
	return f, f != ""
}

// Validate checks the required fields in declaration order and returns the
// first MissingField failure. Empty strings count as missing: the boundary
// validates shape before anything enters the normalizer
func (c RawComment) Validate() error {
	switch {
	case c.ID == "":
		return MissingField("id")
	case c.Author == "":
		return MissingField("author")
	case c.Content == "":
		return MissingField("content")
	case c.Upvotes == nil:
		return MissingField("upvotes")
	case c.Replies == nil:
		return MissingField("replies")
	case c.Time == "":
		return MissingField("time")
	case c.Source == "":
		return MissingField("source")
	}
	return nil
}
