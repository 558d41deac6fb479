package errors_test

import (
	stderrs "errors"
	"net/http"
	"testing"

	perr "sentimenttech/internal/platform/errors"
)

func TestWrap_PreservesCauseAndMessage(t *testing.T) {
	cause := stderrs.New("connection refused")
	err := perr.Wrap(cause, perr.ErrorCodeUnavailable, "reddit search request failed")

	if !stderrs.Is(err, cause) {
		t.Fatal("expected wrapped cause to satisfy errors.Is")
	}
	if got := perr.MessageOf(err); got != "reddit search request failed" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := err.Error(); got != "reddit search request failed: connection refused" {
		t.Fatalf("unexpected Error() %q", got)
	}
	if perr.Root(err) != cause {
		t.Fatal("expected Root to return the original cause")
	}
}

func TestCodeOf_ForeignErrorsAreUnknown(t *testing.T) {
	if got := perr.CodeOf(stderrs.New("plain")); got != perr.ErrorCodeUnknown {
		t.Fatalf("expected unknown got %v", got)
	}
	if got := perr.CodeOf(nil); got != perr.ErrorCodeUnknown {
		t.Fatalf("expected unknown for nil got %v", got)
	}
}

func TestWithField_CopyOnWrite(t *testing.T) {
	base := perr.Validationf("missing required field %q", "upvotes")
	withField := perr.WithField(base, "upvotes")

	if got := perr.FieldOf(withField); got != "upvotes" {
		t.Fatalf("expected field upvotes got %q", got)
	}
	// original untouched
	if got := perr.FieldOf(base); got != "" {
		t.Fatalf("expected base without field got %q", got)
	}
}

func TestHTTPStatus_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{perr.Validationf("v"), http.StatusBadRequest},
		{perr.JSONErrf("j"), http.StatusBadRequest},
		{perr.InvalidArgf("i"), http.StatusUnprocessableEntity},
		{perr.NotFoundf("n"), http.StatusNotFound},
		{perr.Unauthorizedf("u"), http.StatusUnauthorized},
		{perr.TooManyRequestsf("t"), http.StatusTooManyRequests},
		{perr.Unavailablef("s"), http.StatusServiceUnavailable},
		{perr.PanicErrf("p"), http.StatusInternalServerError},
		{perr.Internalf("x"), http.StatusInternalServerError},
		{stderrs.New("foreign"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := perr.HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("%v: expected %d got %d", tc.err, tc.want, got)
		}
	}
}

func TestIsCode_SeesThroughWrapping(t *testing.T) {
	inner := perr.NotFoundf("Stock ZZZZ not found")
	outer := perr.WithOp(inner, "markets.quote")

	if !perr.IsCode(outer, perr.ErrorCodeNotFound) {
		t.Fatal("expected not found code after WithOp")
	}
	if e, ok := perr.As(outer); !ok || e.Op() != "markets.quote" {
		t.Fatalf("expected op markets.quote got %+v", e)
	}
}
