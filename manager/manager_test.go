package manager

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

type fakeProvider struct {
	calls  []string
	result Result
	err    error
}

func (f *fakeProvider) Get(_ context.Context, city string) (Result, error) {
	f.calls = append(f.calls, city)
	return f.result, f.err
}

func TestGetEmptyCitySkipsProvider(t *testing.T) {
	provider := &fakeProvider{}
	w := New(provider)

	for _, city := range []string{"", "   ", "\t\n"} {
		_, err := w.Get(context.Background(), city)

		var lookupErr *LookupError
		if !errors.As(err, &lookupErr) || lookupErr.Kind != KindEmptyInput {
			t.Fatalf("city %q: expected empty input error, got %v", city, err)
		}
		if err.Error() != "Please enter a city name" {
			t.Errorf("city %q: unexpected message %q", city, err.Error())
		}
	}

	if len(provider.calls) != 0 {
		t.Errorf("expected no provider calls, got %v", provider.calls)
	}
}

func TestGetTrimsCityAndSetsEmoji(t *testing.T) {
	temp := 18.3
	provider := &fakeProvider{result: Result{Temperature: &temp, Description: "Clear Sky", Condition: "Clear"}}

	result, err := New(provider).Get(context.Background(), "  London ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(provider.calls) != 1 || provider.calls[0] != "London" {
		t.Errorf("expected one call with trimmed city, got %v", provider.calls)
	}
	if result.Emoji != "☀️" {
		t.Errorf("expected clear emoji, got %q", result.Emoji)
	}
}

func TestGetClassifiesProviderErrors(t *testing.T) {
	provider := &fakeProvider{err: errors.New("stopped after 10 redirects")}

	_, err := New(provider).Get(context.Background(), "Paris")

	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected *LookupError, got %T", err)
	}
	if lookupErr.Kind != KindGeneric {
		t.Errorf("expected generic kind, got %d", lookupErr.Kind)
	}
}

func TestGetWithoutProvider(t *testing.T) {
	_, err := New(nil).Get(context.Background(), "Paris")
	if err == nil || err.Error() != "An error occurred while fetching data" {
		t.Errorf("expected generic error, got %v", err)
	}
}

func TestGetLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	provider := &fakeProvider{err: NewStatusError(404)}

	_, _ = New(provider, WithLogger(log.New(buf, "", 0))).Get(context.Background(), "Atlantis")

	if !strings.Contains(buf.String(), `"Atlantis": City not found`) {
		t.Errorf("unexpected log output %q", buf.String())
	}
	if strings.Contains(buf.String(), "<nil>") {
		t.Errorf("expected no empty cause in log output %q", buf.String())
	}
}
