package manager

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
)

var ErrEmptyCity = errors.New("empty city name")

type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindEmptyInput
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindServerError
	KindUnavailable
	KindOtherHTTP
	KindConnection
	KindTimeout
	KindProviderLogical
)

const defaultLogicalMessage = "Unable to fetch weather"

var messages = map[ErrorKind]string{
	KindGeneric:      "An error occurred while fetching data",
	KindEmptyInput:   "Please enter a city name",
	KindNotFound:     "City not found",
	KindUnauthorized: "Invalid API key",
	KindForbidden:    "Access forbidden",
	KindServerError:  "Server error occurred",
	KindUnavailable:  "Service unavailable",
	KindOtherHTTP:    "Network error occurred",
	KindConnection:   "Network connection error",
	KindTimeout:      "Request timed out",
}

// LookupError is the single failure type leaving the lookup boundary.
// Error returns the text shown to the user.
type LookupError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *LookupError) Error() string {
	if e.Kind == KindProviderLogical {
		if e.Message != "" {
			return e.Message
		}
		return defaultLogicalMessage
	}

	return messages[e.Kind]
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// KindFromStatus maps an HTTP error status to its kind.
func KindFromStatus(code int) ErrorKind {
	switch code {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusInternalServerError:
		return KindServerError
	case http.StatusServiceUnavailable:
		return KindUnavailable
	default:
		return KindOtherHTTP
	}
}

// KindFromTransport maps a failure that happened before any response was received.
func KindFromTransport(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	if isConnectionFailure(err) {
		return KindConnection
	}

	return KindGeneric
}

// isConnectionFailure reports dial, DNS, dropped-connection and TLS failures.
func isConnectionFailure(err error) bool {
	for _, target := range []error{io.EOF, io.ErrUnexpectedEOF, syscall.ECONNREFUSED, syscall.ECONNRESET} {
		if errors.Is(err, target) {
			return true
		}
	}

	var (
		opErr        *net.OpError
		dnsErr       *net.DNSError
		certErr      *tls.CertificateVerificationError
		recordErr    tls.RecordHeaderError
		authorityErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
	)

	return errors.As(err, &opErr) ||
		errors.As(err, &dnsErr) ||
		errors.As(err, &certErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr)
}

func NewStatusError(code int) *LookupError {
	return &LookupError{Kind: KindFromStatus(code), Status: code}
}

func NewTransportError(err error) *LookupError {
	return &LookupError{Kind: KindFromTransport(err), Err: err}
}

// NewDecodeError marks a response body that could not be read as weather data.
func NewDecodeError(err error) *LookupError {
	return &LookupError{Kind: KindGeneric, Err: err}
}

func NewLogicalError(message string) *LookupError {
	return &LookupError{Kind: KindProviderLogical, Message: message}
}

// Classify converts any error into a *LookupError. nil stays nil.
func Classify(err error) *LookupError {
	if err == nil {
		return nil
	}

	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr
	}

	if errors.Is(err, ErrEmptyCity) {
		return &LookupError{Kind: KindEmptyInput, Err: err}
	}

	return NewTransportError(err)
}
