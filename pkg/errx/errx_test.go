package errx

import (
	"errors"
	"net/http"
	"testing"
)

func TestRegistryQualifiesCodes(t *testing.T) {
	reg := NewRegistry("JOB")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Job not found")

	if code != "JOB.NOT_FOUND" {
		t.Errorf("code = %q, want JOB.NOT_FOUND", code)
	}

	err := reg.New(code)
	if err.Type != TypeNotFound {
		t.Errorf("type = %q", err.Type)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("httpStatus = %d", err.HTTPStatus)
	}
	if err.Message != "Job not found" {
		t.Errorf("message = %q", err.Message)
	}
}

func TestRegistryUnregisteredCode(t *testing.T) {
	reg := NewRegistry("JOB")

	err := reg.New("JOB.NEVER_REGISTERED")
	if err.Type != TypeInternal || err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("unregistered code should degrade to internal, got %+v", err)
	}
}

func TestWithDetail(t *testing.T) {
	reg := NewRegistry("JOB")
	code := reg.Register("NOT_OWNER", TypeAuthorization, http.StatusForbidden, "forbidden")

	err := reg.New(code).WithDetail("jobId", "j1").WithDetail("userId", "u1")
	if err.Details["jobId"] != "j1" || err.Details["userId"] != "u1" {
		t.Errorf("details = %+v", err.Details)
	}

	resp := err.ToHTTPResponse()
	if resp["success"] != false {
		t.Error("response should carry success=false")
	}
	if _, ok := resp["details"]; !ok {
		t.Error("response should carry details when present")
	}
}

func TestToHTTPResponseOmitsEmptyDetails(t *testing.T) {
	reg := NewRegistry("JOB")
	code := reg.Register("CLOSED", TypeBusiness, http.StatusBadRequest, "closed")

	resp := reg.New(code).ToHTTPResponse()
	if _, ok := resp["details"]; ok {
		t.Error("response should omit details when none are attached")
	}
}

func TestWrapPreservesTypedErrors(t *testing.T) {
	reg := NewRegistry("JOB")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Job not found")
	original := reg.New(code)

	wrapped := Wrap(original, "failed to fetch job", TypeInternal)
	if wrapped != original {
		t.Error("wrapping a typed error should return it unchanged")
	}
	if !IsType(wrapped, TypeNotFound) {
		t.Errorf("type = %q, want the original type", wrapped.Type)
	}
}

func TestWrapPlainError(t *testing.T) {
	cause := errors.New("connection refused")

	wrapped := Wrap(cause, "failed to fetch job", TypeInternal)
	if wrapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("httpStatus = %d", wrapped.HTTPStatus)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestWrapStatusMapping(t *testing.T) {
	cases := []struct {
		errType Type
		status  int
	}{
		{TypeNotFound, http.StatusNotFound},
		{TypeConflict, http.StatusConflict},
		{TypeValidation, http.StatusBadRequest},
		{TypeBusiness, http.StatusBadRequest},
		{TypeAuthorization, http.StatusForbidden},
		{TypeAuthentication, http.StatusUnauthorized},
		{TypeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		wrapped := Wrap(errors.New("x"), "boom", tc.errType)
		if wrapped.HTTPStatus != tc.status {
			t.Errorf("%s: httpStatus = %d, want %d", tc.errType, wrapped.HTTPStatus, tc.status)
		}
	}
}

func TestIsType(t *testing.T) {
	reg := NewRegistry("JOB")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Job not found")

	if !IsType(reg.New(code), TypeNotFound) {
		t.Error("IsType should match the registered type")
	}
	if IsType(reg.New(code), TypeAuthorization) {
		t.Error("IsType should reject a different type")
	}
	if IsType(errors.New("plain"), TypeInternal) {
		t.Error("IsType should reject untyped errors")
	}
}
