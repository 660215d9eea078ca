// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponse(rec, http.StatusCreated, map[string]string{"id": "abc"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Status != http.StatusCreated {
		t.Fatalf("expected status field 201, got %d", resp.Status)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok || data["id"] != "abc" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusNotFound, "circle not found")

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "circle not found" || resp.Status != http.StatusNotFound {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Data != nil {
		t.Fatalf("error responses carry no data, got %+v", resp.Data)
	}
}
