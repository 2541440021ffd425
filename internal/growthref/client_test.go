package growthref

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientLookupSuccess(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code":    200,
			"message": "ok",
			"data": map[string]any{
				"age":           "24.6",
				"height_SD0":    87.1,
				"height_SD1":    90.4,
				"height_SD1neg": 83.8,
				"height_SD2":    93.8,
				"height_SD2neg": 80.5,
				"height_SD3":    97.1,
				"height_SD3neg": 77.2,
				"note":          "ignored non-numeric field",
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	h := 100.0
	res, err := c.Lookup(context.Background(), Request{
		Gender:   "M",
		DOB:      time.Date(2018, 1, 1, 0, 0, 0, 0, time.Local),
		Observed: time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local),
		Height:   &h,
	})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if res.Age != "24.6" {
		t.Fatalf("age = %q", res.Age)
	}
	if res.Values["height_SD0"] != 87.1 {
		t.Fatalf("height_SD0 = %v", res.Values["height_SD0"])
	}

	if gotBody["gender"] != "M" || gotBody["dob"] != "2018-01-01" || gotBody["date"] != "2020-01-01" {
		t.Fatalf("unexpected request body: %v", gotBody)
	}
	if _, hasAge := gotBody["age"]; hasAge {
		t.Fatalf("date-based request must not carry an age field: %v", gotBody)
	}
}

func TestClientLookupAgeSeconds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if _, ok := body["age"]; !ok {
			t.Errorf("age-based request must carry an age field: %v", body)
		}
		if _, ok := body["dob"]; ok {
			t.Errorf("age-based request must not carry dob: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": 200, "message": "ok",
			"data": map[string]any{"age": "30"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	if _, err := c.Lookup(context.Background(), Request{Gender: "F", AgeSeconds: 78894e3}); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
}

func TestClientLookupFailureCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": 422, "message": "age out of reference range",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Lookup(context.Background(), Request{Gender: "M", AgeSeconds: 1})
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want LookupError", err)
	}
	if le.Code != 422 || le.Message != "age out of reference range" {
		t.Fatalf("lookup error = %+v", le)
	}
}

func TestClientLookupHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Lookup(context.Background(), Request{Gender: "M", AgeSeconds: 1})
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want LookupError", err)
	}
	if le.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", le.Code)
	}
}
