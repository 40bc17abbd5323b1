package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"petclinic/internal/router"
)

type visitJSON struct {
	ID          int    `json:"id"`
	PetID       int    `json:"pet_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// newClinic levanta la API apuntando SERVICE_ENDPOINT a sí misma,
// igual que en un despliegue de un solo proceso.
func newClinic(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewUnstartedServer(nil)
	h, err := router.NewRouter(router.Options{
		ServiceEndpoint:   ts.Listener.Addr().String(),
		PetServiceTimeout: 2 * time.Second,
		SeedDemoData:      true,
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts.Config.Handler = h
	ts.Start()
	t.Cleanup(ts.Close)
	return ts
}

func newClinicWithEndpoint(t *testing.T, endpoint string) *httptest.Server {
	t.Helper()
	return newClinicWithTimeout(t, endpoint, 2*time.Second)
}

func newClinicWithTimeout(t *testing.T, endpoint string, timeout time.Duration) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(router.Options{
		ServiceEndpoint:   endpoint,
		PetServiceTimeout: timeout,
		SeedDemoData:      true,
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Welcome(t *testing.T) {
	ts := newClinic(t)

	st, body := doReq(t, ts.URL, "GET", "/", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if string(body) != "Welcome to PetClinic" {
		t.Fatalf("unexpected greeting %q", string(body))
	}
}

func TestHTTP_GetVisits_AggregatesInPetOrder(t *testing.T) {
	ts := newClinic(t)

	// Jean Coleman (6): Max (8) y Samantha (7); Max va primero por nombre.
	st, body := doReq(t, ts.URL, "GET", "/owner/6/getVisits", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var got []visitJSON
	mustUnmarshal(t, body, &got)

	wantIDs := []int{2, 3, 1, 4}
	wantPets := []int{8, 8, 7, 7}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d visits, got %d", len(wantIDs), len(got))
	}
	for i := range got {
		if got[i].ID != wantIDs[i] || got[i].PetID != wantPets[i] {
			t.Fatalf("visit %d: got id=%d pet=%d, want id=%d pet=%d", i, got[i].ID, got[i].PetID, wantIDs[i], wantPets[i])
		}
	}
	if got[0].Date != "2013-01-02" || got[0].Description != "rabies shot" {
		t.Fatalf("unexpected first visit %+v", got[0])
	}
}

func TestHTTP_GetVisits_OwnerWithoutPets(t *testing.T) {
	ts := newClinic(t)

	ownerID := createOwner(t, ts.URL, "Ada", "Lovelace")

	st, body := doReq(t, ts.URL, "GET", "/owner/"+itoa(ownerID)+"/getVisits", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty array, got %s", string(body))
	}
}

func TestHTTP_GetVisits_LengthIsSumOfPetVisits(t *testing.T) {
	ts := newClinic(t)

	ownerID := createOwner(t, ts.URL, "Grace", "Hopper")
	zed := createPet(t, ts.URL, ownerID, "Zed", "dog")
	abby := createPet(t, ts.URL, ownerID, "Abby", "cat")
	_ = createPet(t, ts.URL, ownerID, "Milo", "bird") // sin visitas

	z1 := createVisit(t, ts.URL, zed, "2024-02-01", "checkup")
	z2 := createVisit(t, ts.URL, zed, "2024-01-15", "vaccine")
	a1 := createVisit(t, ts.URL, abby, "2024-03-10", "dental")

	st, body := doReq(t, ts.URL, "GET", "/owner/"+itoa(ownerID)+"/getVisits", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var got []visitJSON
	mustUnmarshal(t, body, &got)

	// Abby < Milo < Zed; dentro de cada mascota, por fecha.
	want := []int{a1, z2, z1}
	if len(got) != len(want) {
		t.Fatalf("expected %d visits, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: got visit %d, want %d", i, got[i].ID, want[i])
		}
	}
}

func TestHTTP_GetVisits_Errors(t *testing.T) {
	ts := newClinic(t)

	cases := map[string]int{
		"/owner/999/getVisits": http.StatusNotFound,
		"/owner/abc/getVisits": http.StatusBadRequest,
		"/owner/0/getVisits":   http.StatusBadRequest,
		// fuera de rango para INTEGER
		"/owner/3000000000/getVisits": http.StatusBadRequest,
		"/pet/3000000000":             http.StatusBadRequest,
		"/visit?petId=3000000000":     http.StatusBadRequest,
	}
	for path, want := range cases {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != want {
			t.Fatalf("%s: expected %d, got %d body=%s", path, want, st, string(body))
		}
	}
}

func TestHTTP_GetVisits_PetServiceUnreachable(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	endpoint := down.Listener.Addr().String()
	down.Close()

	ts := newClinicWithEndpoint(t, endpoint)

	st, body := doReq(t, ts.URL, "GET", "/owner/6/getVisits", nil)
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), "pet service unavailable") {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestHTTP_GetVisits_PetMissingUpstream(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.URL.Path)
		mu.Unlock()
		http.Error(w, "pet not found", http.StatusNotFound)
	}))
	defer upstream.Close()

	ts := newClinicWithEndpoint(t, upstream.Listener.Addr().String())

	st, _ := doReq(t, ts.URL, "GET", "/owner/6/getVisits", nil)
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", st)
	}
	mu.Lock()
	defer mu.Unlock()
	// falla en la primera mascota y no sigue
	if len(calls) != 1 || calls[0] != "/pet/8" {
		t.Fatalf("unexpected upstream calls %v", calls)
	}
}

func TestHTTP_GetVisits_EmptyUpstreamBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	ts := newClinicWithEndpoint(t, upstream.Listener.Addr().String())

	st, body := doReq(t, ts.URL, "GET", "/owner/6/getVisits", nil)
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), "pet service unavailable") {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestHTTP_GetVisits_PetServiceTimeout(t *testing.T) {
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer upstream.Close()
	defer close(release)

	ts := newClinicWithTimeout(t, upstream.Listener.Addr().String(), 100*time.Millisecond)

	start := time.Now()
	st, body := doReq(t, ts.URL, "GET", "/owner/6/getVisits", nil)
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), "pet service unavailable") {
		t.Fatalf("unexpected body %q", string(body))
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not applied, took %s", elapsed)
	}
}

func TestHTTP_OwnerLifecycle(t *testing.T) {
	ts := newClinic(t)

	ownerID := createOwner(t, ts.URL, "Alan", "Turing")

	{
		st, body := doReq(t, ts.URL, "PUT", "/owner/"+itoa(ownerID), map[string]any{
			"first_name": "Alan",
			"last_name":  "Turing",
			"address":    "Bletchley Park",
			"city":       "Milton Keynes",
			"telephone":  "0123456789",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/owner?lastName=tur", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d", st)
		}
		var got []map[string]any
		mustUnmarshal(t, body, &got)
		if len(got) != 1 || got[0]["city"] != "Milton Keynes" {
			t.Fatalf("unexpected search result %s", string(body))
		}
	}

	{
		st, _ := doReq(t, ts.URL, "POST", "/owner", map[string]any{
			"first_name": "No",
			"last_name":  "Phone",
			"address":    "x",
			"city":       "y",
			"telephone":  "not-a-number",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid telephone, got %d", st)
		}
	}
}

func TestHTTP_PetAndVisitValidation(t *testing.T) {
	ts := newClinic(t)

	{
		st, _ := doReq(t, ts.URL, "POST", "/pet", map[string]any{
			"owner_id":   999,
			"name":       "Ghost",
			"birth_date": "2020-01-01",
			"type":       "cat",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown owner, got %d", st)
		}
	}

	{
		st, _ := doReq(t, ts.URL, "POST", "/pet", map[string]any{
			"owner_id":   1,
			"name":       "Rex",
			"birth_date": "2020-01-01",
			"type":       "dragon",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown type, got %d", st)
		}
	}

	{
		st, _ := doReq(t, ts.URL, "POST", "/visit", map[string]any{
			"pet_id":      999,
			"description": "checkup",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown pet, got %d", st)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/pet/7", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d", st)
		}
		var got struct {
			Name   string      `json:"name"`
			Visits []visitJSON `json:"visits"`
		}
		mustUnmarshal(t, body, &got)
		if got.Name != "Samantha" || len(got.Visits) != 2 {
			t.Fatalf("unexpected pet %s", string(body))
		}
	}
}

func TestHTTP_CatalogAndOps(t *testing.T) {
	ts := newClinic(t)

	{
		st, body := doReq(t, ts.URL, "GET", "/vet", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 vets, got %d", st)
		}
		var got []struct {
			LastName    string           `json:"last_name"`
			Specialties []map[string]any `json:"specialties"`
		}
		mustUnmarshal(t, body, &got)
		if len(got) != 6 || got[0].LastName != "Carter" || got[0].Specialties == nil {
			t.Fatalf("unexpected vets %s", string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/pet/types", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 types, got %d", st)
		}
		var got []string
		mustUnmarshal(t, body, &got)
		if strings.Join(got, ",") != "bird,cat,dog,hamster,lizard,snake" {
			t.Fatalf("unexpected types %v", got)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/health", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("unexpected health %d %q", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "petclinic_http_requests_total") {
			t.Fatalf("unexpected metrics %d", st)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
		if st != http.StatusOK {
			t.Fatalf("unexpected swagger doc %d", st)
		}
		var doc struct {
			Paths map[string]map[string]any `json:"paths"`
		}
		mustUnmarshal(t, body, &doc)
		documented := map[string]string{
			"/":                          "get",
			"/owner/{ownerId}/getVisits": "get",
			"/owner/{ownerId}":           "put",
			"/pet":                       "post",
			"/pet/types":                 "get",
			"/pet/{petId}":               "put",
		}
		for path, method := range documented {
			if _, ok := doc.Paths[path][method]; !ok {
				t.Fatalf("swagger doc missing %s %s", strings.ToUpper(method), path)
			}
		}
	}
}

// ---- helpers ----

func createOwner(t *testing.T, baseURL, first, last string) int {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/owner", map[string]any{
		"first_name": first,
		"last_name":  last,
		"address":    "1 Main St.",
		"city":       "Madison",
		"telephone":  "6085550000",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func createPet(t *testing.T, baseURL string, ownerID int, name, typ string) int {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/pet", map[string]any{
		"owner_id":   ownerID,
		"name":       name,
		"birth_date": "2019-05-01",
		"type":       typ,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func createVisit(t *testing.T, baseURL string, petID int, date, desc string) int {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/visit", map[string]any{
		"pet_id":      petID,
		"date":        date,
		"description": desc,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create visit, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func idFrom(t *testing.T, body []byte) int {
	t.Helper()
	var out struct {
		ID int `json:"id"`
	}
	mustUnmarshal(t, body, &out)
	if out.ID <= 0 {
		t.Fatalf("missing id in %s", string(body))
	}
	return out.ID
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func mustUnmarshal(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(b))
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
