package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mem "pet-breed-identifier/internal/adapters/storage/memory"
	"pet-breed-identifier/internal/domain/breeds"
	"pet-breed-identifier/internal/ports/vision"
	"pet-breed-identifier/internal/router"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

const modelAnswer = `**Animal:** Cat

**Breed:** Siamese

**Physical Characteristics:**
- Slender body

**Temperament:**
- Vocal

**Care Requirements:**
- Weekly brushing

**Safety Assessment:**
- Danger level: Low

**Additional Information:**
Ancient breed.`

type stubCapability struct {
	answer string
	facts  string
	err    error

	describeCalls int
}

func (s *stubCapability) GenerateWithImage(ctx context.Context, img vision.Image, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func (s *stubCapability) Generate(ctx context.Context, prompt string) (string, error) {
	s.describeCalls++
	if s.err != nil {
		return "", s.err
	}
	return s.facts, nil
}

type analysisBody struct {
	ID               string `json:"id"`
	BreedInformation string `json:"breed_information"`
	Sections         struct {
		AnimalType *string `json:"animal_type"`
		BreedName  *string `json:"breed_name"`
	} `json:"sections"`
	SafetyAssessment struct {
		Available bool   `json:"available"`
		Title     string `json:"title"`
		Text      string `json:"text"`
	} `json:"safety_assessment"`
	AnimalFacts struct {
		Available bool   `json:"available"`
		Title     string `json:"title"`
		Text      string `json:"text"`
	} `json:"animal_facts"`
}

func TestHTTP_Identify_FullAnswer(t *testing.T) {
	capab := &stubCapability{answer: modelAnswer, facts: "Cats sleep a lot."}
	ts := httptest.NewServer(router.NewRouter(router.Options{Capability: capab}))
	defer ts.Close()

	st, body := upload(t, ts.URL, "", pngHeader)
	if st != http.StatusOK {
		t.Fatalf("expected 200 identify, got %d body=%s", st, string(body))
	}

	var resp analysisBody
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode: %v body=%s", err, string(body))
	}
	if resp.ID == "" {
		t.Fatalf("missing id body=%s", string(body))
	}
	if resp.BreedInformation != modelAnswer {
		t.Fatalf("expected full answer back, got %q", resp.BreedInformation)
	}
	if resp.Sections.BreedName == nil || *resp.Sections.BreedName != "Siamese" {
		t.Fatalf("expected breed Siamese, got %v", resp.Sections.BreedName)
	}
	if !resp.SafetyAssessment.Available || !strings.Contains(resp.SafetyAssessment.Text, "Danger level: Low") {
		t.Fatalf("unexpected safety region: %+v", resp.SafetyAssessment)
	}
	if strings.Contains(resp.SafetyAssessment.Text, "Additional Information") {
		t.Fatalf("safety region leaked next section: %q", resp.SafetyAssessment.Text)
	}
	if !resp.AnimalFacts.Available || resp.AnimalFacts.Title != "Interesting Facts About Cats" {
		t.Fatalf("unexpected facts region: %+v", resp.AnimalFacts)
	}
	if capab.describeCalls != 1 {
		t.Fatalf("expected 1 describe call, got %d", capab.describeCalls)
	}
}

func TestHTTP_Identify_NoMarkersUsesPlaceholders(t *testing.T) {
	capab := &stubCapability{answer: "I cannot tell what this is."}
	ts := httptest.NewServer(router.NewRouter(router.Options{Capability: capab}))
	defer ts.Close()

	st, body := upload(t, ts.URL, "", pngHeader)
	if st != http.StatusOK {
		t.Fatalf("expected 200 identify, got %d body=%s", st, string(body))
	}

	var resp analysisBody
	_ = json.Unmarshal(body, &resp)
	if resp.SafetyAssessment.Available || resp.SafetyAssessment.Text != "Safety assessment information not available for this animal." {
		t.Fatalf("expected safety placeholder, got %+v", resp.SafetyAssessment)
	}
	if resp.AnimalFacts.Available || resp.AnimalFacts.Text != "Animal facts not available." {
		t.Fatalf("expected facts placeholder, got %+v", resp.AnimalFacts)
	}
	if capab.describeCalls != 0 {
		t.Fatalf("describe should not run without animal type, got %d calls", capab.describeCalls)
	}
}

func TestHTTP_Identify_CapabilityFailureIsGeneric(t *testing.T) {
	capab := &stubCapability{err: errors.New("quota exceeded for key AIzaSECRET")}
	ts := httptest.NewServer(router.NewRouter(router.Options{Capability: capab}))
	defer ts.Close()

	st, body := upload(t, ts.URL, "", pngHeader)
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", st, string(body))
	}
	if strings.Contains(string(body), "quota") || !strings.Contains(string(body), "Please try again") {
		t.Fatalf("expected generic message, got %q", string(body))
	}
}

func TestHTTP_Identify_RejectsBadUploads(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Capability:     &stubCapability{answer: modelAnswer},
		MaxUploadBytes: 64,
	}))
	defer ts.Close()

	// no es imagen
	if st, body := upload(t, ts.URL, "", []byte("hello, plain text")); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for text upload, got %d body=%s", st, string(body))
	}

	// demasiado grande
	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 256)...)
	if st, body := upload(t, ts.URL, "", big); st != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for big upload, got %d body=%s", st, string(body))
	}

	// sin campo image
	st, _ := doReq(t, ts.URL, "POST", "/identify", "", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without multipart body, got %d", st)
	}
}

func TestHTTP_Identify_RequiresToken(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Capability: &stubCapability{answer: modelAnswer},
		APIToken:   "s3cret",
	}))
	defer ts.Close()

	if st, _ := upload(t, ts.URL, "", pngHeader); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", st)
	}
	if st, _ := upload(t, ts.URL, "wrong", pngHeader); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", st)
	}
	if st, body := upload(t, ts.URL, "s3cret", pngHeader); st != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d body=%s", st, string(body))
	}

	// el catálogo queda abierto
	if st, _ := doReq(t, ts.URL, "GET", "/breeds", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 listing breeds without token, got %d", st)
	}
}

func TestHTTP_Breeds(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Capability: &stubCapability{},
		Catalog:    mem.NewBreedsRepo(breeds.GenerateDefaultCatalog()),
	}))
	defer ts.Close()

	{
		st, body := doReq(t, ts.URL, "GET", "/breeds", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list breeds, got %d body=%s", st, string(body))
		}
		var names []string
		_ = json.Unmarshal(body, &names)
		if len(names) != 37 {
			t.Fatalf("expected 37 breeds, got %d", len(names))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/breeds/Maine%20Coon", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get breed, got %d body=%s", st, string(body))
		}
		var rec map[string]any
		_ = json.Unmarshal(body, &rec)
		if rec["name"] != "Maine Coon" || rec["animal_type"] != "Cat" {
			t.Fatalf("unexpected breed body=%s", string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/breeds/pug?format=markdown", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 markdown, got %d body=%s", st, string(body))
		}
		if !strings.HasPrefix(string(body), "# Pug") {
			t.Fatalf("expected markdown card, got %q", string(body))
		}
	}

	if st, _ := doReq(t, ts.URL, "GET", "/breeds/Unicorn", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown breed, got %d", st)
	}
}

func TestHTTP_Breeds_FallsBackToBuiltin(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Capability: &stubCapability{}}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/breeds", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var names []string
	_ = json.Unmarshal(body, &names)
	if len(names) != 2 || names[0] != "Golden Retriever" || names[1] != "Siamese Cat" {
		t.Fatalf("expected builtin catalog, got %v", names)
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Capability: &stubCapability{}}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func upload(t *testing.T, baseURL, token string, data []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "pet.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, err := http.NewRequest("POST", baseURL+"/identify", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return send(t, req)
}

func doReq(t *testing.T, baseURL, method, path, token string, body io.Reader) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return send(t, req)
}

func send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
