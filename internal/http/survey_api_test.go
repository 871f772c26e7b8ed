package handlers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"shopmate/internal/http/handlers"
	"shopmate/internal/repos"
	"shopmate/internal/services"
)

func surveyApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	h := &handlers.SurveyHandler{Survey: services.NewSurveyService(repos.NewSurveyRepo(db))}
	app := fiber.New()
	app.Post("/api/survey", h.Submit)
	app.Get("/api/survey", h.List)
	return app
}

func TestSurveySubmitAndRetrieve(t *testing.T) {
	app := surveyApp(t)

	body := `{"q1_list":"smart_list","q2_offers":"smart_alert","q3_scan":"wall_scanner","q4_kids":"alone","q5_feedback":"تجربة ممتازة"}`
	req := httptest.NewRequest("POST", "/api/survey", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var submitOut struct {
		Success bool `json:"success"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &submitOut); err != nil || !submitOut.Success {
		t.Fatalf("want {success:true}, got %s", raw)
	}

	// Completion marker set for the gate.
	marker := ""
	for _, ck := range resp.Cookies() {
		if ck.Name == "survey_completed" {
			marker = ck.Value
		}
	}
	if marker != "true" {
		t.Fatal("survey_completed cookie not set")
	}

	respGet, err := app.Test(httptest.NewRequest("GET", "/api/survey", nil))
	if err != nil {
		t.Fatal(err)
	}
	var listOut struct {
		Responses []map[string]any `json:"responses"`
	}
	rawGet, _ := io.ReadAll(respGet.Body)
	if err := json.Unmarshal(rawGet, &listOut); err != nil {
		t.Fatalf("bad list body: %s", rawGet)
	}
	if len(listOut.Responses) != 1 || listOut.Responses[0]["q1_list"] != "smart_list" {
		t.Fatalf("unexpected responses: %s", rawGet)
	}
}

func TestSurveyRejectsBadAnswers(t *testing.T) {
	app := surveyApp(t)

	body := `{"q1_list":"<script>","q2_offers":"smart_alert","q3_scan":"wall_scanner","q4_kids":"alone"}`
	req := httptest.NewRequest("POST", "/api/survey", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}
