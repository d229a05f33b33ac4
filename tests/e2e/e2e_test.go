package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/trovestudio/ffetrack/tests/helpers"
)

// TestE2EWithFullStack runs the containerized service against a real
// database and exercises the outer surfaces over HTTP.
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	tc, err := helpers.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	baseURL := tc.AppBaseURL

	// Wait a bit for everything to stabilize
	time.Sleep(5 * time.Second)

	t.Run("HealthEndpoint", func(t *testing.T) {
		testHealthEndpoint(t, baseURL)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		testSwaggerUI(t, baseURL)
	})

	t.Run("ProjectLifecycle", func(t *testing.T) {
		testProjectLifecycle(t, baseURL)
	})

	t.Run("NotFoundEnvelope", func(t *testing.T) {
		testNotFoundEnvelope(t, baseURL)
	})
}

func testHealthEndpoint(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/health")
	if err != nil {
		t.Fatalf("Failed to get health: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Health response is not valid JSON: %v", err)
	}

	if result["database"] != "ok" {
		t.Errorf("Expected database ok, got %v", result["database"])
	}

	t.Logf("Health check: status=%v, database=%v, scraper=%v",
		result["status"], result["database"], result["scraper"])
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/metrics")
	if err != nil {
		t.Fatalf("Failed to get metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for metrics, got %d. Body: %s", resp.StatusCode, string(body))
	}

	t.Logf("Metrics endpoint working, found %d bytes of metrics", len(body))
}

func testSwaggerUI(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/swagger/index.html")
	if err != nil {
		t.Fatalf("Failed to get Swagger UI: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for Swagger UI, got %d", resp.StatusCode)
	}
}

// testProjectLifecycle creates a project and a walkthrough room over
// HTTP and verifies the room came back populated.
func testProjectLifecycle(t *testing.T, baseURL string) {
	payload, _ := json.Marshal(map[string]interface{}{
		"name":         "E2E House",
		"project_type": "residential",
	})
	resp, err := http.Post(baseURL+"/api/projects", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 201 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var project map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		t.Fatalf("Project response is not valid JSON: %v", err)
	}
	projectID, _ := project["id"].(string)
	if projectID == "" {
		t.Fatalf("Expected project id, got %v", project)
	}

	payload, _ = json.Marshal(map[string]interface{}{
		"project_id": projectID,
		"name":       "Kitchen",
		"sheet_type": "walkthrough",
	})
	resp, err = http.Post(baseURL+"/api/rooms", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 201 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var room map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		t.Fatalf("Room response is not valid JSON: %v", err)
	}
	categories, _ := room["categories"].([]interface{})
	if len(categories) == 0 {
		t.Error("Expected auto-populated walkthrough room")
	}
}

func testNotFoundEnvelope(t *testing.T, baseURL string) {
	resp, err := http.Get(baseURL + "/api/projects/does-not-exist")
	if err != nil {
		t.Fatalf("Failed to access API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		body, _ := io.ReadAll(resp.Body)
		t.Logf("Response body: %s", string(body))
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Errorf("Response is not valid JSON: %v", err)
	}
	if result["ok"] != false {
		t.Errorf("Expected ok=false in error envelope, got %v", result["ok"])
	}
}
